// Package intern implements the content-addressed string table shared by a
// single compilation session. Every interned byte sequence maps to a stable
// ID for the life of the session: equal content always yields the same ID,
// and the ID remains valid until the owning Table is discarded.
//
// A Table is not safe for concurrent use. Sessions are single-threaded
// cooperative units (one lexer, one parser, one semantic pass sharing one
// Table); running several sessions concurrently means giving each its own
// Table, never sharing one across goroutines.
package intern

import "slices"

// ID identifies an interned string within one Table.
type ID uint32

// NoID is the identifier of the empty string, always present at index 0.
const NoID ID = 0

// Table is a content-addressed string interner.
type Table struct {
	byID  []string
	index map[string]ID
}

// New creates an empty Table. Index 0 is pre-populated with "" so NoID
// always resolves to a valid, if uninteresting, string.
func New() *Table {
	return &Table{
		byID:  []string{""},
		index: map[string]ID{"": NoID},
	}
}

// Intern returns the stable ID for s, interning it if this is the first
// occurrence. Two calls with bytewise-equal content always return the same ID.
func (t *Table) Intern(s string) ID {
	if id, ok := t.index[s]; ok {
		return id
	}
	// Copy so the interned string never aliases a caller-owned buffer
	// (e.g. a source slice that may be discarded).
	cpy := string([]byte(s))
	id := ID(len(t.byID))
	t.byID = append(t.byID, cpy)
	t.index[cpy] = id
	return id
}

// InternBytes interns the UTF-8 content of b.
func (t *Table) InternBytes(b []byte) ID {
	return t.Intern(string(b))
}

// InternSlice interns the bytes in s[start:end] without requiring the caller
// to materialize the substring first.
func (t *Table) InternSlice(s []byte, start, end int) ID {
	return t.InternBytes(s[start:end])
}

// Lookup resolves id back to its string, reporting whether id is valid.
func (t *Table) Lookup(id ID) (string, bool) {
	if int(id) < 0 || int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustLookup resolves id back to its string, panicking if id is invalid.
// Callers use this once a value is known to have come from this Table.
func (t *Table) MustLookup(id ID) string {
	s, ok := t.Lookup(id)
	if !ok {
		panic("intern: invalid string ID")
	}
	return s
}

// Has reports whether id was produced by this Table.
func (t *Table) Has(id ID) bool {
	return int(id) >= 0 && int(id) < len(t.byID)
}

// Len returns the number of distinct strings interned, including NoID's "".
func (t *Table) Len() int {
	return len(t.byID)
}

// Snapshot returns a copy of every interned string, indexed by ID.
func (t *Table) Snapshot() []string {
	return slices.Clone(t.byID)
}
