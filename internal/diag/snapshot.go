package diag

import (
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotEdit and snapshotNote mirror Edit and Note in a form stable
// across refactors of the live types, so a binary snapshot written by one
// test run stays comparable against a fixture checked in earlier.
type snapshotEdit struct {
	File        uint32
	Start       uint32
	End         uint32
	Replacement string
}

type snapshotNote struct {
	File  uint32
	Start uint32
	End   uint32
	Msg   string
}

type snapshotDiagnostic struct {
	Code     uint16
	Severity uint8
	File     uint32
	Start    uint32
	End      uint32
	Message  string
	Help     string
	Edits    []snapshotEdit
	Notes    []snapshotNote
}

func toSnapshot(diags []Diagnostic) []snapshotDiagnostic {
	out := make([]snapshotDiagnostic, len(diags))
	for i, d := range diags {
		edits := make([]snapshotEdit, len(d.Edits))
		for j, e := range d.Edits {
			edits[j] = snapshotEdit{
				File: uint32(e.Span.File), Start: e.Span.Start, End: e.Span.End,
				Replacement: e.Replacement,
			}
		}
		notes := make([]snapshotNote, len(d.Notes))
		for j, n := range d.Notes {
			notes[j] = snapshotNote{
				File: uint32(n.Span.File), Start: n.Span.Start, End: n.Span.End,
				Msg: n.Msg,
			}
		}
		out[i] = snapshotDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			File:     uint32(d.Primary.File),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
			Help:     d.Help,
			Edits:    edits,
			Notes:    notes,
		}
	}
	return out
}

// MarshalSnapshot encodes diags as a deterministic msgpack document for
// golden-file regression tests that want to assert on the full diagnostic
// structure (codes, edits, notes) rather than only its rendered text, as
// FormatGoldenDiagnostics does.
func MarshalSnapshot(diags []Diagnostic) ([]byte, error) {
	return msgpack.Marshal(toSnapshot(diags))
}

// EqualSnapshot reports whether diags encodes to byte-identical msgpack
// against a previously captured snapshot.
func EqualSnapshot(diags []Diagnostic, want []byte) (bool, error) {
	got, err := MarshalSnapshot(diags)
	if err != nil {
		return false, err
	}
	if len(got) != len(want) {
		return false, nil
	}
	for i := range got {
		if got[i] != want[i] {
			return false, nil
		}
	}
	return true, nil
}
