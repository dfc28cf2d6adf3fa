package diag

import "sort"

// Context is the per-session diagnostic accumulator: spec §4.3's
// diagnostic context. It holds diagnostics in emission order, tracks
// counts by severity and by code family, and enforces the cutoff and
// warnings-as-errors policies.
type Context struct {
	items []Diagnostic

	maxErrors       int
	promoteWarnings bool

	errorCount   int
	warningCount int
	noteCount    int

	parseErrorCount    int
	semanticErrorCount int

	hasFatal bool
}

// DefaultMaxErrors is the cutoff spec §7 names: 20 errors, 0 meaning
// unlimited.
const DefaultMaxErrors = 20

// NewContext creates a Context with the given max-errors cutoff (0 means
// unlimited).
func NewContext(maxErrors int) *Context {
	return &Context{maxErrors: maxErrors}
}

// SetMaxErrors changes the cutoff.
func (c *Context) SetMaxErrors(n int) { c.maxErrors = n }

// SetPromoteWarnings enables or disables warnings-as-errors.
func (c *Context) SetPromoteWarnings(b bool) { c.promoteWarnings = b }

// Emit appends d to the context, updating every counter. Severity
// accounting follows spec §4.3 exactly: errors increment the global error
// count; warnings increment the warning count unless promoteWarnings is
// set, in which case the diagnostic's severity is mutated to error and
// counted as such. Fatal severity additionally sets hasFatal.
func (c *Context) Emit(d Diagnostic) Diagnostic {
	if c.promoteWarnings && d.Severity == SevWarning {
		d.Severity = SevError
	}

	switch d.Severity {
	case SevError:
		c.errorCount++
	case SevWarning:
		c.warningCount++
	case SevNote:
		c.noteCount++
	case SevFatal:
		c.errorCount++
		c.hasFatal = true
	}

	switch d.Code.Family() {
	case FamilyLexical, FamilySyntactic:
		c.parseErrorCount++
	case FamilySemantic:
		c.semanticErrorCount++
	}

	c.items = append(c.items, d)
	return d
}

// ShouldStop reports whether the session must halt: a fatal diagnostic was
// emitted, or the error count reached a nonzero maxErrors cutoff.
func (c *Context) ShouldStop() bool {
	if c.hasFatal {
		return true
	}
	return c.maxErrors > 0 && c.errorCount >= c.maxErrors
}

// Clear resets counters and emitted diagnostics without freeing arena
// memory any of them referenced (messages and spans are plain Go values
// here, so there is nothing else to release).
func (c *Context) Clear() {
	c.items = nil
	c.errorCount = 0
	c.warningCount = 0
	c.noteCount = 0
	c.parseErrorCount = 0
	c.semanticErrorCount = 0
	c.hasFatal = false
}

// Items returns every emitted diagnostic in emission order. Callers must
// not mutate the returned slice.
func (c *Context) Items() []Diagnostic { return c.items }

// HasErrors reports whether any SevError or SevFatal diagnostic was
// emitted.
func (c *Context) HasErrors() bool { return c.errorCount > 0 }

// HasWarnings reports whether any SevWarning diagnostic was emitted
// (post-promotion; once promoted, a warning counts as an error instead).
func (c *Context) HasWarnings() bool { return c.warningCount > 0 }

// HasFatal reports whether a SevFatal diagnostic was emitted.
func (c *Context) HasFatal() bool { return c.hasFatal }

// ErrorCount, WarningCount, ParseErrorCount, and SemanticErrorCount expose
// the raw accumulation counters for summary rendering.
func (c *Context) ErrorCount() int          { return c.errorCount }
func (c *Context) WarningCount() int        { return c.warningCount }
func (c *Context) ParseErrorCount() int     { return c.parseErrorCount }
func (c *Context) SemanticErrorCount() int  { return c.semanticErrorCount }

// Sort orders emitted diagnostics by file, then start offset, then end
// offset, then severity (descending), then code (ascending) — a stable,
// deterministic rendering order.
func (c *Context) Sort() {
	sort.SliceStable(c.items, func(i, j int) bool {
		di, dj := c.items[i], c.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
