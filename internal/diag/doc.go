// Package diag defines the diagnostic model and per-session accumulator
// shared by every pipeline phase.
//
// # Data model
//
// Diagnostic is the central record: Code (stable numeric identifier,
// see codes.go), Severity (note/warning/error/fatal, see severity.go),
// Primary span, Message, optional Help text, ordered Edits (machine-
// applicable fix suggestions), and ordered Notes (auxiliary context).
//
// # Emitting diagnostics
//
// Phases depend on the Reporter interface rather than a concrete
// *Context, so the lexer, parser, and semantic analyzer never need to
// know how diagnostics are ultimately stored or rendered. Call
// NewReportBuilder (or the ReportError/ReportWarning/ReportFatal
// shortcuts), chain WithHelp/WithEdit/WithNote, then Emit.
//
// # Accumulation
//
// Context implements spec's diagnostic-context contract: Emit applies
// the warnings-as-errors promotion and updates per-severity and
// per-family counters; ShouldStop reports the cutoff policy (max-errors
// or a fatal diagnostic); Clear resets counters without freeing any
// arena memory the emitted diagnostics referenced.
//
// # Consumers
//
//   - internal/diagfmt renders a Context's Items() to the terminal.
//   - golden.go and snapshot.go support regression-testing that output.
package diag
