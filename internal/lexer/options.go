package lexer

import (
	"kermlc/internal/diag"
	"kermlc/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics (E1001-E1006). Nil disables
	// reporting; the lexer still emits Invalid tokens so callers that only
	// care about recovery need not wire one up.
	Reporter diag.Reporter
}

func (lx *Lexer) reportLex(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg).Emit()
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(code, diag.SevError, sp, msg)
}
