package parser

import "kermlc/internal/diag"

// Options configures a Parser.
type Options struct {
	// Reporter receives every parse diagnostic. A nil Reporter silently
	// discards diagnostics, useful for fuzzing the parser for panics
	// without caring about the messages produced.
	Reporter diag.Reporter
}
