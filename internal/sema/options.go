package sema

import "kermlc/internal/diag"

// Options configure a semantic analysis run over a parsed tree.
type Options struct {
	Reporter diag.Reporter
}
