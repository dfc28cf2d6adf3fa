package ast

import "kermlc/internal/source"

// Multiplicity bounds the number of values a feature may hold. Either bound
// may be absent, meaning unbounded ('*'); HasLower/HasUpper record whether
// Lower/Upper were actually parsed, since NoExprID alone can't distinguish
// "absent" from "present but empty".
type Multiplicity struct {
	Span      source.Span
	Lower     ExprID
	Upper     ExprID
	HasLower  bool
	HasUpper  bool
	Ordered   bool
	Nonunique bool
}
