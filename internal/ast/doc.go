// Package ast defines the abstract syntax tree produced by the parser: a
// tagged sum over namespaces, packages, classifiers, features,
// relationships, and expressions, allocated through per-kind handle
// arenas so the whole tree is released by a single arena reset.
package ast
