package sema

import "kermlc/internal/symbols"

// The following hooks are reserved for future work per spec §4.6: the
// front-end must expose these entry points and run them as part of an
// analysis, but each returns silently until the corresponding check is
// implemented.

// checkSpecializationCycles is the E3005 hook: cycle detection across
// specialization ('specializes'/':>') chains.
func (a *Analyzer) checkSpecializationCycles(*symbols.Table) {}

// checkTypeCompatibility is the E3006 hook: typing compatibility between
// a feature and its declared type.
func (a *Analyzer) checkTypeCompatibility(*symbols.Table) {}

// checkMultiplicityConstraints is the E3007 hook: multiplicity bound
// validation (e.g. lower <= upper, redefinition narrowing).
func (a *Analyzer) checkMultiplicityConstraints(*symbols.Table) {}

// checkImports is the E3009/E3010 hook: import-cycle detection and
// import-target resolution across files, out of scope for a single-file
// two-pass walk.
func (a *Analyzer) checkImports(*symbols.Table) {}
