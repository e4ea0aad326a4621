// Package predicate provides external predicates for validator.Engine.
//
// An external predicate adds a pass/fail opinion on top of the built-in
// pattern and limit checks. The engine ANDs its verdict in and returns its
// error to the caller unchanged (wrapped in validator.ErrExternalPredicate).
//
// Expression compiles a govaluate expression, so a field configuration can
// carry rules such as
//
//	length >= 3 && !(lower(text) =~ '^test')
//	number(text) != 13
//
// without Go code. Phone checks a text against the phone numbering plan of
// a region. All and Any combine predicates.
package predicate
