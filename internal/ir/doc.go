// Package ir defines the structural types of a wasm-like module:
// functions, imports and the expression tree of function bodies.
//
// The expression set is deliberately small. Control-flow kinds that
// matter to transforms — blocks, loops, returns — are modelled
// structurally; every other construct is carried as an opaque payload
// that passes through rewrites untouched.
//
// Ownership is strict: every expression has exactly one parent, and a
// rewrite that wants to replace a node does so by returning a new
// owned node to the parent, which substitutes it into its child slot.
// No expression is ever referenced from two places at once.
package ir
