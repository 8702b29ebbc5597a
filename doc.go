// Package safecalc implements a sandboxed calculator for numeric input
// fields.
//
// The syntax is meant to be what people type into a box that wants a number.
// "2pi" is two times pi, "3(4+1)" is 15, and "3,14" is 3.14 unless the comma
// separates the arguments of a call like "min(3,7)". "-2^2" is the same as
// "-(2**2)", where "a**b" and "a^b" are exponentiation.
//
// There are no variables and no way to name anything outside a fixed set of
// constants and functions. Every identifier is checked against that set while
// parsing, and evaluation walks the parsed tree directly, so no part of the
// input is ever executed as code.
//
package safecalc
