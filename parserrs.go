package safecalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the ways an expression can fail.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindEmptyExpression indicates an empty or all-whitespace input.
	KindEmptyExpression
	// KindTooLong indicates an input longer than MaxLength.
	KindTooLong
	// KindInvalidCharacter indicates a rune outside the allowed set.
	KindInvalidCharacter
	// KindUnbalancedParens indicates a parenthesis without a partner.
	KindUnbalancedParens
	// KindUnknownIdentifier indicates a name that is not a known constant or
	// function.
	KindUnknownIdentifier
	// KindArityMismatch indicates a call with the wrong number of arguments.
	KindArityMismatch
	// KindSyntaxError indicates any other malformed input.
	KindSyntaxError
	// KindNotFiniteResult indicates that evaluation produced NaN or ±Inf.
	KindNotFiniteResult
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind -trimprefix=Kind
//go:generate go mod tidy

// KindOf returns the kind of err. A nil error has KindNone. Errors that did
// not come from this package have KindSyntaxError.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindSyntaxError
}

// LengthError is an error indicating an expression that is too long.
type LengthError struct {
	// Len is the number of runes in the input.
	Len int
	// Max is the maximum allowed number of runes.
	Max int
}

func (err *LengthError) Error() string {
	return "expression too long: " + strconv.Itoa(err.Len) + " characters, limit is " + strconv.Itoa(err.Max)
}

func (err *LengthError) Pos() int {
	return err.Max + 1
}

func (err *LengthError) Kind() ErrorKind {
	return KindTooLong
}

// EmptyExpressionError is an error indicating that there is no expression at
// all.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

func (err *EmptyExpressionError) Kind() ErrorKind {
	return KindEmptyExpression
}

// CharacterError is an error indicating a character which cannot appear in an
// expression. It implements InputError.
type CharacterError struct {
	// Col is the position of the character.
	Col int
	// Char is the invalid character.
	Char rune
}

func (err *CharacterError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharacterError) Pos() int {
	return err.Col
}

func (err *CharacterError) Kind() ErrorKind {
	return KindInvalidCharacter
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open paren with no close paren")
	}
	return errpos(err.Col, "close paren with no open paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Kind() ErrorKind {
	return KindUnbalancedParens
}

// UnknownIdentifierError is an error indicating a name that is not one of the
// known constants or functions. It implements InputError.
type UnknownIdentifierError struct {
	// Col is the position of the name.
	Col int
	// Name is the name as written.
	Name string
	// Func is true if the name is a known function used without an argument
	// list.
	Func bool
}

func (err *UnknownIdentifierError) Error() string {
	if err.Func {
		return errpos(err.Col, "function "+strconv.Quote(err.Name)+" used without arguments")
	}
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *UnknownIdentifierError) Pos() int {
	return err.Col
}

func (err *UnknownIdentifierError) Kind() ErrorKind {
	return KindUnknownIdentifier
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
	// Arity is the number of arguments the function takes.
	Arity int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments (want "+strconv.Itoa(err.Arity)+")")
}

func (err *CallError) Pos() int {
	return err.Col
}

func (err *CallError) Kind() ErrorKind {
	return KindArityMismatch
}

// SyntaxError is an error indicating malformed input, such as a missing
// operand or a misplaced operator. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token where parsing failed.
	Col int
	// Text is the text of that token. It is empty at the end of input.
	Text string
	// Reason describes the problem.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Reason+" at end of expression")
	}
	return errpos(err.Col, err.Reason+" at "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Kind() ErrorKind {
	return KindSyntaxError
}

// NotFiniteError is an error indicating that an expression evaluated to NaN
// or an infinity, e.g. because of a division by zero.
type NotFiniteError struct {
	// Value is the non-finite result.
	Value float64
}

func (err *NotFiniteError) Error() string {
	return "result is not a finite number: " + strconv.FormatFloat(err.Value, 'g', -1, 64)
}

func (err *NotFiniteError) Kind() ErrorKind {
	return KindNotFiniteResult
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError. Positions count runes of the normalized
// expression, starting at 1.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
	// Kind returns the classification of the error.
	Kind() ErrorKind
}

var (
	_ InputError = (*LengthError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*CharacterError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*UnknownIdentifierError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
