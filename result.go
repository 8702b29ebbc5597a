package safecalc

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of evaluating an input. Exactly one of Value and Err
// is meaningful, according to Success.
type Result struct {
	// Expression is the input exactly as given.
	Expression string
	// Success is true if the input produced a finite value.
	Success bool
	// Value is the result. It is zero if Success is false.
	Value float64
	// Err describes the failure. It is nil if Success is true.
	Err error
}

// Kind returns the kind of the result's error, or KindNone on success.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// Message returns the error text, or the empty string on success.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type jsonResult struct {
	Success    bool     `json:"success"`
	Value      *float64 `json:"value,omitempty"`
	Error      string   `json:"error,omitempty"`
	Kind       string   `json:"kind,omitempty"`
	Expression string   `json:"expression"`
}

// MarshalJSON encodes the result as an object with success, value, error,
// kind, and expression fields. value is omitted on failure; error and kind
// are omitted on success.
func (r Result) MarshalJSON() ([]byte, error) {
	j := jsonResult{
		Success:    r.Success,
		Error:      r.Message(),
		Expression: r.Expression,
	}
	if r.Success {
		v := r.Value
		j.Value = &v
	} else {
		j.Kind = r.Kind().String()
	}
	return json.Marshal(j)
}

func failure(expr string, err error) Result {
	return Result{Expression: expr, Err: err}
}

// Evaluate parses and evaluates an expression. Any failure, including a
// result that is NaN or infinite, is reported in the Result rather than by
// panicking.
func Evaluate(expr string) Result {
	e, err := Parse(expr)
	if err != nil {
		return failure(expr, err)
	}
	v := e.Eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return failure(expr, &NotFiniteError{Value: v})
	}
	return Result{Expression: expr, Success: true, Value: v}
}

// ParseNumericInput evaluates input from a numeric field. Plain decimal
// numbers take a fast path; anything else goes through Evaluate.
func ParseNumericInput(input string) Result {
	if utf8.RuneCountInString(input) <= MaxLength {
		if v, ok := strictNumber(strings.TrimSpace(input)); ok {
			return Result{Expression: input, Success: true, Value: v}
		}
	}
	return Evaluate(input)
}

// LooksLikeExpression reports whether input appears to be an expression
// rather than a plain number: it contains an operator or paren, or it names a
// known constant or function. It is a heuristic and does not validate the
// input.
func LooksLikeExpression(input string) bool {
	s := strings.TrimSpace(input)
	if _, ok := strictNumber(s); ok {
		return false
	}
	s = canonGlyphs(s)
	if strings.ContainsAny(s, Operators+"()") {
		return true
	}
	for i := 0; i < len(s); {
		c := rune(s[i])
		if c != '_' && !isLetter(c) {
			i++
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == '_' || isLetter(rune(s[j])) || isDigit(rune(s[j]))) {
			j++
		}
		name := s[i:j]
		if _, ok := LookupConstant(name); ok {
			return true
		}
		if _, ok := LookupFunc(name); ok {
			return true
		}
		i = j
	}
	return false
}

// strictNumber parses an optionally signed decimal number with no exponent,
// such as -12, 3.5, or .5. Other forms that strconv accepts, like 1e5, inf,
// or hexadecimal, are rejected. The result is always finite.
func strictNumber(s string) (float64, bool) {
	t := s
	if t != "" && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	dig, dots := 0, 0
	for i := 0; i < len(t); i++ {
		switch c := t[i]; {
		case '0' <= c && c <= '9':
			dig++
		case c == '.':
			dots++
		default:
			return 0, false
		}
	}
	if dig == 0 || dots > 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Only range errors are possible here.
		return 0, false
	}
	return v, true
}
