package safecalc

import (
	"strconv"
	"strings"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number. Its text always uses . as the decimal
	// point.
	tokenNum
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open paren.
	tokenOpen
	// tokenClose is a close paren.
	tokenClose
	// tokenSep is a comma separating function arguments.
	tokenSep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the characters which make up operators in a normalized
// expression. ** is exponentiation.
const Operators = "+-*/%"

// punct is the set of non-alphanumeric characters the lexer accepts.
const punct = Operators + "()_.,"

type lexer struct {
	src []rune
	i   int
	// calls is the stack of open parens. An element is true if that paren
	// opens the argument list of a function call.
	calls []bool
	toks  []token
}

// lex converts a normalized expression to a list of tokens ending in an EOF
// token. Characters and paren balance are checked over the entire input
// before any token is produced.
func lex(src string) ([]token, error) {
	l := lexer{src: []rune(src)}
	if err := l.check(); err != nil {
		return nil, err
	}
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		l.toks = append(l.toks, tok)
		if tok.kind == tokenEOF {
			return l.toks, nil
		}
	}
}

// check verifies that every rune is allowed and that parens balance.
func (l *lexer) check() error {
	for i, r := range l.src {
		if !allowed(r) {
			return &CharacterError{Col: i + 1, Char: r}
		}
	}
	var open []int
	for i, r := range l.src {
		switch r {
		case '(':
			open = append(open, i+1)
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: i + 1}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1], Open: true}
	}
	return nil
}

func allowed(r rune) bool {
	return isDigit(r) || isLetter(r) || strings.ContainsRune(punct, r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isLetter reports whether r is an ASCII letter. Other letters are not
// allowed anywhere.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// inCall reports whether the innermost open paren is a call's argument list.
func (l *lexer) inCall() bool {
	return len(l.calls) > 0 && l.calls[len(l.calls)-1]
}

// next scans the next token.
func (l *lexer) next() (token, error) {
	tok := token{pos: l.i + 1}
	if l.i >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	r := l.src[l.i]
	switch {
	case isDigit(r), r == '.':
		return l.scanNum()
	case r == ',':
		if !l.inCall() {
			// Decimal comma.
			return l.scanNum()
		}
		l.i++
		tok.text = ","
		tok.kind = tokenSep
		return tok, nil
	case r == '_', isLetter(r):
		return l.scanIdent(), nil
	case r == '(':
		call := false
		if n := len(l.toks); n > 0 && l.toks[n-1].kind == tokenIdent {
			_, call = LookupFunc(l.toks[n-1].text)
		}
		l.calls = append(l.calls, call)
		l.i++
		tok.text = "("
		tok.kind = tokenOpen
		return tok, nil
	case r == ')':
		if len(l.calls) == 0 {
			panic("safecalc: close paren passed balance check with no open paren")
		}
		l.calls = l.calls[:len(l.calls)-1]
		l.i++
		tok.text = ")"
		tok.kind = tokenClose
		return tok, nil
	case r == '*':
		l.i++
		tok.text = "*"
		if l.i < len(l.src) && l.src[l.i] == '*' {
			l.i++
			tok.text = "**"
		}
		tok.kind = tokenOp
		return tok, nil
	case strings.ContainsRune(Operators, r):
		l.i++
		tok.text = string(r)
		tok.kind = tokenOp
		return tok, nil
	default:
		panic("safecalc: character " + strconv.QuoteRune(r) + " passed check")
	}
}

// scanNum scans a number. A comma is a decimal point unless it separates
// call arguments.
func (l *lexer) scanNum() (token, error) {
	tok := token{kind: tokenNum, pos: l.i + 1}
	start := l.i
	var b strings.Builder
	var dig, dots int
	for ; l.i < len(l.src); l.i++ {
		r := l.src[l.i]
		switch {
		case isDigit(r):
			dig++
			b.WriteRune(r)
			continue
		case r == '.', r == ',' && !l.inCall():
			dots++
			b.WriteByte('.')
			continue
		}
		break
	}
	if dig == 0 || dots > 1 {
		return token{}, &SyntaxError{Col: tok.pos, Text: string(l.src[start:l.i]), Reason: "malformed number"}
	}
	tok.text = b.String()
	return tok, nil
}

// scanIdent scans an identifier. Identifiers may contain dots so that names
// like Math.sin are a single unknown identifier.
func (l *lexer) scanIdent() token {
	tok := token{kind: tokenIdent, pos: l.i + 1}
	start := l.i
	for l.i++; l.i < len(l.src); l.i++ {
		r := l.src[l.i]
		if r != '_' && r != '.' && !isLetter(r) && !isDigit(r) {
			break
		}
	}
	tok.text = string(l.src[start:l.i])
	return tok
}
