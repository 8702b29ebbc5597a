package safecalc

import (
	"errors"
	"strconv"
	"strings"
)

// Expr = num | const | Call | Neg | Plus | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = funcname '(' Expr { ',' Expr } ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr Expr
// Div = Expr '/' Expr
// Mod = Expr '%' Expr
// Pow = Expr '**' Expr

// Expr is a parsed expression. Every name in an Expr has been resolved to a
// known constant or function, so evaluating it cannot fail except by producing
// a non-finite value.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser is a cursor over a token list. The list always ends in an EOF
// token, which next never moves past.
type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	tok := p.toks[p.i]
	if tok.kind != tokenEOF {
		p.i++
	}
	return tok
}

// Parse normalizes and parses an expression. The result is either a fully
// resolved expression or an error implementing InputError.
func Parse(src string) (*Expr, error) {
	s, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	n, err := parseterm(&p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// parseterm parses operands joined by operators more binding than until. It
// stops before the first token it does not consume.
func parseterm(p *parser, until operator) (*node, error) {
	n, err := parselhs(p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// (parsed) x -> (parsed) * (x)
			// (parsed) x**y -> (parsed) * (x**y)
			// a**(parsed) x -> (a**(parsed)) * (x)
			prec := termprec
			if !prec.moreBinding(until) {
				return n, nil
			}
			rhs, err := parseterm(p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "unknown operator"}
			}
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.next()
			rhs, err := parseterm(p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			return n, nil
		default:
			panic("safecalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first operand of a term, including any unary operators
// applied to it.
func parselhs(p *parser, until operator) (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		// Out of range literals are ±Inf or 0, which evaluation reports.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "malformed number"}
		}
		return &node{kind: nodeNum, name: tok.text, num: v}, nil
	case tokenIdent:
		if p.peek().kind == tokenOpen {
			if fn, ok := LookupFunc(tok.text); ok {
				return parsecall(p, tok, fn)
			}
		}
		if v, ok := LookupConstant(tok.text); ok {
			return &node{kind: nodeConst, name: strings.ToLower(tok.text), num: v}, nil
		}
		_, fn := LookupFunc(tok.text)
		return nil, &UnknownIdentifierError{Col: tok.pos, Name: tok.text, Func: fn}
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "missing operand before operator"}
		}
		if !prec.moreBinding(until) {
			// x**-y -> x**(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(p, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		if end := p.peek(); end.kind == tokenClose {
			return nil, &SyntaxError{Col: end.pos, Text: end.text, Reason: "empty parentheses"}
		}
		n, err := parseterm(p, exprprec)
		if err != nil {
			return nil, err
		}
		if end := p.next(); end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end)
		}
		return n, nil
	case tokenClose, tokenSep, tokenEOF:
		return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "missing operand"}
	default:
		panic("safecalc: unknown token: " + tok.String())
	}
}

// parsecall parses the argument list of a call to fn. The next token is the
// open paren.
func parsecall(p *parser, name token, fn Func) (*node, error) {
	if open := p.next(); open.kind != tokenOpen {
		panic("safecalc: parsecall without argument list: " + open.String())
	}
	if end := p.peek(); end.kind == tokenClose {
		return nil, &SyntaxError{Col: end.pos, Text: end.text, Reason: "empty argument list"}
	}
	var args []*node
	for {
		a, err := parseterm(p, exprprec)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		end := p.next()
		if end.kind == tokenClose {
			break
		}
		if end.kind != tokenSep {
			return nil, itShouldNotHaveEndedThisWay(end)
		}
	}
	if len(args) != fn.Arity() {
		return nil, &CallError{Col: name.pos, Func: name.text, Len: len(args), Arity: fn.Arity()}
	}
	return &node{kind: nodeCall, name: strings.ToLower(name.text), fn: fn, args: args}, nil
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression.
func itShouldNotHaveEndedThisWay(tok token) error {
	switch tok.kind {
	case tokenEOF:
		return &SyntaxError{Col: tok.pos, Reason: "unexpected end"}
	case tokenClose:
		return &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "unexpected close paren"}
	case tokenSep:
		// The lexer only produces separators inside argument lists.
		return &SyntaxError{Col: tok.pos, Text: tok.text, Reason: "unexpected argument separator"}
	default:
		panic("safecalc: it really should not have ended this way: " + tok.String())
	}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "**":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

var (
	// termprec is the precedence of implicit multiplication. It must match
	// that of *, so 6/2(3) is (6/2)*3.
	termprec = operator{5, false, nodeMul}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
