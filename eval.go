package safecalc

import "math"

// Eval evaluates the expression. Domain errors such as division by zero or
// the square root of a negative number produce NaN or an infinity rather
// than an error; Evaluate reports those as failures.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum, nodeConst:
		return n.num
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			args[i] = a.eval()
		}
		return n.fn.Call(args)
	case nodeNeg:
		return -n.left.eval()
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodeMod:
		return math.Mod(n.left.eval(), n.right.eval())
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("safecalc: invalid AST node " + n.kind.String())
	}
}
