package ast

// Walk visits e and its descendants depth first, parents before children. The
// children of a node are skipped when fn returns false. Statements nested in a
// Subquery are opaque and not descended into.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case Unary:
		Walk(n.Operand, fn)
	case Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case Between:
		Walk(n.Expr, fn)
		Walk(n.Low, fn)
		Walk(n.High, fn)
	case Call:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case Tuple:
		for _, item := range n.Items {
			Walk(item, fn)
		}
	}
}
