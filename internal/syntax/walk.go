package syntax

import "fmt"

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(x Expr) bool

// Walk traverses an expression tree in depth-first order.
// If visitor returns false, children are not visited.
func Walk(x Expr, v Visitor) {
	if x == nil || !v(x) {
		return
	}

	switch n := x.(type) {
	case *Constant, *Bool, *String, *Nil:
		// leaves

	case *UnaryOp:
		Walk(n.X, v)

	case *BinaryOp:
		Walk(n.X, v)
		Walk(n.Y, v)

	default:
		panic(fmt.Sprintf("syntax.Walk: unexpected node type %T", x))
	}
}

// Inspect returns every node of x in depth-first order.
func Inspect(x Expr) []Expr {
	var nodes []Expr
	Walk(x, func(n Expr) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
