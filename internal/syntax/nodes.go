package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The node set is closed: only the expression variants below implement
// Expr. Consumers switch on the concrete type and must handle every case.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the token that starts the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// Constant represents a numeric literal: 42 or 3.14
type Constant struct {
	expr
	Value float64
}

// Bool represents true or false.
type Bool struct {
	expr
	Value bool
}

// String represents a string literal; Value is the raw body.
type String struct {
	expr
	Value string
}

// Nil represents nil.
type Nil struct {
	expr
}

// UnaryOp represents a prefix operation: !X or -X
type UnaryOp struct {
	expr
	Op Kind // Not or Sub
	X  Expr
}

// BinaryOp represents a binary operation: X Op Y
type BinaryOp struct {
	expr
	X  Expr
	Op Kind
	Y  Expr
}
