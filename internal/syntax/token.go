// Package syntax implements lexical and syntactic analysis for Lox expressions.
package syntax

import "fmt"

// Kind represents the category of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF Kind = iota // end of input

	// Single-character punctuation
	_Comma  // ,
	_Dot    // .
	_Assign // =
	_Lbrace // {
	_Rbrace // }
	_Lparen // (
	_Rparen // )
	_Semi   // ;
	_Quote  // "

	// Single-character operators
	_Not // !
	_Gtr // >
	_Lss // <
	_Sub // -
	_Add // +
	_Div // /
	_Mul // *

	// Two-character operators
	_Eql // ==
	_Neq // !=
	_Geq // >=
	_Leq // <=

	// Keywords
	_And
	_Class
	_Else
	_False
	_For
	_Fun
	_If
	_Nil
	_Or
	_Print
	_Return
	_Super
	_This
	_True
	_Var
	_While

	// Literals
	_Name   // identifier: foo, bar
	_Number // integer digits: 123
	_String // string body, quotes stripped

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	_EOF: "EOF",

	_Comma:  ",",
	_Dot:    ".",
	_Assign: "=",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lparen: "(",
	_Rparen: ")",
	_Semi:   ";",
	_Quote:  `"`,

	_Not: "!",
	_Gtr: ">",
	_Lss: "<",
	_Sub: "-",
	_Add: "+",
	_Div: "/",
	_Mul: "*",

	_Eql: "==",
	_Neq: "!=",
	_Geq: ">=",
	_Leq: "<=",

	_And:    "and",
	_Class:  "class",
	_Else:   "else",
	_False:  "false",
	_For:    "for",
	_Fun:    "fun",
	_If:     "if",
	_Nil:    "nil",
	_Or:     "or",
	_Print:  "print",
	_Return: "return",
	_Super:  "super",
	_This:   "this",
	_True:   "true",
	_Var:    "var",
	_While:  "while",

	_Name:   "IDENTIFIER",
	_Number: "NUMBER",
	_String: "STRING",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: == !=
//	2: > < >= <=
//	3: + -
//	4: * /
func (k Kind) Precedence() int {
	switch k {
	case _Eql, _Neq:
		return 1
	case _Gtr, _Lss, _Geq, _Leq:
		return 2
	case _Add, _Sub:
		return 3
	case _Mul, _Div:
		return 4
	}
	return 0
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _And && k <= _While
}

// IsOperator reports whether k is an operator or punctuation symbol.
func (k Kind) IsOperator() bool {
	return k >= _Comma && k <= _Leq
}

// IsLiteral reports whether k is a literal category (identifier, number or string).
func (k Kind) IsLiteral() bool {
	return k >= _Name && k <= _String
}

// IsEOF reports whether k is the end-of-input kind.
func (k Kind) IsEOF() bool {
	return k == _EOF
}

// Exported kinds for consumers of the AST outside this package.
const (
	EOF = _EOF

	Not Kind = _Not // !
	Sub Kind = _Sub // -
	Add Kind = _Add // +
	Mul Kind = _Mul // *
	Div Kind = _Div // /
	Eql Kind = _Eql // ==
	Neq Kind = _Neq // !=
	Gtr Kind = _Gtr // >
	Geq Kind = _Geq // >=
	Lss Kind = _Lss // <
	Leq Kind = _Leq // <=
)

// Token is a single classified lexeme. Tokens are comparable; two tokens
// are equal iff kind, lexeme and line all match.
type Token struct {
	Kind Kind
	Lit  string // exact lexeme; empty for EOF
	Line int    // 0-based physical source line
}

func (t Token) String() string {
	return fmt.Sprintf("[%d] %s -> %s", t.Line, t.Lit, t.Kind)
}

// keywords maps keyword strings to their kind.
var keywords = map[string]Kind{
	"and":    _And,
	"class":  _Class,
	"else":   _Else,
	"false":  _False,
	"for":    _For,
	"fun":    _Fun,
	"if":     _If,
	"nil":    _Nil,
	"or":     _Or,
	"print":  _Print,
	"return": _Return,
	"super":  _Super,
	"this":   _This,
	"true":   _True,
	"var":    _Var,
	"while":  _While,
}

// symbols maps single-character punctuation and operators to their kind.
var symbols = map[string]Kind{
	",": _Comma,
	".": _Dot,
	"=": _Assign,
	"{": _Lbrace,
	"}": _Rbrace,
	"(": _Lparen,
	")": _Rparen,
	";": _Semi,
	`"`: _Quote,
	"!": _Not,
	">": _Gtr,
	"<": _Lss,
	"-": _Sub,
	"+": _Add,
	"/": _Div,
	"*": _Mul,
}

// twoChar maps the first character of a two-character operator to its
// kind. The second character is always '='.
var twoChar = map[string]Kind{
	"=": _Eql,
	"!": _Neq,
	">": _Geq,
	"<": _Leq,
}

// LookupKeyword returns the kind for the given word.
// If the word is a keyword, returns the keyword kind.
// Otherwise, returns the identifier kind.
func LookupKeyword(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return _Name
}
