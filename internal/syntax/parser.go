package syntax

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SyntaxError represents a parse error at an offending token.
type SyntaxError struct {
	Pos Pos
	Tok Token  // offending token
	Msg string // what the parser expected
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: error with '%s'", e.Pos, e.Tok.Lit)
}

// ErrorHandler is called by Parse for each syntax error it recovers from.
type ErrorHandler func(err *SyntaxError)

// Parser performs syntax analysis on a token sequence.
// A Parser owns its cursor; it is not safe for concurrent use, but
// independent Parsers may run in parallel over shared tokens.
type Parser struct {
	filename string
	toks     []Token

	// Cursor
	index int   // position of tok in toks
	tok   Token // current token

	// Error handling
	errh   ErrorHandler
	errcnt int
	first  error // first error encountered
}

// NewParser creates a new Parser over toks. If toks is not terminated by
// an EOF token, one is appended on the line of the last token so that
// lookahead is always bounded. The errh function is called for each
// error Parse recovers from; if nil, errors are only counted.
func NewParser(filename string, toks []Token, errh ErrorHandler) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != _EOF {
		line := 0
		if n > 0 {
			line = toks[n-1].Line
		}
		toks = append(toks[:n:n], Token{Kind: _EOF, Line: line})
	}

	p := &Parser{
		filename: filename,
		toks:     toks,
		errh:     errh,
	}
	p.tok = p.toks[0]
	return p
}

// ParseString scans and parses in-memory source text.
func ParseString(filename, src string, errh ErrorHandler) ([]Expr, error) {
	toks, err := NewScanner(filename, strings.NewReader(src)).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(filename, toks, errh).Parse(), nil
}

// ParseFile scans and parses the file at path.
func ParseFile(path string, errh ErrorHandler) ([]Expr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	toks, err := NewScanner(path, f).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(path, toks, errh).Parse(), nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. The cursor never moves past EOF.
func (p *Parser) next() {
	if p.index < len(p.toks)-1 {
		p.index++
		p.tok = p.toks[p.index]
	}
}

// got reports whether the current token is of kind k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is of kind k.
// Otherwise, it returns a syntax error and leaves the cursor in place.
func (p *Parser) want(k Kind) error {
	if !p.got(k) {
		return p.errorf("expected %s", k)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Error handling

// errorf returns a syntax error at the current token.
func (p *Parser) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Pos: p.posOf(p.tok),
		Tok: p.tok,
		Msg: fmt.Sprintf(format, args...),
	}
}

// report records err and passes it to the error handler.
func (p *Parser) report(err error) {
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		serr = &SyntaxError{Pos: p.posOf(p.tok), Tok: p.tok, Msg: err.Error()}
	}
	if p.errcnt == 0 {
		p.first = serr
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(serr)
	}
}

// advance discards tokens after an error until a point where parsing can
// resume. The offending token is always consumed. Recovery stops before a
// class or for keyword, after a semicolon, or at EOF.
func (p *Parser) advance() {
	for p.tok.Kind != _EOF {
		if p.got(_Semi) {
			return
		}
		p.next()
		switch p.tok.Kind {
		case _Class, _For:
			return
		}
	}
}

// Errors returns the number of errors Parse recovered from.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

func (p *Parser) posOf(tok Token) Pos {
	return NewPos(p.filename, tok.Line)
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses semicolon-terminated expressions until EOF and returns them
// in source order. A malformed expression is reported, skipped, and
// contributes nothing to the result.
func (p *Parser) Parse() []Expr {
	var list []Expr
	for p.tok.Kind != _EOF {
		x, err := p.exprStmt()
		if err != nil {
			p.report(err)
			p.advance()
			continue
		}
		list = append(list, x)
	}
	return list
}

// ParseExpr parses a single expression at the cursor. Errors are returned
// to the caller without recovery and are not passed to the error handler.
func (p *Parser) ParseExpr() (Expr, error) {
	return p.expr()
}

// exprStmt parses: expr ";"
func (p *Parser) exprStmt() (Expr, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.want(_Semi); err != nil {
		return nil, err
	}
	return x, nil
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() (Expr, error) {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Each precedence level is left associative:
//
//	equality   := comparison (("==" | "!=") comparison)*
//	comparison := term ((">" | "<" | ">=" | "<=") term)*
//	term       := factor (("+" | "-") factor)*
//	factor     := unary (("*" | "/") unary)*
func (p *Parser) binaryExpr(prec int) (Expr, error) {
	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x, nil
		}

		// Binary expression position starts at the left operand.
		op := &BinaryOp{X: x, Op: p.tok.Kind}
		op.pos = x.Pos()

		p.next() // consume operator

		if op.Y, err = p.binaryExpr(oprec); err != nil {
			return nil, err
		}
		x = op
	}
}

// unaryExpr parses: ("!" | "-") unary | grouping
func (p *Parser) unaryExpr() (Expr, error) {
	switch p.tok.Kind {
	case _Not, _Sub:
		op := &UnaryOp{Op: p.tok.Kind}
		op.pos = p.posOf(p.tok)
		p.next()

		var err error
		if op.X, err = p.unaryExpr(); err != nil {
			return nil, err
		}
		return op, nil

	default:
		return p.grouping()
	}
}

// grouping parses: "(" expr ")" | primary
func (p *Parser) grouping() (Expr, error) {
	if !p.got(_Lparen) {
		return p.primary()
	}

	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.want(_Rparen); err != nil {
		return nil, err
	}
	return x, nil
}

// primary parses: NUMBER ["." NUMBER] | STRING | "true" | "false" | "nil"
func (p *Parser) primary() (Expr, error) {
	tok := p.tok
	pos := p.posOf(tok)

	switch tok.Kind {
	case _Number:
		p.next()
		lit := tok.Lit

		// The scanner leaves decimals split as NUMBER DOT NUMBER.
		if p.got(_Dot) {
			if p.tok.Kind != _Number {
				return nil, p.errorf("expected digits after '.'")
			}
			lit += "." + p.tok.Lit
			p.next()
		}

		// Out-of-range literals keep ParseFloat's ±Inf.
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &SyntaxError{Pos: pos, Tok: tok, Msg: "invalid number " + lit}
		}
		x := &Constant{Value: v}
		x.pos = pos
		return x, nil

	case _String:
		p.next()
		x := &String{Value: tok.Lit}
		x.pos = pos
		return x, nil

	case _True, _False:
		p.next()
		x := &Bool{Value: tok.Kind == _True}
		x.pos = pos
		return x, nil

	case _Nil:
		p.next()
		x := &Nil{}
		x.pos = pos
		return x, nil

	default:
		return nil, p.errorf("expected expression")
	}
}
