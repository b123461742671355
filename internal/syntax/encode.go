package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the expressions to w.
func FprintJSON(w io.Writer, list []Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listTree(list))
}

// FprintYAML writes a YAML representation of the expressions to w.
func FprintYAML(w io.Writer, list []Expr) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listTree(list)); err != nil {
		return err
	}
	return enc.Close()
}

// FprintTokensJSON writes toks to w as a JSON array.
func FprintTokensJSON(w io.Writer, toks []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenTree(toks))
}

// FprintTokensYAML writes toks to w as a YAML sequence.
func FprintTokensYAML(w io.Writer, toks []Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tokenTree(toks)); err != nil {
		return err
	}
	return enc.Close()
}

func listTree(list []Expr) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, x := range list {
		out = append(out, toTree(x))
	}
	return out
}

func tokenTree(toks []Token) []interface{} {
	out := make([]interface{}, 0, len(toks))
	for _, tok := range toks {
		out = append(out, map[string]interface{}{
			"kind":   tok.Kind.String(),
			"lexeme": tok.Lit,
			"line":   tok.Line,
		})
	}
	return out
}

// toTree converts x into generic maps shared by the JSON and YAML encoders.
func toTree(x Expr) interface{} {
	if x == nil {
		return nil
	}

	switch n := x.(type) {
	case *Constant:
		return map[string]interface{}{
			"type":  "Constant",
			"line":  n.pos.Line(),
			"value": n.Value,
		}

	case *Bool:
		return map[string]interface{}{
			"type":  "Bool",
			"line":  n.pos.Line(),
			"value": n.Value,
		}

	case *String:
		return map[string]interface{}{
			"type":  "String",
			"line":  n.pos.Line(),
			"value": n.Value,
		}

	case *Nil:
		return map[string]interface{}{
			"type": "Nil",
			"line": n.pos.Line(),
		}

	case *UnaryOp:
		return map[string]interface{}{
			"type": "UnaryOp",
			"line": n.pos.Line(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
		}

	case *BinaryOp:
		return map[string]interface{}{
			"type": "BinaryOp",
			"line": n.pos.Line(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}
