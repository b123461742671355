package main

import (
	"fmt"

	"github.com/you-not-fish/lox/internal/syntax"
)

// runTokens scans the input file and prints all tokens with positions.
func runTokens(e *env, filename string) int {
	toks, err := syntax.ScanFile(filename)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return 1
	}
	e.log.Debug("scanned", "file", filename, "tokens", len(toks))

	switch e.cfg.Output.Format {
	case "json":
		err = syntax.FprintTokensJSON(e.stdout, toks)
	case "yaml":
		err = syntax.FprintTokensYAML(e.stdout, toks)
	default:
		syntax.FprintTokens(e.stdout, filename, toks)
	}
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runAST parses the input file and outputs one tree per expression.
func runAST(e *env, filename string) int {
	list, p, err := parseFile(e, filename)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return 1
	}

	switch e.cfg.Output.Format {
	case "json":
		err = syntax.FprintJSON(e.stdout, list)
	case "yaml":
		err = syntax.FprintYAML(e.stdout, list)
	default:
		for _, x := range list {
			syntax.FprintIndent(e.stdout, x, e.cfg.Output.Indent)
		}
	}
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return 1
	}

	if p.Errors() > 0 {
		return 1
	}
	return 0
}

// runCheck parses the input file and prints a one-line summary.
func runCheck(e *env, filename string) int {
	list, p, err := parseFile(e, filename)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(e.stdout, "%s: %d expressions, %d errors\n", filename, len(list), p.Errors())
	if p.Errors() > 0 {
		return 1
	}
	return 0
}

// parseFile scans and parses filename, reporting syntax errors through
// the diagnostic printer.
func parseFile(e *env, filename string) ([]syntax.Expr, *syntax.Parser, error) {
	toks, err := syntax.ScanFile(filename)
	if err != nil {
		return nil, nil, err
	}
	e.log.Debug("scanned", "file", filename, "tokens", len(toks))

	p := syntax.NewParser(filename, toks, e.diag.Handler())
	list := p.Parse()
	e.log.Debug("parsed", "file", filename, "exprs", len(list), "errors", p.Errors())
	if first := p.FirstError(); first != nil {
		e.log.Info("recovered from syntax errors", "first", first)
	}
	return list, p, nil
}
