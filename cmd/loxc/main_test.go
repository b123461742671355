package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/lox/internal/config"
)

func TestASTPrintsTextTrees(t *testing.T) {
	filename := writeTempLoxFile(t, "1 + 2;\n")
	code, out, errOut := runLoxc(t, "ast", "--color", "never", filename)

	if code != 0 {
		t.Fatalf("ast exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	want := "Binary[\n  Const[1.0]\n  +\n  Const[2.0]\n]\n"
	if out != want {
		t.Fatalf("ast output:\n%s\nwant:\n%s", out, want)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
}

func TestASTReportsErrorsAndKeepsGoodTrees(t *testing.T) {
	filename := writeTempLoxFile(t, "1;\n& 3;\n2;\n")
	code, out, errOut := runLoxc(t, "ast", "--color", "never", filename)

	if code != 1 {
		t.Fatalf("ast exit=%d, want 1\nstderr:\n%s", code, errOut)
	}
	if strings.Count(out, "Const[") != 2 {
		t.Fatalf("want two trees on stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "ParseError at [in.lox:1]: error with '&'") {
		t.Fatalf("stderr missing diagnostic:\n%s", errOut)
	}
}

func TestASTVerboseAddsExpectationAndLogs(t *testing.T) {
	filename := writeTempLoxFile(t, "1 +;\n")
	code, _, errOut := runLoxc(t, "ast", "-v", "--color", "never", filename)

	if code != 1 {
		t.Fatalf("ast exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "error with ';' (expected expression)") {
		t.Fatalf("verbose diagnostic missing expectation:\n%s", errOut)
	}
	if !strings.Contains(errOut, "level=DEBUG msg=scanned") {
		t.Fatalf("verbose run missing debug log:\n%s", errOut)
	}
}

func TestASTJSONFormat(t *testing.T) {
	filename := writeTempLoxFile(t, "!true;\n")
	code, out, errOut := runLoxc(t, "ast", "-f", "json", filename)

	if code != 0 {
		t.Fatalf("ast exit=%d\nstderr:\n%s", code, errOut)
	}
	var trees []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &trees); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(trees) != 1 || trees[0]["type"] != "UnaryOp" {
		t.Fatalf("unexpected trees: %v", trees)
	}
}

func TestASTUsesConfigIndent(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "loxc.toml")
	if err := os.WriteFile(cfgPath, []byte("[output]\nindent = 4\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	filename := writeTempLoxFile(t, "-1;\n")
	code, out, errOut := runLoxc(t, "ast", "--config", cfgPath, filename)

	if code != 0 {
		t.Fatalf("ast exit=%d\nstderr:\n%s", code, errOut)
	}
	if want := "Unary[\n    -\n    Const[1.0]\n]\n"; out != want {
		t.Fatalf("ast output:\n%s\nwant:\n%s", out, want)
	}
}

func TestTokensPrintsTable(t *testing.T) {
	filename := writeTempLoxFile(t, "print \"hi\";\n")
	code, out, errOut := runLoxc(t, "tokens", filename)

	if code != 0 {
		t.Fatalf("tokens exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"POSITION", "print", "STRING", `"hi"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Fatalf("token table missing %q:\n%s", want, out)
		}
	}
}

func TestTokensYAMLFormat(t *testing.T) {
	filename := writeTempLoxFile(t, "x")
	code, out, errOut := runLoxc(t, "tokens", "--format", "yaml", filename)

	if code != 0 {
		t.Fatalf("tokens exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "kind: IDENTIFIER") || !strings.Contains(out, "kind: EOF") {
		t.Fatalf("yaml output missing tokens:\n%s", out)
	}
}

func TestCheckPrintsSummary(t *testing.T) {
	filename := writeTempLoxFile(t, "1; 2; @; 3;\n")
	code, out, errOut := runLoxc(t, "check", "--color", "never", filename)

	if code != 1 {
		t.Fatalf("check exit=%d, want 1", code)
	}
	if want := filename + ": 3 expressions, 1 errors\n"; out != want {
		t.Fatalf("check output = %q, want %q", out, want)
	}
	if !strings.Contains(errOut, "error with '@'") {
		t.Fatalf("stderr missing diagnostic:\n%s", errOut)
	}
}

func TestCheckCleanFileExitsZero(t *testing.T) {
	filename := writeTempLoxFile(t, "1 == 1;\n")
	code, out, _ := runLoxc(t, "check", filename)

	if code != 0 {
		t.Fatalf("check exit=%d, want 0", code)
	}
	if !strings.HasSuffix(out, ": 1 expressions, 0 errors\n") {
		t.Fatalf("check output = %q", out)
	}
}

func TestMissingFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.lox")
	for _, cmd := range []string{"tokens", "ast", "check"} {
		code, _, errOut := runLoxc(t, cmd, missing)
		if code != 1 {
			t.Fatalf("%s exit=%d, want 1", cmd, code)
		}
		if !strings.Contains(errOut, "error:") {
			t.Fatalf("%s stderr missing error:\n%s", cmd, errOut)
		}
	}
}

func TestInvalidFlagsFail(t *testing.T) {
	filename := writeTempLoxFile(t, "1;")
	tests := [][]string{
		{"ast", "--format", "xml", filename},
		{"ast", "--color", "rainbow", filename},
		{"ast"},
		{"ast", filename, filename},
	}

	for _, args := range tests {
		code, _, errOut := runLoxc(t, args...)
		if code != 1 {
			t.Fatalf("%v exit=%d, want 1", args, code)
		}
		if !strings.HasPrefix(errOut, "error: ") {
			t.Fatalf("%v stderr = %q, want error prefix", args, errOut)
		}
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runLoxc(t, "version")
	if code != 0 {
		t.Fatalf("version exit=%d", code)
	}
	if !strings.HasPrefix(out, "loxc version "+Version+"\n") {
		t.Fatalf("version output = %q", out)
	}
}

func writeTempLoxFile(t *testing.T, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "in.lox")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return filename
}

// runLoxc executes the command line in an environment with no config file.
func runLoxc(t *testing.T, args ...string) (code int, stdout string, stderr string) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
