package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("test.lox", 10),
			wantStr: "test.lox:10",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10),
			wantStr: "10",
		},
		{
			name:    "first line",
			pos:     NewPos("main.lox", 0),
			wantStr: "main.lox:0",
		},
		{
			name:    "directory stripped",
			pos:     NewPos("src/pkg/main.lox", 4),
			wantStr: "main.lox:4",
		},
		{
			name:    "zero value",
			pos:     Pos{},
			wantStr: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosAccessors(t *testing.T) {
	pos := NewPos("dir/test.lox", 7)

	if pos.Line() != 7 {
		t.Errorf("Line() = %d, want 7", pos.Line())
	}
	if pos.Filename() != "dir/test.lox" {
		t.Errorf("Filename() = %q, want %q", pos.Filename(), "dir/test.lox")
	}
}
