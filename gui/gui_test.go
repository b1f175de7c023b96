package gui

import (
	"testing"

	"github.com/joshm20/gridsheet/config"
	"github.com/joshm20/gridsheet/session"
)

func TestGUICreation(t *testing.T) {
	sess := session.New(3, 3)
	cfg := config.DefaultConfig()

	g := newGUI(sess, cfg)
	if g == nil {
		t.Fatal("GUI creation returned nil")
	}
	if g.GridView == nil {
		t.Error("GridView not initialized")
	}
	if g.EditorEntry == nil {
		t.Error("EditorEntry not initialized")
	}
	if g.ErrorLabel == nil {
		t.Error("ErrorLabel not initialized")
	}
	if g.Toolbar == nil {
		t.Error("Toolbar not initialized")
	}

	if g.App != nil {
		g.App.Quit()
	}
}

func TestTruncatePad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hi", 5, "hi   "},
		{"toolongvalue", 5, "toolo"},
	}
	for _, tt := range tests {
		if got := truncatePad(tt.in, tt.width); got != tt.want {
			t.Errorf("truncatePad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestMoveCursorStaysInBounds(t *testing.T) {
	sess := session.New(2, 2)
	cfg := config.DefaultConfig()
	g := newGUI(sess, cfg)

	g.moveCursor(-1, -1)
	if g.CursorRow != 0 || g.CursorCol != 0 {
		t.Errorf("cursor moved out of bounds: (%d, %d)", g.CursorRow, g.CursorCol)
	}

	if g.App != nil {
		g.App.Quit()
	}
}
