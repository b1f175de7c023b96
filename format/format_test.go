package format_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshm20/gridsheet/format"
)

func TestFormatCanonicalizesWhitespace(t *testing.T) {
	got, err := format.Format("1+2*3")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "(1 + (2 * 3))"; got != want {
		t.Errorf("Format(\"1+2*3\") = %q, want %q", got, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	first, err := format.Format("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	second, err := format.Format(first)
	if err != nil {
		t.Fatalf("Format (second pass): %v", err)
	}
	if first != second {
		t.Errorf("Format is not idempotent: %q != %q", first, second)
	}
}

func TestFormatReturnsSourceAndErrorOnParseFailure(t *testing.T) {
	src := "1 +"
	got, err := format.Format(src)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if got != src {
		t.Errorf("Format on failure = %q, want the original source %q", got, src)
	}
}

func TestFormatFileRewritesFormulasInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.gs")
	content := "# a header\n0,0: 1+2\n0,1: #[0,0]+3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	errs, err := format.FormatFile(path)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected per-line errors: %v", errs)
	}

	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rewritten file: %v", err)
	}
	out := string(rewritten)
	if !strings.Contains(out, "# a header") {
		t.Error("expected the comment line to survive untouched")
	}
	if !strings.Contains(out, "0,0: (1 + 2)") {
		t.Errorf("expected a canonicalized formula, got:\n%s", out)
	}
}

func TestFormatFileReportsBadFormulaButContinues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.gs")
	content := "0,0: 1+\n0,1: 2+3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	errs, err := format.FormatFile(path)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one per-line error, got %d: %v", len(errs), errs)
	}

	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rewritten file: %v", err)
	}
	if !strings.Contains(string(rewritten), "0,1: (2 + 3)") {
		t.Errorf("expected the well-formed line to still be rewritten, got:\n%s", string(rewritten))
	}
}
