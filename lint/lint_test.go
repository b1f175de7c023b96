package lint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshm20/gridsheet/lint"
)

func TestLintSourceAcceptsWellFormedFormula(t *testing.T) {
	if issue := lint.LintSource(0, 0, "1 + 2 * 3"); issue != nil {
		t.Errorf("expected no issue, got %v", issue)
	}
}

func TestLintSourceReportsParseFailure(t *testing.T) {
	issue := lint.LintSource(2, 3, "1 +")
	if issue == nil {
		t.Fatal("expected an issue for a dangling operator")
	}
	if issue.Row != 2 || issue.Col != 3 {
		t.Errorf("issue address = (%d, %d), want (2, 3)", issue.Row, issue.Col)
	}
}

func TestLintSourceReportsLexFailure(t *testing.T) {
	issue := lint.LintSource(0, 0, `"unterminated`)
	if issue == nil {
		t.Fatal("expected an issue for an unterminated string")
	}
}

func TestLintFileCollectsEveryBadFormula(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.gs")
	content := "0,0: 5\n0,1: 1 +\n1,0: #[0,0] + 3\nnotanaddress\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	issues, err := lint.LintFile(path)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}
	if issues.Len() != 2 {
		t.Fatalf("issues.Len() = %d, want 2 (one bad formula, one bad address line)", issues.Len())
	}
}

func TestLintFileCleanFileHasNoIssues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.gs")
	content := "# header comment\n0,0: 5\n0,1: #[0,0] + 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	issues, err := lint.LintFile(path)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}
	if issues.Len() != 0 {
		t.Errorf("issues.Len() = %d, want 0: %v", issues.Len(), issues)
	}
}

func TestLintFileMissingPathErrors(t *testing.T) {
	if _, err := lint.LintFile(filepath.Join(t.TempDir(), "nope.gs")); err == nil {
		t.Error("expected an error for a nonexistent batch file")
	}
}
