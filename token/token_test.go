package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Type
	}{
		{"true", BOOLEAN},
		{"false", BOOLEAN},
		{"sum", SUM},
		{"mean", MEAN},
		{"min", MIN},
		{"max", MAX},
		{"float", INTTOFLOAT},
		{"int", FLOATTOINT},
		{"if", IF},
		{"else", ELSE},
		{"for", FOR},
		{"in", IN},
		{"end", END},
		{"x", VARIABLE},
		{"total", VARIABLE},
		{"iffy", VARIABLE},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.lexeme); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tt.lexeme, got, tt.want)
		}
	}
}

func TestTypeStringKnownAndUnknown(t *testing.T) {
	if got := PLUS.String(); got != "PLUS" {
		t.Errorf("PLUS.String() = %q, want %q", got, "PLUS")
	}
	if got := Type(9999).String(); got != "Type(9999)" {
		t.Errorf("Type(9999).String() = %q, want %q", got, "Type(9999)")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "42", Type: INTEGER, Start: 3, End: 4}
	want := `INTEGER("42")@[3,4]`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
