// Package token defines the lexical tokens produced by the formula lexer.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	INTEGER Type = iota
	FLOAT
	BOOLEAN
	STRING

	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO

	EXPONENTIATE

	AND
	OR
	NOT
	BITAND
	BITOR
	BITXOR
	BITNOT
	LEFTSHIFT
	RIGHTSHIFT

	LESSTHAN
	LESSTHANEQUAL
	GREATERTHAN
	GREATERTHANEQUAL
	EQUALS
	NOTEQUALS

	INTTOFLOAT
	FLOATTOINT

	SUM
	MEAN
	MIN
	MAX

	LEFTPARENTHESIS
	RIGHTPARENTHESIS
	LEFTBRACKET
	RIGHTBRACKET
	HASHTAG
	COMMA
	NEWLINE
	SEMICOLON
	COLON
	VARIABLE
	IF
	ELSE
	END

	FOR
	IN
	DOTDOT

	ASSIGNMENT

	EOF
)

var names = map[Type]string{
	INTEGER:          "INTEGER",
	FLOAT:            "FLOAT",
	BOOLEAN:          "BOOLEAN",
	STRING:           "STRING",
	PLUS:             "PLUS",
	MINUS:            "MINUS",
	MULTIPLY:         "MULTIPLY",
	DIVIDE:           "DIVIDE",
	MODULO:           "MODULO",
	EXPONENTIATE:     "EXPONENTIATE",
	AND:              "AND",
	OR:               "OR",
	NOT:              "NOT",
	BITAND:           "BITAND",
	BITOR:            "BITOR",
	BITXOR:           "BITXOR",
	BITNOT:           "BITNOT",
	LEFTSHIFT:        "LEFTSHIFT",
	RIGHTSHIFT:       "RIGHTSHIFT",
	LESSTHAN:         "LESSTHAN",
	LESSTHANEQUAL:    "LESSTHANEQUAL",
	GREATERTHAN:      "GREATERTHAN",
	GREATERTHANEQUAL: "GREATERTHANEQUAL",
	EQUALS:           "EQUALS",
	NOTEQUALS:        "NOTEQUALS",
	INTTOFLOAT:       "INTTOFLOAT",
	FLOATTOINT:       "FLOATTOINT",
	SUM:              "SUM",
	MEAN:             "MEAN",
	MIN:              "MIN",
	MAX:              "MAX",
	LEFTPARENTHESIS:  "LEFTPARENTHESIS",
	RIGHTPARENTHESIS: "RIGHTPARENTHESIS",
	LEFTBRACKET:      "LEFTBRACKET",
	RIGHTBRACKET:     "RIGHTBRACKET",
	HASHTAG:          "HASHTAG",
	COMMA:            "COMMA",
	NEWLINE:          "NEWLINE",
	SEMICOLON:        "SEMICOLON",
	COLON:            "COLON",
	VARIABLE:         "VARIABLE",
	IF:               "IF",
	ELSE:             "ELSE",
	END:              "END",
	FOR:              "FOR",
	IN:               "IN",
	DOTDOT:           "DOTDOT",
	ASSIGNMENT:       "ASSIGNMENT",
	EOF:              "EOF",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// keywords maps reserved lexemes to their token type. Anything alphabetic
// not in this table lexes as VARIABLE.
var keywords = map[string]Type{
	"true":  BOOLEAN,
	"false": BOOLEAN,
	"sum":   SUM,
	"mean":  MEAN,
	"min":   MIN,
	"max":   MAX,
	"float": INTTOFLOAT,
	"int":   FLOATTOINT,
	"if":    IF,
	"else":  ELSE,
	"for":   FOR,
	"in":    IN,
	"end":   END,
}

// LookupKeyword classifies an alphabetic run as a keyword token or VARIABLE.
func LookupKeyword(lexeme string) Type {
	if t, ok := keywords[lexeme]; ok {
		return t
	}
	return VARIABLE
}

// Token is one lexical unit: its source text, its classification, and the
// byte-offset span [Start, End] (inclusive) it occupies in the source.
type Token struct {
	Text  string
	Type  Type
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@[%d,%d]", t.Type, t.Text, t.Start, t.End)
}
