package mathtex_test

import (
	"reflect"
	"testing"

	mathtex "github.com/mathtex/go-mathtex"
)

func TestTokenizer(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []mathtex.Token
	}{
		{
			name:  "plain text",
			input: "ab",
			output: []mathtex.Token{
				mathtex.Literal('a'),
				mathtex.Literal('b'),
			},
		},
		{
			name:  "whitespace run collapses to one space",
			input: "a  \n\tb",
			output: []mathtex.Token{
				mathtex.Literal('a'),
				mathtex.Space{},
				mathtex.Literal('b'),
			},
		},
		{
			name:  "command with group argument",
			input: "\\textbf{x}",
			output: []mathtex.Token{
				mathtex.ControlWord("\\textbf"),
				mathtex.GroupStart{},
				mathtex.Literal('x'),
				mathtex.GroupEnd{},
			},
		},
		{
			name:  "whitespace after command is consumed",
			input: "\\dag x",
			output: []mathtex.Token{
				mathtex.ControlWord("\\dag"),
				mathtex.Literal('x'),
			},
		},
		{
			name:  "single character escape",
			input: "50\\%",
			output: []mathtex.Token{
				mathtex.Literal('5'),
				mathtex.Literal('0'),
				mathtex.ControlWord("\\%"),
			},
		},
		{
			name:  "inline math shift",
			input: "$a$",
			output: []mathtex.Token{
				mathtex.MathShift{},
				mathtex.Literal('a'),
				mathtex.MathShift{},
			},
		},
		{
			name:  "display math shift",
			input: "$$a$$",
			output: []mathtex.Token{
				mathtex.DisplayShift{},
				mathtex.Literal('a'),
				mathtex.DisplayShift{},
			},
		},
		{
			name:  "starred command",
			input: "\\section*{x}",
			output: []mathtex.Token{
				mathtex.ControlWord("\\section*"),
				mathtex.GroupStart{},
				mathtex.Literal('x'),
				mathtex.GroupEnd{},
			},
		},
		{
			name:  "trailing lone dollar",
			input: "a$",
			output: []mathtex.Token{
				mathtex.Literal('a'),
				mathtex.MathShift{},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := mathtex.Tokenize(tc.input)
			if err != nil {
				t.Fatalf("unable to tokenize: %v", err)
			}

			if !reflect.DeepEqual(tokens, tc.output) {
				t.Errorf("tokens do not match:\n  want: %#v\n  got:  %#v", tc.output, tokens)
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	tt := []struct {
		token mathtex.Token
		text  string
	}{
		{mathtex.Space{}, " "},
		{mathtex.GroupStart{}, "{"},
		{mathtex.GroupEnd{}, "}"},
		{mathtex.MathShift{}, "$"},
		{mathtex.DisplayShift{}, "$$"},
		{mathtex.ControlWord("\\alpha"), "\\alpha"},
		{mathtex.Literal('z'), "z"},
	}

	for _, tc := range tt {
		if got := mathtex.TokenText(tc.token); got != tc.text {
			t.Errorf("TokenText(%#v) = %q, want %q", tc.token, got, tc.text)
		}
	}
}
