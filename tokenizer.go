package mathtex

import (
	"io"
	"strings"
)

// Tokenizer turns LaTeX-like source into the token stream consumed by the
// mode parsers.
type Tokenizer struct {
	r io.RuneScanner
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Tokenize reads the whole source and returns its token stream.
func Tokenize(src string) ([]Token, error) {
	return NewTokenizer(strings.NewReader(src)).All()
}

// All reads tokens until EOF.
func (l *Tokenizer) All() (tokens []Token, err error) {
	for {
		t, err := l.Token()
		if err == io.EOF {
			return tokens, nil
		}

		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}
}

// Token reads the next token from the source.
func (l *Tokenizer) Token() (Token, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	switch char {
	case '{':
		return GroupStart{}, nil
	case '}':
		return GroupEnd{}, nil
	case '$':
		return l.readMathShift()
	case '\\':
		return l.readControlWord()
	default:
		if isWhitespace(char) {
			if err := l.whitespaces(); err != nil {
				return nil, err
			}

			return Space{}, nil
		}

		return Literal(char), nil
	}
}

// readMathShift distinguishes $ from $$ with one rune of look-ahead.
func (l *Tokenizer) readMathShift() (Token, error) {
	read, _, err := l.r.ReadRune()
	if err == io.EOF {
		return MathShift{}, nil
	}

	if err != nil {
		return nil, err
	}

	if read == '$' {
		return DisplayShift{}, nil
	}

	return MathShift{}, l.r.UnreadRune()
}

// readControlWord reads a command after the backslash: a run of letters
// (optionally starred), or a single non-letter escape such as \%.
func (l *Tokenizer) readControlWord() (Token, error) {
	read, _, err := l.r.ReadRune()
	if err == io.EOF {
		return ControlWord("\\"), nil
	}

	if err != nil {
		return nil, err
	}

	if !isLetter(read) {
		return ControlWord([]rune{'\\', read}), nil
	}

	runes := []rune{'\\', read}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return ControlWord(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if isLetter(read) {
			runes = append(runes, read)
			continue
		}

		if read == '*' {
			runes = append(runes, read)
			return ControlWord(runes), l.eatOneSpace()
		}

		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return ControlWord(runes), l.eatOneSpace()
	}
}

// eatOneSpace drops whitespace immediately after a control word, the TeX
// rule that \textbf x and \textbf{x} read the same argument.
func (l *Tokenizer) eatOneSpace() error {
	read, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil
	}

	if err != nil {
		return err
	}

	if !isWhitespace(read) {
		return l.r.UnreadRune()
	}

	return l.whitespaces()
}

// whitespaces skips until the next non-whitespace symbol.
func (l *Tokenizer) whitespaces() error {
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !isWhitespace(r) {
			return l.r.UnreadRune()
		}
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
