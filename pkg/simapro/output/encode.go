package output

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is the single-byte code page SimaPro reads import files in.
var Encoding = charmap.Windows1252

// EncodingError reports a character the output code page cannot represent.
type EncodingError struct {
	Rune rune
	// Line and Column are 1-based; Column counts characters.
	Line   int
	Column int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at line %d, column %d cannot be encoded in Windows-1252",
		e.Rune, e.Rune, e.Line, e.Column)
}

// Encode converts text to Windows-1252. Unrepresentable characters,
// including invalid UTF-8, are an error; nothing is substituted.
func Encode(text string) ([]byte, error) {
	line, col := 1, 0
	for _, r := range text {
		col++
		if _, ok := Encoding.EncodeRune(r); !ok {
			return nil, &EncodingError{Rune: r, Line: line, Column: col}
		}
		if r == '\n' {
			line, col = line+1, 0
		}
	}
	return Encoding.NewEncoder().Bytes([]byte(text))
}
