package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	// csvSeparator is the field separator of the SimaPro import format.
	csvSeparator = ';'
	// csvLineBreak stands for a line break inside a field.
	csvLineBreak = "\x7f"
	maxLineSize  = 16 << 20
)

// OpenCSV reads a SimaPro CSV file written in Windows-1252.
func OpenCSV(path string) (models.Header, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Header{}, nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV decodes a SimaPro CSV stream into a grid. Every line becomes one
// row and blank lines become zero-length rows. The header comes from the
// {...} preamble lines.
func ReadCSV(r io.Reader) (models.Header, []Row, error) {
	sc := bufio.NewScanner(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		header models.Header
		rows   []Row
	)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(rows) == 0 {
			header.Tool = strings.Trim(line, "{}")
		}
		readPreamble(&header, line)
		rows = append(rows, rowFromStrings(splitFields(line)))
	}
	if err := sc.Err(); err != nil {
		return models.Header{}, nil, err
	}
	return header, rows, nil
}

func readPreamble(h *models.Header, line string) {
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
		return
	}
	key, value, ok := strings.Cut(line[1:len(line)-1], ":")
	if !ok {
		return
	}
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(key) {
	case "Project":
		h.Project = value
	case "Date":
		h.Date = value
	case "Time":
		h.Time = value
	}
}

// splitFields splits a line on the separator. A field opening with a double
// quote runs to the matching quote; doubled quotes inside it are literal.
func splitFields(line string) []string {
	if line == "" {
		return nil
	}
	var (
		fields   []string
		b        strings.Builder
		inQuotes bool
		quoted   bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuotes && c == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			b.WriteByte(c)
		case c == '"' && b.Len() == 0 && !quoted:
			inQuotes, quoted = true, true
		case c == csvSeparator:
			fields = append(fields, unescapeField(b.String()))
			b.Reset()
			quoted = false
		default:
			b.WriteByte(c)
		}
	}
	return append(fields, unescapeField(b.String()))
}

func unescapeField(s string) string {
	return strings.ReplaceAll(s, csvLineBreak, "\n")
}
