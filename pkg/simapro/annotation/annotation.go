// Package annotation reads and writes the key/value annotations embedded in
// SimaPro comment fields.
//
// An annotation occupies a whole comment line of the form
//
//	Key: value
//
// where Key is one of the fixed vocabulary below. Values escape a backslash
// as \\ and a line break as \n so that each annotation stays on one line.
// Lines that look like annotations but use another key are ordinary comment
// text.
package annotation

import (
	"strings"
)

// Key is an annotation name.
type Key string

const (
	ReviewState         Key = "Review state"
	ReviewerComment     Key = "Reviewer comment"
	ModificationCode    Key = "Modification code"
	ModificationComment Key = "Modification comment"
	RelevanceCode       Key = "Relevance code"
	RelevanceComment    Key = "Relevance comment"
	ConfidenceCode      Key = "Confidence code"
	ConfidenceComment   Key = "Confidence comment"
)

// Keys is the vocabulary in serialization order.
var Keys = []Key{
	ReviewState,
	ReviewerComment,
	ModificationCode,
	ModificationComment,
	RelevanceCode,
	RelevanceComment,
	ConfidenceCode,
	ConfidenceComment,
}

// ReviewKeys are the annotations every flow and process understands.
var ReviewKeys = []Key{ReviewState, ReviewerComment}

const separator = ": "

// IsKnown reports whether k belongs to the vocabulary.
func IsKnown(k Key) bool {
	for _, known := range Keys {
		if k == known {
			return true
		}
	}
	return false
}

// Parse splits comment into its residual free text and the annotations
// whose key is in accept. With no accept list every known key is extracted.
// Annotation lines with other keys are left in the residual text.
func Parse(comment string, accept ...Key) (string, map[Key]string) {
	if accept == nil {
		accept = Keys
	}
	var (
		kept  []string
		found map[Key]string
	)
	for _, line := range strings.Split(comment, "\n") {
		key, value, ok := splitLine(line)
		if ok && contains(accept, key) {
			if found == nil {
				found = make(map[Key]string)
			}
			found[key] = Unescape(value)
			continue
		}
		kept = append(kept, line)
	}
	if found == nil {
		return comment, nil
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n"), found
}

// Format appends annotations to comment, one line each, in vocabulary
// order. Empty values are omitted.
func Format(comment string, values map[Key]string) string {
	var b strings.Builder
	b.WriteString(comment)
	for _, k := range Keys {
		v, ok := values[k]
		if !ok || v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(k))
		b.WriteString(separator)
		b.WriteString(Escape(v))
	}
	return b.String()
}

// Escape encodes a value so it fits on one annotation line.
func Escape(v string) string {
	if !strings.ContainsAny(v, "\\\n\r") {
		return v
	}
	var b strings.Builder
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Unknown escapes are kept verbatim.
func Unescape(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i+1 == len(v) {
			b.WriteByte(c)
			continue
		}
		switch v[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func splitLine(line string) (Key, string, bool) {
	idx := strings.Index(line, separator)
	if idx <= 0 {
		return "", "", false
	}
	key := Key(line[:idx])
	if !IsKnown(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+len(separator):]), true
}

func contains(keys []Key, k Key) bool {
	for _, c := range keys {
		if c == k {
			return true
		}
	}
	return false
}
