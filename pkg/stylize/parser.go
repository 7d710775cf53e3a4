package stylize

import (
	"fmt"
	"strings"
)

// ParseError reports malformed markup. Index is the rune offset of the
// offending character (or the input length when the input ended early).
type ParseError struct {
	Message string
	Index   int
	Input   string
}

func (e *ParseError) Error() string {
	runes := []rune(e.Input)
	from := e.Index - 10
	if from < 0 {
		from = 0
	}
	to := e.Index + 10
	if to > len(runes) {
		to = len(runes)
	}
	return fmt.Sprintf("%s @['%s'], string index %d", e.Message, string(runes[from:to]), e.Index)
}

// Escape backslash-escapes every markup metacharacter in s so the result
// parses as the literal text, inside or outside a format group.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		switch ch {
		case '\\', '>', '{', '}', '|':
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Stylize parses input into an ordered list of segments. Plain text outside
// format groups becomes unstyled segments; each group becomes one segment
// with every named formatter applied in declaration order. The error, if
// any, is a *ParseError carrying the offending position.
func (r *Registry) Stylize(input string) ([]Segment, error) {
	var buf strings.Builder
	var segments []Segment
	var pending []Formatter

	escape := false
	inName := false
	inGroup := false

	runes := []rune(input)
	for i, ch := range runes {
		if escape {
			buf.WriteRune(ch)
			escape = false
			continue
		}

		switch ch {
		case '{':
			if inGroup {
				return nil, &ParseError{"unescaped curly bracket (nested groups are not allowed)", i, input}
			}
			if !inName || buf.Len() == 0 {
				return nil, &ParseError{"format groups must specify at least one valid formatter name", i, input}
			}
			f, ok := r.Lookup(buf.String())
			if !ok {
				return nil, &ParseError{fmt.Sprintf("formatter '%s' does not exist", buf.String()), i, input}
			}
			pending = append(pending, f)
			buf.Reset()
			inName = false
			inGroup = true
		case '}':
			if inName {
				return nil, &ParseError{"unescaped close bracket in name specifier", i, input}
			}
			if !inGroup {
				return nil, &ParseError{"unescaped close bracket outside a format group", i, input}
			}
			if len(pending) == 0 {
				return nil, &ParseError{"you must specify at least one formatter", i, input}
			}
			seg := Segment{Text: buf.String()}
			for _, f := range pending {
				f(&seg)
			}
			segments = append(segments, seg)
			pending = pending[:0]
			buf.Reset()
			inGroup = false
		case '>':
			if inName {
				return nil, &ParseError{"unescaped name specifier token in name specifier", i, input}
			}
			if inGroup {
				return nil, &ParseError{"unescaped name specifier token in group (nested groups are not allowed)", i, input}
			}
			if buf.Len() > 0 {
				segments = append(segments, Segment{Text: buf.String()})
				buf.Reset()
			}
			inName = true
		case '|':
			if !inName {
				return nil, &ParseError{"unexpected formatter name delimiter", i, input}
			}
			if buf.Len() == 0 {
				return nil, &ParseError{"formatter name cannot be an empty string", i, input}
			}
			f, ok := r.Lookup(buf.String())
			if !ok {
				return nil, &ParseError{fmt.Sprintf("formatter '%s' does not exist", buf.String()), i, input}
			}
			pending = append(pending, f)
			buf.Reset()
		case '\\':
			escape = true
		default:
			buf.WriteRune(ch)
		}
	}

	if inName {
		return nil, &ParseError{"unfinished format name specifier", len(runes), input}
	}
	if inGroup {
		return nil, &ParseError{"unfinished format group", len(runes), input}
	}
	if buf.Len() > 0 {
		segments = append(segments, Segment{Text: buf.String()})
	}
	return segments, nil
}
