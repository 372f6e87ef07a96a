package arffsql

import "strings"

// scanState is the tokenizer state for header-line field splitting.
type scanState int

const (
	// scanSpace is the initial state, between fields
	scanSpace scanState = iota
	// scanNormal accumulates an unquoted field
	scanNormal
	// scanTicks consumes a single-quoted span
	scanTicks
	// scanQuotes consumes a double-quoted span
	scanQuotes
)

// Quote characters recognized in header lines
const (
	tickChar  = '\''
	quoteChar = '"'
)

// isFieldSpace reports whether b separates header fields.
func isFieldSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// splitFields splits a header line into whitespace-separated fields,
// honoring single- and double-quoted spans. Quoted whitespace is kept inside
// one field and a surrounding matching quote pair is stripped from the
// returned field. A quote encountered mid-field switches the scanner into the
// quoted state without emitting, so a field may begin unquoted and contain a
// quoted span. Quotes cannot be escaped inside their own quote type; an
// unterminated quote closes silently at end of line. The returned fields are
// copies that do not alias the input line. An empty line yields no fields.
func splitFields(line string) []string {
	var fields []string
	state := scanSpace
	start := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch state {
		case scanSpace:
			switch {
			case isFieldSpace(c):
				// skip
			case c == tickChar:
				state = scanTicks
				start = i
			case c == quoteChar:
				state = scanQuotes
				start = i
			default:
				state = scanNormal
				start = i
			}
		case scanNormal:
			switch {
			case isFieldSpace(c):
				fields = append(fields, unquoteField(line[start:i]))
				state = scanSpace
			case c == tickChar:
				state = scanTicks
			case c == quoteChar:
				state = scanQuotes
			}
		case scanTicks:
			if c == tickChar {
				state = scanNormal
			}
		case scanQuotes:
			if c == quoteChar {
				state = scanNormal
			}
		}
	}

	// The last field ends at end of input, with or without a closing quote.
	if state != scanSpace {
		fields = append(fields, unquoteField(line[start:]))
	}
	return fields
}

// unquoteField strips a surrounding matching quote pair and returns an owned
// copy of the field, since the source line buffer is reused per iteration.
func unquoteField(s string) string {
	if len(s) >= 2 {
		first := s[0]
		if (first == tickChar || first == quoteChar) && s[len(s)-1] == first {
			s = s[1 : len(s)-1]
		}
	}
	return strings.Clone(s)
}
