package arffsql

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Header declaration tags, matched case-insensitively
const (
	tagRelation  = "@relation"
	tagAttribute = "@attribute"
	tagData      = "@data"
)

// commentChar starts an ARFF comment line
const commentChar = '%'

// relationFieldCount is the exact field count of an @relation line (tag, name)
const relationFieldCount = 2

// dataFieldCount is the exact field count of an @data line (tag only)
const dataFieldCount = 1

// lineReader reads one input line at a time, tracking 1-based line numbers
// for diagnostics. Lines are returned with the trailing terminator stripped.
type lineReader struct {
	reader *bufio.Reader
	line   int
	eof    bool
}

// newLineReader create new lineReader.
func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// next returns the next input line. ok is false once the stream is exhausted.
func (lr *lineReader) next() (line string, ok bool, err error) {
	if lr.eof {
		return "", false, nil
	}
	line, err = lr.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", false, err
		}
		lr.eof = true
		if line == "" {
			return "", false, nil
		}
	}
	lr.line++
	return strings.TrimRight(line, "\r\n"), true, nil
}

// parser holds the state of one document parse. Each parse owns its own
// parser, so concurrent calls with distinct streams are safe.
type parser struct {
	lines       *lineReader
	relation    string
	relationSet bool
	attributes  []Attribute
}

// ParseDocument parses one ARFF document from r.
//
// The scan is strictly sequential: header declarations (@relation,
// @attribute, @data) are processed first, then every remaining line is read
// as one comma-separated data row. Blank lines and '%' comment lines are
// skipped in both sections. Any structural violation aborts the parse
// immediately and the returned error carries the offending line number and
// grammar section via ParseError; on error the returned Document is nil and
// must not be consumed.
func ParseDocument(r io.Reader) (*Document, error) {
	p := &parser{lines: newLineReader(r)}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	rows, err := p.parseData()
	if err != nil {
		return nil, err
	}
	return NewDocument(p.relation, p.attributes, rows), nil
}

// parseHeader consumes header lines until the @data marker. Non-@ lines are
// skipped; every @ line must be a recognized declaration.
func (p *parser) parseHeader() error {
	for {
		line, ok, err := p.lines.next()
		if err != nil {
			return fmt.Errorf("arffsql: failed to read input: %w", err)
		}
		if !ok {
			return newParseError(p.lines.line, SectionData, ErrMissingDataSection)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] != '@' {
			// blank line, comment, or stray prose before the next declaration
			continue
		}

		fields := splitFields(trimmed)
		switch tag := fields[0]; {
		case strings.EqualFold(tag, tagRelation):
			if p.relationSet {
				return newParseError(p.lines.line, SectionRelation, ErrDuplicateRelation)
			}
			if len(fields) != relationFieldCount {
				return newParseError(p.lines.line, SectionRelation, ErrMalformedRelation)
			}
			p.relation = fields[1]
			p.relationSet = true
		case strings.EqualFold(tag, tagAttribute):
			attr, err := parseAttribute(fields)
			if err != nil {
				return newParseError(p.lines.line, SectionAttribute, err)
			}
			p.attributes = append(p.attributes, attr)
		case strings.EqualFold(tag, tagData):
			if len(fields) != dataFieldCount {
				return newParseError(p.lines.line, SectionData, ErrMalformedData)
			}
			return nil
		default:
			return newParseError(p.lines.line, SectionData,
				fmt.Errorf("%w: %s", ErrUnknownDeclaration, tag))
		}
	}
}

// parseData reads data rows until end of input. Rows are plain comma splits
// with no quote awareness; values are stored raw. A row whose value count
// differs from the attribute count is fatal regardless of how many prior
// rows succeeded.
func (p *parser) parseData() ([]Record, error) {
	var rows []Record
	for {
		line, ok, err := p.lines.next()
		if err != nil {
			return nil, fmt.Errorf("arffsql: failed to read input: %w", err)
		}
		if !ok {
			return rows, nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == commentChar {
			continue
		}

		values := strings.Split(line, ",")
		if len(values) != len(p.attributes) {
			return nil, newParseError(p.lines.line, SectionInstance,
				fmt.Errorf("%w: got %d values, want %d",
					ErrFieldCountMismatch, len(values), len(p.attributes)))
		}
		rows = append(rows, NewRecord(values))
	}
}
