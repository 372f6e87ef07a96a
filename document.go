package arffsql

import (
	"fmt"
	"strings"
)

// Record is one data instance: an ordered sequence of raw string values
// positionally aligned to the document's attribute sequence. Values are kept
// untyped; coercion per attribute kind is performed by consumers such as the
// SQLite loader.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// Document is the result of parsing one ARFF input: the relation name, the
// declared attributes in declaration order, and the data rows in input order.
// A Document is owned by the caller once parsing returns and is never mutated
// afterwards.
type Document struct {
	// relation is the declared relation name, set exactly once per document
	relation string
	// attributes define the positional schema for every row
	attributes []Attribute
	// rows are the data instances, one Record per input line
	rows []Record
}

// NewDocument create new Document.
func NewDocument(relation string, attributes []Attribute, rows []Record) *Document {
	return &Document{
		relation:   relation,
		attributes: attributes,
		rows:       rows,
	}
}

// Relation returns the declared relation name.
func (d *Document) Relation() string {
	return d.relation
}

// Attributes returns the attributes in declaration order.
func (d *Document) Attributes() []Attribute {
	return d.attributes
}

// Rows returns the data rows in input order.
func (d *Document) Rows() []Record {
	return d.rows
}

// Equal compare Document.
func (d *Document) Equal(d2 *Document) bool {
	if d.relation != d2.relation {
		return false
	}
	if len(d.attributes) != len(d2.attributes) {
		return false
	}
	for i, attr := range d.attributes {
		if !attr.Equal(d2.attributes[i]) {
			return false
		}
	}
	if len(d.rows) != len(d2.rows) {
		return false
	}
	for i, row := range d.rows {
		if !row.Equal(d2.rows[i]) {
			return false
		}
	}
	return true
}

// validateAttributeNames checks for duplicate attribute names and returns an
// error if found. Attribute names become SQL column names, so comparison is
// on the whitespace-trimmed name.
func validateAttributeNames(attributes []Attribute) error {
	seen := make(map[string]bool, len(attributes))
	for _, attr := range attributes {
		trimmed := strings.TrimSpace(attr.Name())
		if seen[trimmed] {
			return fmt.Errorf("%w: %s", ErrDuplicateAttributeName, attr.Name())
		}
		seen[trimmed] = true
	}
	return nil
}
