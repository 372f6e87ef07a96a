package arffsql

import (
	"errors"
	"fmt"
)

// Standard error values returned by the parser and the database loader.
var (
	// ErrDuplicateRelation is returned when a document declares @relation
	// more than once.
	ErrDuplicateRelation = errors.New("arffsql: duplicate @relation declaration")

	// ErrMalformedRelation is returned when an @relation line does not
	// tokenize to exactly a tag and a name.
	ErrMalformedRelation = errors.New("arffsql: malformed @relation declaration")

	// ErrInvalidAttribute is returned when an @attribute line cannot be
	// classified as any supported attribute kind.
	ErrInvalidAttribute = errors.New("arffsql: invalid @attribute declaration")

	// ErrRelationalAttribute is returned when an @attribute line declares a
	// relational (nested) attribute. The declaration is structurally
	// well-formed but the feature is not supported; this error is distinct
	// from ErrInvalidAttribute so callers can detect the case with errors.Is.
	ErrRelationalAttribute = errors.New("arffsql: relational attributes are not supported")

	// ErrMalformedData is returned when an @data line carries extra fields.
	ErrMalformedData = errors.New("arffsql: malformed @data declaration")

	// ErrUnknownDeclaration is returned for an unrecognized @ tag in the
	// header section.
	ErrUnknownDeclaration = errors.New("arffsql: unknown declaration tag")

	// ErrMissingDataSection is returned when the input ends before the @data
	// marker is seen.
	ErrMissingDataSection = errors.New("arffsql: missing @data section")

	// ErrFieldCountMismatch is returned when a data row's value count differs
	// from the number of declared attributes.
	ErrFieldCountMismatch = errors.New("arffsql: field count does not match attribute count")

	// ErrDuplicateAttributeName is returned when two attributes share a name.
	// Attribute names become SQL column names, which must be unique.
	ErrDuplicateAttributeName = errors.New("arffsql: duplicate attribute name")

	// ErrDuplicateTableName is returned when two input files map to the same
	// table name.
	ErrDuplicateTableName = errors.New("arffsql: duplicate table name")

	// ErrUnsupportedFormat indicates an unsupported file extension.
	ErrUnsupportedFormat = errors.New("arffsql: unsupported file format")

	// ErrNoTables indicates no tables were found in the database.
	ErrNoTables = errors.New("arffsql: no tables found in database")
)

// Grammar sections referenced by parse diagnostics. Each value points the
// user at the part of the ARFF grammar the offending line violated.
const (
	SectionRelation  = "relation"
	SectionAttribute = "attribute"
	SectionData      = "data"
	SectionInstance  = "instance"
)

// ParseError describes a parse failure with enough context to locate the
// offending line and the violated grammar rule.
type ParseError struct {
	// Line is the 1-based line number of the offending input line.
	Line int
	// Section names the grammar section the line failed against
	// (relation, attribute, data, instance).
	Section string
	// Err is the underlying error value.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (line %d, %s section)", e.Err, e.Line, e.Section)
}

// Unwrap returns the underlying error so errors.Is and errors.As work
// through the parse context.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps err with line and grammar-section context.
func newParseError(line int, section string, err error) error {
	return &ParseError{Line: line, Section: section, Err: err}
}
