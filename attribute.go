package arffsql

import "strings"

// AttributeKind identifies the declared type of an ARFF attribute. The set is
// closed; every switch over AttributeKind in this package enumerates all
// kinds so a new kind cannot be silently ignored.
type AttributeKind int

const (
	// KindNumeric represents a NUMERIC attribute
	KindNumeric AttributeKind = iota
	// KindInteger represents an INTEGER attribute
	KindInteger
	// KindReal represents a REAL attribute
	KindReal
	// KindNominal represents a nominal attribute with an enumerated value set
	KindNominal
	// KindString represents a STRING attribute
	KindString
	// KindDate represents a DATE attribute with an optional format
	KindDate
	// KindRelational represents a RELATIONAL attribute. The grammar
	// recognizes the keyword but the feature is not supported; see
	// ErrRelationalAttribute.
	KindRelational
)

// String returns the ARFF keyword for the attribute kind.
func (k AttributeKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindNominal:
		return "nominal"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindRelational:
		return "relational"
	default:
		return "unknown"
	}
}

// SQL column type strings
const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
)

// sqlType returns the SQLite column type for values of this kind. Nominal,
// string, and date values are stored as TEXT; dates keep their declared
// textual format.
func (k AttributeKind) sqlType() string {
	switch k {
	case KindInteger:
		return sqlTypeInteger
	case KindNumeric, KindReal:
		return sqlTypeReal
	case KindNominal, KindString, KindDate:
		return sqlTypeText
	case KindRelational:
		return sqlTypeText
	default:
		return sqlTypeText
	}
}

// NominalValues is the ordered value set of a nominal attribute. The slice
// position of a value is its index: the first declared value has index 0, the
// second index 1, and so on. Re-parsing the same declaration reproduces
// identical indices.
type NominalValues []string

// Index returns the index of value in the declared order and whether the
// value belongs to the set.
func (nv NominalValues) Index(value string) (int, bool) {
	for i, v := range nv {
		if v == value {
			return i, true
		}
	}
	return 0, false
}

// Equal compares NominalValues including order.
func (nv NominalValues) Equal(nv2 NominalValues) bool {
	if len(nv) != len(nv2) {
		return false
	}
	for i, v := range nv {
		if v != nv2[i] {
			return false
		}
	}
	return true
}

// Attribute is one declared schema column: a name, a kind, and the
// kind-specific payload (nominal value set or date format).
type Attribute struct {
	// name is the attribute name with surrounding quotes stripped
	name string
	// kind is the declared attribute kind
	kind AttributeKind
	// values is the ordered value set; only set for KindNominal
	values NominalValues
	// format is the declared date format; only set for KindDate, empty if omitted
	format string
}

// NewAttribute creates an attribute of the given name and kind.
func NewAttribute(name string, kind AttributeKind) Attribute {
	return Attribute{name: name, kind: kind}
}

// NewNominalAttribute creates a nominal attribute with the given ordered
// value set.
func NewNominalAttribute(name string, values NominalValues) Attribute {
	return Attribute{name: name, kind: KindNominal, values: values}
}

// NewDateAttribute creates a date attribute with an optional format string.
func NewDateAttribute(name, format string) Attribute {
	return Attribute{name: name, kind: KindDate, format: format}
}

// Name returns the attribute name.
func (a Attribute) Name() string {
	return a.name
}

// Kind returns the attribute kind.
func (a Attribute) Kind() AttributeKind {
	return a.kind
}

// Values returns the ordered nominal value set, nil for non-nominal kinds.
func (a Attribute) Values() NominalValues {
	return a.values
}

// Format returns the declared date format, empty for non-date kinds or when
// the declaration omitted it.
func (a Attribute) Format() string {
	return a.format
}

// Equal compares Attribute.
func (a Attribute) Equal(a2 Attribute) bool {
	return a.name == a2.name &&
		a.kind == a2.kind &&
		a.format == a2.format &&
		a.values.Equal(a2.values)
}

// ARFF type keywords, matched case-insensitively
const (
	typeNumeric    = "numeric"
	typeInteger    = "integer"
	typeReal       = "real"
	typeString     = "string"
	typeDate       = "date"
	typeRelational = "relational"
)

// Attribute declaration arity: tag, name, type, optional date format
const (
	minAttributeFields = 3
	maxAttributeFields = 4
)

// parseAttribute classifies one tokenized @attribute line. fields[0] is the
// tag, fields[1] the name, fields[2] the type token, and fields[3] an
// optional date format. On a RELATIONAL declaration it returns the attribute
// together with ErrRelationalAttribute; on any other failure it returns the
// zero Attribute and ErrInvalidAttribute.
func parseAttribute(fields []string) (Attribute, error) {
	if len(fields) < minAttributeFields {
		return Attribute{}, ErrInvalidAttribute
	}
	name := fields[1]

	// A nominal value list may contain whitespace after the commas, which the
	// field splitter breaks into separate fields. Rejoin the tail before
	// applying the brace grammar.
	if strings.HasPrefix(fields[2], "{") {
		values, ok := parseNominalValues(strings.Join(fields[2:], " "))
		if !ok {
			return Attribute{}, ErrInvalidAttribute
		}
		return NewNominalAttribute(name, values), nil
	}

	if len(fields) > maxAttributeFields {
		return Attribute{}, ErrInvalidAttribute
	}

	switch {
	case strings.EqualFold(fields[2], typeNumeric):
		return NewAttribute(name, KindNumeric), nil
	case strings.EqualFold(fields[2], typeInteger):
		return NewAttribute(name, KindInteger), nil
	case strings.EqualFold(fields[2], typeReal):
		return NewAttribute(name, KindReal), nil
	case strings.EqualFold(fields[2], typeString):
		return NewAttribute(name, KindString), nil
	case strings.EqualFold(fields[2], typeDate):
		format := ""
		if len(fields) == maxAttributeFields {
			format = fields[3]
		}
		return NewDateAttribute(name, format), nil
	case strings.EqualFold(fields[2], typeRelational):
		return NewAttribute(name, KindRelational), ErrRelationalAttribute
	}

	return Attribute{}, ErrInvalidAttribute
}

// parseNominalValues applies the nominal grammar to the raw type token: it
// must start with '{', end with '}', and contain at least one comma. Each
// value is trimmed of surrounding whitespace and surrounding quotes and keeps
// its declaration-order index.
func parseNominalValues(token string) (NominalValues, bool) {
	if len(token) < 2 || token[0] != '{' || token[len(token)-1] != '}' {
		return nil, false
	}
	if !strings.Contains(token, ",") {
		return nil, false
	}

	parts := strings.Split(token[1:len(token)-1], ",")
	values := make(NominalValues, 0, len(parts))
	for _, part := range parts {
		values = append(values, unquoteField(strings.Trim(part, " \t\r\n")))
	}
	return values, true
}
