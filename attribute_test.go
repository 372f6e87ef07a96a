package arffsql

import (
	"errors"
	"testing"
)

func TestParseAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
		want   Attribute
	}{
		{
			name:   "numeric",
			fields: []string{"@attribute", "sepallength", "numeric"},
			want:   NewAttribute("sepallength", KindNumeric),
		},
		{
			name:   "numeric uppercase",
			fields: []string{"@ATTRIBUTE", "sepallength", "NUMERIC"},
			want:   NewAttribute("sepallength", KindNumeric),
		},
		{
			name:   "integer",
			fields: []string{"@attribute", "age", "integer"},
			want:   NewAttribute("age", KindInteger),
		},
		{
			name:   "real mixed case",
			fields: []string{"@attribute", "weight", "Real"},
			want:   NewAttribute("weight", KindReal),
		},
		{
			name:   "string",
			fields: []string{"@attribute", "comment", "string"},
			want:   NewAttribute("comment", KindString),
		},
		{
			name:   "date without format",
			fields: []string{"@attribute", "ts", "date"},
			want:   NewDateAttribute("ts", ""),
		},
		{
			name:   "date with format",
			fields: []string{"@attribute", "ts", "date", "yyyy-MM-dd HH:mm:ss"},
			want:   NewDateAttribute("ts", "yyyy-MM-dd HH:mm:ss"),
		},
		{
			name:   "nominal single token",
			fields: []string{"@attribute", "class", "{setosa,versicolor,virginica}"},
			want:   NewNominalAttribute("class", NominalValues{"setosa", "versicolor", "virginica"}),
		},
		{
			name:   "nominal split across fields by spaces",
			fields: []string{"@attribute", "class", "{a,", "b,", "c}"},
			want:   NewNominalAttribute("class", NominalValues{"a", "b", "c"}),
		},
		{
			name:   "nominal with quoted value",
			fields: []string{"@attribute", "risk", "{'low", "risk',high}"},
			want:   NewNominalAttribute("risk", NominalValues{"low risk", "high"}),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseAttribute(tt.fields)
			if err != nil {
				t.Fatalf("parseAttribute(%v) unexpected error: %v", tt.fields, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseAttribute(%v) = %+v, want %+v", tt.fields, got, tt.want)
			}
		})
	}
}

func TestParseAttributeInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
	}{
		{name: "too few fields", fields: []string{"@attribute", "x"}},
		{name: "too many fields for keyword type", fields: []string{"@attribute", "x", "numeric", "a", "b"}},
		{name: "unknown type token", fields: []string{"@attribute", "x", "bogus"}},
		{name: "unbalanced brace", fields: []string{"@attribute", "x", "{a,b"}},
		{name: "nominal without comma", fields: []string{"@attribute", "x", "{a}"}},
		{name: "brace only", fields: []string{"@attribute", "x", "{"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseAttribute(tt.fields)
			if !errors.Is(err, ErrInvalidAttribute) {
				t.Errorf("parseAttribute(%v) error = %v, want ErrInvalidAttribute", tt.fields, err)
			}
		})
	}
}

func TestParseAttributeRelational(t *testing.T) {
	t.Parallel()

	attr, err := parseAttribute([]string{"@attribute", "children", "relational"})
	if !errors.Is(err, ErrRelationalAttribute) {
		t.Fatalf("expected ErrRelationalAttribute, got %v", err)
	}
	if errors.Is(err, ErrInvalidAttribute) {
		t.Error("relational declarations must be distinguishable from invalid ones")
	}
	// The declaration itself is well-formed, so the attribute is classified.
	if attr.Kind() != KindRelational {
		t.Errorf("kind = %v, want KindRelational", attr.Kind())
	}
	if attr.Name() != "children" {
		t.Errorf("name = %q, want %q", attr.Name(), "children")
	}
}

func TestNominalValuesIndex(t *testing.T) {
	t.Parallel()

	attr, err := parseAttribute([]string{"@attribute", "class", "{a,", "b,", "c}"})
	if err != nil {
		t.Fatal(err)
	}

	for i, value := range []string{"a", "b", "c"} {
		idx, ok := attr.Values().Index(value)
		if !ok || idx != i {
			t.Errorf("Index(%q) = (%d, %v), want (%d, true)", value, idx, ok, i)
		}
	}
	if _, ok := attr.Values().Index("missing"); ok {
		t.Error("Index of absent value reported ok")
	}

	// Re-parsing the identical declaration yields identical indices.
	again, err := parseAttribute([]string{"@attribute", "class", "{a,", "b,", "c}"})
	if err != nil {
		t.Fatal(err)
	}
	if !attr.Values().Equal(again.Values()) {
		t.Errorf("re-parse produced different value order: %v vs %v", attr.Values(), again.Values())
	}
}

func TestAttributeKindSQLType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind AttributeKind
		want string
	}{
		{KindNumeric, sqlTypeReal},
		{KindInteger, sqlTypeInteger},
		{KindReal, sqlTypeReal},
		{KindNominal, sqlTypeText},
		{KindString, sqlTypeText},
		{KindDate, sqlTypeText},
		{KindRelational, sqlTypeText},
	}

	for _, tt := range tests {
		if got := tt.kind.sqlType(); got != tt.want {
			t.Errorf("%v.sqlType() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAttributeKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind AttributeKind
		want string
	}{
		{KindNumeric, "numeric"},
		{KindInteger, "integer"},
		{KindReal, "real"},
		{KindNominal, "nominal"},
		{KindString, "string"},
		{KindDate, "date"},
		{KindRelational, "relational"},
		{AttributeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("AttributeKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
