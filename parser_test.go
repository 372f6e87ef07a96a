package arffsql

import (
	"errors"
	"strings"
	"testing"
)

const irisARFF = `% Iris sample
@RELATION iris

@ATTRIBUTE sepallength NUMERIC
@ATTRIBUTE sepalwidth NUMERIC
@ATTRIBUTE class {setosa,versicolor,virginica}

@DATA
5.1,3.5,setosa
4.9,3.2,versicolor
6.3,3.3,virginica
`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(strings.NewReader(irisARFF))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	if doc.Relation() != "iris" {
		t.Errorf("relation = %q, want %q", doc.Relation(), "iris")
	}

	wantAttrs := []Attribute{
		NewAttribute("sepallength", KindNumeric),
		NewAttribute("sepalwidth", KindNumeric),
		NewNominalAttribute("class", NominalValues{"setosa", "versicolor", "virginica"}),
	}
	if len(doc.Attributes()) != len(wantAttrs) {
		t.Fatalf("attribute count = %d, want %d", len(doc.Attributes()), len(wantAttrs))
	}
	for i, want := range wantAttrs {
		if !doc.Attributes()[i].Equal(want) {
			t.Errorf("attribute[%d] = %+v, want %+v", i, doc.Attributes()[i], want)
		}
	}

	wantRows := []Record{
		{"5.1", "3.5", "setosa"},
		{"4.9", "3.2", "versicolor"},
		{"6.3", "3.3", "virginica"},
	}
	if len(doc.Rows()) != len(wantRows) {
		t.Fatalf("row count = %d, want %d", len(doc.Rows()), len(wantRows))
	}
	for i, want := range wantRows {
		if !doc.Rows()[i].Equal(want) {
			t.Errorf("row[%d] = %v, want %v", i, doc.Rows()[i], want)
		}
	}
}

func TestParseDocumentHeaderOnly(t *testing.T) {
	t.Parallel()

	input := "@relation empty\n@attribute a numeric\n@attribute b string\n@data\n"
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(doc.Rows()) != 0 {
		t.Errorf("row count = %d, want 0", len(doc.Rows()))
	}
	if len(doc.Attributes()) != 2 {
		t.Fatalf("attribute count = %d, want 2", len(doc.Attributes()))
	}
	if doc.Attributes()[0].Name() != "a" || doc.Attributes()[1].Name() != "b" {
		t.Errorf("attributes out of declaration order: %v, %v",
			doc.Attributes()[0].Name(), doc.Attributes()[1].Name())
	}
}

func TestParseDocumentQuotedNames(t *testing.T) {
	t.Parallel()

	input := "@relation 'my data'\n@attribute 'sepal length' numeric\n@data\n1.0\n"
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Relation() != "my data" {
		t.Errorf("relation = %q, want %q", doc.Relation(), "my data")
	}
	if doc.Attributes()[0].Name() != "sepal length" {
		t.Errorf("attribute name = %q, want %q", doc.Attributes()[0].Name(), "sepal length")
	}
}

func TestParseDocumentCaseInsensitiveTags(t *testing.T) {
	t.Parallel()

	input := "@Relation r\n@attribute x NuMeRiC\n@DaTa\n1\n"
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Relation() != "r" || len(doc.Rows()) != 1 {
		t.Errorf("unexpected document: relation=%q rows=%d", doc.Relation(), len(doc.Rows()))
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantSection string
	}{
		{
			name:        "duplicate relation",
			input:       "@relation a\n@relation b\n@data\n",
			wantErr:     ErrDuplicateRelation,
			wantSection: SectionRelation,
		},
		{
			name:        "malformed relation",
			input:       "@relation one two\n@data\n",
			wantErr:     ErrMalformedRelation,
			wantSection: SectionRelation,
		},
		{
			name:        "invalid attribute",
			input:       "@relation r\n@attribute x bogus\n@data\n",
			wantErr:     ErrInvalidAttribute,
			wantSection: SectionAttribute,
		},
		{
			name:        "unbalanced nominal brace",
			input:       "@relation r\n@attribute x {a,b\n@data\n",
			wantErr:     ErrInvalidAttribute,
			wantSection: SectionAttribute,
		},
		{
			name:        "relational attribute",
			input:       "@relation r\n@attribute children relational\n@data\n",
			wantErr:     ErrRelationalAttribute,
			wantSection: SectionAttribute,
		},
		{
			name:        "unknown declaration",
			input:       "@relation r\n@bogus x\n@data\n",
			wantErr:     ErrUnknownDeclaration,
			wantSection: SectionData,
		},
		{
			name:        "data marker with extra fields",
			input:       "@relation r\n@attribute x numeric\n@data extra\n",
			wantErr:     ErrMalformedData,
			wantSection: SectionData,
		},
		{
			name:        "missing data section",
			input:       "@relation r\n@attribute x numeric\n",
			wantErr:     ErrMissingDataSection,
			wantSection: SectionData,
		},
		{
			name:        "row with too few values",
			input:       "@relation r\n@attribute a numeric\n@attribute b numeric\n@data\n1\n",
			wantErr:     ErrFieldCountMismatch,
			wantSection: SectionInstance,
		},
		{
			name:        "row with too many values",
			input:       "@relation r\n@attribute a numeric\n@data\n1,2\n",
			wantErr:     ErrFieldCountMismatch,
			wantSection: SectionInstance,
		},
		{
			name:        "late row mismatch fails whole parse",
			input:       "@relation r\n@attribute a numeric\n@data\n1\n2\n3,4\n",
			wantErr:     ErrFieldCountMismatch,
			wantSection: SectionInstance,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(strings.NewReader(tt.input))
			if doc != nil {
				t.Error("failed parse must not return a document")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v does not carry parse context", err)
			}
			if parseErr.Section != tt.wantSection {
				t.Errorf("section = %q, want %q", parseErr.Section, tt.wantSection)
			}
		})
	}
}

func TestParseDocumentErrorLineNumber(t *testing.T) {
	t.Parallel()

	input := "@relation r\n@attribute a numeric\n@data\n1\n1,2\n"
	_, err := ParseDocument(strings.NewReader(input))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 5 {
		t.Errorf("line = %d, want 5", parseErr.Line)
	}
}

// errReader fails after yielding nothing, simulating an unreadable stream.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestParseDocumentIOError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk gone")
	_, err := ParseDocument(errReader{err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("underlying I/O error not surfaced: %v", err)
	}
}

func TestParseDocumentSkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	input := "% header comment\n\n@relation r\n\n@attribute a numeric\n@data\n% data comment\n\n1\n"
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(doc.Rows()) != 1 {
		t.Errorf("row count = %d, want 1", len(doc.Rows()))
	}
}

func TestParseDocumentNoTrailingNewline(t *testing.T) {
	t.Parallel()

	input := "@relation r\n@attribute a numeric\n@data\n1"
	doc, err := ParseDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(doc.Rows()) != 1 || doc.Rows()[0][0] != "1" {
		t.Errorf("rows = %v, want [[1]]", doc.Rows())
	}
}
