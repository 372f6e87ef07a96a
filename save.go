package arffsql

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Header tags as written by the serializer
const (
	writeTagRelation  = "@RELATION"
	writeTagAttribute = "@ATTRIBUTE"
	writeTagData      = "@DATA"
)

// missingValueMarker is written for NULL column values when dumping database
// tables. The parser passes it through as raw text.
const missingValueMarker = "?"

// WriteDocument serializes doc as ARFF text to w. Names, nominal values, and
// date formats containing whitespace or grammar characters are quoted so the
// output re-parses to an equivalent Document.
func WriteDocument(w io.Writer, doc *Document) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "%s %s\n", writeTagRelation, quoteToken(doc.Relation())); err != nil {
		return fmt.Errorf("failed to write relation: %w", err)
	}

	for _, attr := range doc.Attributes() {
		decl, err := attributeDeclaration(attr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(buf, "%s %s\n", writeTagAttribute, decl); err != nil {
			return fmt.Errorf("failed to write attribute %s: %w", attr.Name(), err)
		}
	}

	if _, err := fmt.Fprintln(buf, writeTagData); err != nil {
		return fmt.Errorf("failed to write data marker: %w", err)
	}

	for _, row := range doc.Rows() {
		if _, err := fmt.Fprintln(buf, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return buf.Flush()
}

// attributeDeclaration renders the name and type part of an @attribute line.
// The kind switch is exhaustive; KindRelational cannot be serialized.
func attributeDeclaration(attr Attribute) (string, error) {
	name := quoteToken(attr.Name())

	switch attr.Kind() {
	case KindNumeric:
		return name + " NUMERIC", nil
	case KindInteger:
		return name + " INTEGER", nil
	case KindReal:
		return name + " REAL", nil
	case KindString:
		return name + " STRING", nil
	case KindDate:
		if attr.Format() == "" {
			return name + " DATE", nil
		}
		return name + " DATE " + quoteToken(attr.Format()), nil
	case KindNominal:
		quoted := make([]string, 0, len(attr.Values()))
		for _, v := range attr.Values() {
			quoted = append(quoted, quoteToken(v))
		}
		return name + " {" + strings.Join(quoted, ",") + "}", nil
	case KindRelational:
		return "", fmt.Errorf("%w: cannot serialize attribute %s", ErrRelationalAttribute, attr.Name())
	default:
		return "", fmt.Errorf("%w: unknown kind for attribute %s", ErrInvalidAttribute, attr.Name())
	}
}

// quoteToken wraps a header token in quotes when it contains characters the
// field splitter or the nominal grammar would otherwise interpret. Tokens
// containing a single quote are wrapped in double quotes.
func quoteToken(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\r\n,%{}'\"") {
		return s
	}
	if strings.ContainsRune(s, tickChar) {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

// SaveFile writes doc to the file at path, compressing according to the
// options. The file handle and any compression writer are released on every
// exit path.
func SaveFile(path string, doc *Document, opts ...DumpOptions) error {
	options := NewDumpOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	writer, closer, err := NewCompressionFactory().CreateWriterForFile(path, options.Compression)
	if err != nil {
		return err
	}

	if err := WriteDocument(writer, doc); err != nil {
		_ = closer()
		return err
	}
	return closer()
}

// kindFromSQLType maps a SQLite declared column type back to an attribute
// kind for database dumps. TEXT and anything unrecognized map to string.
func kindFromSQLType(sqlType string) AttributeKind {
	switch strings.ToUpper(sqlType) {
	case sqlTypeInteger:
		return KindInteger
	case sqlTypeReal:
		return KindReal
	default:
		return KindString
	}
}

// DumpDatabase exports every table of db to an ARFF file in outputDir.
//
// The relation name and file name are the table name; column kinds are
// derived from the declared SQLite column types. NULL values are written as
// the "?" marker.
//
// Note: arffsql uses SQLite3 internally as an in-memory database. Any
// modifications made through UPDATE, DELETE, or INSERT operations are not
// persisted to the original files. Use DumpDatabase to export modified data.
//
// Example usage:
//
//	// Default: uncompressed .arff files
//	err := DumpDatabase(db, "./output")
//
//	// Gzip-compressed output
//	err := DumpDatabase(db, "./output", NewDumpOptions().WithCompression(CompressionGZ))
func DumpDatabase(db *sql.DB, outputDir string, opts ...DumpOptions) error {
	options := NewDumpOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tables, err := listTables(db)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return ErrNoTables
	}

	for _, table := range tables {
		doc, err := documentFromTable(db, table)
		if err != nil {
			return err
		}
		outputPath := filepath.Join(outputDir, table+options.FileExtension())
		if err := SaveFile(outputPath, doc, options); err != nil {
			return fmt.Errorf("failed to dump table %s: %w", table, err)
		}
	}
	return nil
}

// listTables returns the user table names in the database.
func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}
	return tables, nil
}

// documentFromTable reads one table back into a Document.
func documentFromTable(db *sql.DB, table string) (*Document, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table)) //nolint:gosec // Table name comes from sqlite_master
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types of %s: %w", table, err)
	}

	attributes := make([]Attribute, 0, len(columnTypes))
	for _, ct := range columnTypes {
		attributes = append(attributes, NewAttribute(ct.Name(), kindFromSQLType(ct.DatabaseTypeName())))
	}

	var records []Record
	for rows.Next() {
		values := make([]sql.NullString, len(attributes))
		scanTargets := make([]any, len(attributes))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}

		record := make(Record, len(attributes))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			} else {
				record[i] = missingValueMarker
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %s: %w", table, err)
	}

	return NewDocument(table, attributes, records), nil
}
