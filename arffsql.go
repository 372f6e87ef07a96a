package arffsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite3 driver used for the in-memory database
)

const (
	// sqliteDriverName is the database/sql driver name registered by modernc.org/sqlite
	sqliteDriverName = "sqlite"
	// memoryDSN opens an in-memory SQLite database
	memoryDSN = ":memory:"
)

// Open opens an in-memory SQLite database with the given ARFF files loaded
// as tables.
//
// Each path may be:
//   - An ARFF file (.arff), optionally compressed (.gz, .bz2, .xz, .zst)
//   - A directory (all supported files within are loaded recursively)
//
// The table name is derived from the file name: "iris.arff" becomes table
// "iris", "data.arff.gz" becomes table "data". Column types follow the
// declared attribute kinds (INTEGER for integer attributes, REAL for numeric
// and real, TEXT for nominal, string, and date).
//
// INSERT, UPDATE, and DELETE operations are applied only to the in-memory
// database; the input files are never modified. To persist changes, use
// DumpDatabase.
//
// Example usage:
//
//	db, err := arffsql.Open("testdata/iris.arff")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.Query("SELECT class, COUNT(*) FROM iris GROUP BY class")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rows.Close()
func Open(paths ...string) (*sql.DB, error) {
	return OpenContext(context.Background(), paths...)
}

// OpenContext opens a database like Open with context support for the load
// phase. Parsing itself is synchronous; the context applies to the SQL
// statements that create tables and insert rows.
func OpenContext(ctx context.Context, paths ...string) (*sql.DB, error) {
	// Use the builder pattern internally
	builder := NewBuilder().AddPaths(paths...)

	validatedBuilder, err := builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	return validatedBuilder.Open(ctx)
}

// loadFile parses one ARFF file and loads it as a table. seen tracks table
// names already created so duplicate names across input files fail early.
func loadFile(ctx context.Context, db *sql.DB, path string, seen map[string]bool) error {
	doc, err := NewFile(path).ToDocument()
	if err != nil {
		return err
	}

	tableName := NewTableName(TableFromFilePath(path)).Sanitize().String()
	if seen[tableName] {
		return fmt.Errorf("%w: %s (from %s)", ErrDuplicateTableName, tableName, path)
	}
	seen[tableName] = true

	return loadDocument(ctx, db, tableName, doc)
}

// loadDocument creates the table for doc and inserts its rows. Values are
// inserted as raw text; SQLite's column affinity coerces numeric columns.
func loadDocument(ctx context.Context, db *sql.DB, tableName string, doc *Document) error {
	if err := validateAttributeNames(doc.Attributes()); err != nil {
		return fmt.Errorf("failed to load %s: %w", tableName, err)
	}

	columns := make([]string, 0, len(doc.Attributes()))
	for _, attr := range doc.Attributes() {
		columns = append(columns, fmt.Sprintf(`"%s" %s`, quoteIdentifier(attr.Name()), attr.Kind().sqlType()))
	}
	createSQL := fmt.Sprintf(`CREATE TABLE "%s" (%s)`, quoteIdentifier(tableName), strings.Join(columns, ", "))
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	if len(doc.Rows()) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", tableName, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(doc.Attributes())), ", ")
	insertSQL := fmt.Sprintf(`INSERT INTO "%s" VALUES (%s)`, quoteIdentifier(tableName), placeholders)
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert for %s: %w", tableName, err)
	}
	defer stmt.Close()

	for _, row := range doc.Rows() {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert row into %s: %w", tableName, err)
		}
	}

	return tx.Commit()
}

// quoteIdentifier escapes embedded double quotes for use inside a quoted
// SQL identifier.
func quoteIdentifier(name string) string {
	return strings.ReplaceAll(name, `"`, `""`)
}
