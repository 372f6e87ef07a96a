// Package arffsql provides an ARFF (Attribute-Relation File Format) parser
// and a file-based SQL layer that loads ARFF files into an in-memory SQLite
// database.
//
// arffsql allows you to treat ARFF datasets as SQL tables without any data
// import or transformation steps. It uses SQLite3 as an in-memory database
// engine, providing full SQL capabilities including JOINs, aggregations,
// window functions, and CTEs.
//
// # Features
//
//   - Parse ARFF documents (relation, attribute declarations, data section)
//     into an in-memory Document
//   - Query ARFF files using standard SQL with column types derived from the
//     declared attribute kinds
//   - Automatic handling of compressed files (gzip, bzip2, xz, zstandard)
//   - Support for multiple input sources (files, directories, embed.FS)
//   - Write Documents back to ARFF text, optionally compressed
//
// # Basic Usage
//
// To parse a file into a Document:
//
//	doc, err := arffsql.NewFile("iris.arff").ToDocument()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Relation(), len(doc.Rows()))
//
// To query ARFF files with SQL:
//
//	db, err := arffsql.Open("iris.arff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.Query("SELECT class, COUNT(*) FROM iris GROUP BY class")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rows.Close()
//
// # Table Naming
//
// Table names are automatically derived from file paths:
//   - "iris.arff" becomes table "iris"
//   - "data.arff.gz" becomes table "data"
//   - "/path/to/weather.arff" becomes table "weather"
//
// # Data Modifications
//
// INSERT, UPDATE, and DELETE operations affect only the in-memory database.
// Original files remain unchanged. To persist changes, use the DumpDatabase
// function to export modified data back to ARFF files.
//
// # ARFF Dialect
//
// arffsql parses the dense instance format. Tag keywords are case-insensitive
// and quoted tokens ('...' or "...") are permitted in header lines. Relational
// (nested) attributes are recognized but not supported and are reported with a
// distinct error. Sparse instances ({index value, ...}) are not supported.
package arffsql
