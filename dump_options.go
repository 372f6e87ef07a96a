package arffsql

// DumpOptions configures how documents and database tables are written to
// ARFF files.
//
// Example:
//
//	options := NewDumpOptions().WithCompression(CompressionGZ)
//	err := DumpDatabase(db, "./output", options)
type DumpOptions struct {
	// Compression specifies the compression type
	Compression CompressionType
}

// NewDumpOptions creates default export options (no compression).
func NewDumpOptions() DumpOptions {
	return DumpOptions{
		Compression: CompressionNone,
	}
}

// WithCompression adds compression to output files.
//
// Options:
//   - CompressionNone: No compression (default)
//   - CompressionGZ: Gzip compression (.gz)
//   - CompressionXZ: XZ compression (.xz)
//   - CompressionZSTD: Zstandard compression (.zst)
//
// CompressionBZ2 is read-only: the standard library has no bzip2 writer.
func (o DumpOptions) WithCompression(compression CompressionType) DumpOptions {
	o.Compression = compression
	return o
}

// FileExtension returns the complete file extension including compression
func (o DumpOptions) FileExtension() string {
	return extARFF + o.Compression.Extension()
}
