package arffsql

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File extensions
const (
	// extARFF is the ARFF file extension
	extARFF = ".arff"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// compressionExts lists the recognized compression suffixes
var compressionExts = []string{extGZ, extBZ2, extXZ, extZSTD}

// File represents an ARFF file on disk that can be parsed into a Document.
// The file may be compressed with gzip, bzip2, xz, or zstd.
type File struct {
	path        string
	compression CompressionType
}

// NewFile creates a new File, detecting the compression type from the path.
func NewFile(path string) *File {
	return &File{
		path:        path,
		compression: NewCompressionFactory().DetectCompressionType(path),
	}
}

// IsSupportedFile checks if the file name is an ARFF file, optionally with a
// recognized compression extension.
func IsSupportedFile(fileName string) bool {
	fileName = strings.ToLower(fileName)

	// Remove compression extensions
	for _, ext := range compressionExts {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	return strings.HasSuffix(fileName, extARFF)
}

// SupportedFileExtPatterns returns glob patterns matching supported files.
func SupportedFileExtPatterns() []string {
	patterns := []string{"*" + extARFF}
	for _, ext := range compressionExts {
		patterns = append(patterns, "*"+extARFF+ext)
	}
	return patterns
}

// Path returns file path.
func (f *File) Path() string {
	return f.path
}

// IsCompressed returns true if the file carries a compression extension.
func (f *File) IsCompressed() bool {
	return f.compression != CompressionNone
}

// Compression returns the detected compression type.
func (f *File) Compression() CompressionType {
	return f.compression
}

// ToDocument opens the file, transparently decompressing if needed, and
// parses it into a Document. The underlying file handle and any
// decompression reader are released on every exit path.
func (f *File) ToDocument() (*Document, error) {
	if !IsSupportedFile(f.path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.path)
	}

	reader, closer, err := NewCompressionFactory().CreateReaderForFile(f.path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = closer()
	}()

	doc, err := ParseDocument(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return doc, nil
}

// ReadFile parses the ARFF file at path into a Document. It is shorthand for
// NewFile(path).ToDocument().
func ReadFile(path string) (*Document, error) {
	return NewFile(path).ToDocument()
}

// TableFromFilePath creates a table name from a file path. Compression and
// format extensions are removed: "iris.arff.gz" becomes "iris".
func TableFromFilePath(filePath string) string {
	fileName := filepath.Base(filePath)
	// Remove compression extensions first
	for _, ext := range compressionExts {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	// Then remove the file type extension
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
