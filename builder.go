package arffsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DBBuilder is a builder for creating database connections from ARFF files
// and embedded filesystems. Use NewBuilder to create a new instance, then
// chain method calls to configure it.
//
// The typical usage pattern is:
//
//	builder := arffsql.NewBuilder().AddPath("iris.arff").AddFS(embeddedFS)
//	validatedBuilder, err := builder.Build(ctx)
//	if err != nil {
//		return err
//	}
//	db, err := validatedBuilder.Open(ctx)
//	defer db.Close()
//	defer validatedBuilder.Cleanup() // Clean up temporary files
type DBBuilder struct {
	// paths contains regular file and directory paths
	paths []string
	// filesystems contains fs.FS instances
	filesystems []fs.FS
	// collectedPaths contains all file paths after Build validation
	collectedPaths []string
	// tempFiles tracks temporary files created for cleanup
	tempFiles []string
}

// NewBuilder creates a new database builder for configuring ARFF inputs.
func NewBuilder() *DBBuilder {
	return &DBBuilder{
		paths:          make([]string, 0),
		filesystems:    make([]fs.FS, 0),
		collectedPaths: make([]string, 0),
		tempFiles:      make([]string, 0),
	}
}

// AddPath adds a regular file or directory path to the builder.
// The path can be:
//   - A single .arff file, optionally compressed (.gz, .bz2, .xz, .zst)
//   - A directory (all supported files within are loaded recursively)
//
// Returns the builder for method chaining.
func (b *DBBuilder) AddPath(path string) *DBBuilder {
	b.paths = append(b.paths, path)
	return b
}

// AddPaths adds multiple file or directory paths to the builder.
// Returns the builder for method chaining.
func (b *DBBuilder) AddPaths(paths ...string) *DBBuilder {
	b.paths = append(b.paths, paths...)
	return b
}

// AddFS adds all supported ARFF files from an fs.FS filesystem to the
// builder. This is particularly useful for embedded filesystems using
// go:embed. Matching files are copied to temporary files during Build();
// use Cleanup() to remove them when done.
//
// Example with embedded filesystem:
//
//	//go:embed data/*.arff
//	var dataFS embed.FS
//
//	subFS, _ := fs.Sub(dataFS, "data")
//	builder := arffsql.NewBuilder().AddFS(subFS)
//
// Returns the builder for method chaining.
func (b *DBBuilder) AddFS(filesystem fs.FS) *DBBuilder {
	b.filesystems = append(b.filesystems, filesystem)
	return b
}

// Build validates all configured inputs and prepares the builder for opening
// a database. It checks existence and format of all paths, expands
// directories into their supported files, and copies fs.FS entries to
// temporary files. Build must be called before Open.
func (b *DBBuilder) Build(ctx context.Context) (*DBBuilder, error) {
	if len(b.paths) == 0 && len(b.filesystems) == 0 {
		return nil, errors.New("at least one path must be provided")
	}

	// Reset collected paths
	b.collectedPaths = make([]string, 0)

	v := newValidator()
	for _, path := range b.paths {
		info, err := v.validatePath(path)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			files, err := collectDirFiles(path)
			if err != nil {
				return nil, err
			}
			b.collectedPaths = append(b.collectedPaths, files...)
			continue
		}
		b.collectedPaths = append(b.collectedPaths, path)
	}

	for _, filesystem := range b.filesystems {
		if filesystem == nil {
			return nil, errors.New("FS cannot be nil")
		}
		paths, err := b.processFSInput(ctx, filesystem)
		if err != nil {
			return nil, fmt.Errorf("failed to process FS input: %w", err)
		}
		b.collectedPaths = append(b.collectedPaths, paths...)
	}

	if len(b.collectedPaths) == 0 {
		return nil, errors.New("no valid input files found")
	}
	return b, nil
}

// Open creates an in-memory SQLite database and loads every collected file
// as a table. It can only be called after a successful Build. The caller is
// responsible for closing the connection and calling Cleanup to remove any
// temporary files created from embedded filesystems.
func (b *DBBuilder) Open(ctx context.Context) (*sql.DB, error) {
	if len(b.collectedPaths) == 0 {
		return nil, errors.New("no valid input files found, did you call Build()?")
	}

	db, err := sql.Open(sqliteDriverName, memoryDSN)
	if err != nil {
		return nil, b.openFailure(err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, b.openFailure(err)
	}

	seen := make(map[string]bool, len(b.collectedPaths))
	for _, path := range b.collectedPaths {
		if err := loadFile(ctx, db, path, seen); err != nil {
			_ = db.Close()
			return nil, b.openFailure(err)
		}
	}
	return db, nil
}

// openFailure joins err with any temp-file cleanup error.
func (b *DBBuilder) openFailure(err error) error {
	if cleanupErr := b.cleanup(); cleanupErr != nil {
		return errors.Join(err, fmt.Errorf("cleanup failed: %w", cleanupErr))
	}
	return err
}

// collectDirFiles walks a directory collecting supported files.
func collectDirFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSupportedFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}
	return files, nil
}

// processFSInput copies all supported files from an fs.FS to temporary files
func (b *DBBuilder) processFSInput(ctx context.Context, filesystem fs.FS) ([]string, error) {
	matches := make([]string, 0)
	err := fs.WalkDir(filesystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSupportedFile(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk filesystem: %w", err)
	}
	if len(matches) == 0 {
		return nil, errors.New("no supported files found in filesystem")
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		tempPath, err := b.copyFSToTemp(ctx, filesystem, match)
		if err != nil {
			return nil, fmt.Errorf("failed to copy file %s: %w", match, err)
		}
		paths = append(paths, tempPath)
	}
	return paths, nil
}

// copyFSToTemp copies a file from fs.FS to a temporary file
func (b *DBBuilder) copyFSToTemp(_ context.Context, filesystem fs.FS, path string) (string, error) {
	file, err := filesystem.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open FS file: %w", err)
	}
	defer file.Close()

	// Keep the original extension chain so compression detection still works,
	// but name the temp file after the source so the table name survives.
	base := filepath.Base(path)
	tempDir, err := os.MkdirTemp("", "arffsql-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	tempPath := filepath.Join(tempDir, base)

	tempFile, err := os.Create(tempPath) //nolint:gosec // Path is built from a temp dir we just created
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		removeErr := os.RemoveAll(tempDir)
		if removeErr != nil {
			return "", errors.Join(
				fmt.Errorf("failed to copy content: %w", err),
				fmt.Errorf("failed to cleanup temp file: %w", removeErr),
			)
		}
		return "", fmt.Errorf("failed to copy content: %w", err)
	}

	b.tempFiles = append(b.tempFiles, tempDir)
	return tempPath, nil
}

// cleanup removes temporary files and returns any errors
func (b *DBBuilder) cleanup() error {
	var errs []error
	for _, path := range b.tempFiles {
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove temp dir %s: %w", path, err))
		}
	}
	b.tempFiles = nil
	return errors.Join(errs...)
}

// Cleanup removes all temporary files created during filesystem processing.
// It is safe to call multiple times; subsequent calls have no effect.
func (b *DBBuilder) Cleanup() error {
	return b.cleanup()
}
