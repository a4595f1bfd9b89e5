package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is one rendered output artifact.
type GeneratedFile struct {
	// Filename is the output path, absolute or relative to the
	// working directory.
	Filename string
	// Content is the fully rendered file body.
	Content []byte
}

// WriteFile writes a generated file to its path, creating parent
// directories as needed.
func WriteFile(file GeneratedFile) error {
	dir := filepath.Dir(file.Filename)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(file.Filename, file.Content, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}
