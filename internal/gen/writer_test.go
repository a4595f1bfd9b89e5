package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.h")

	err := WriteFile(GeneratedFile{Filename: path, Content: []byte("#define BOARD_TEST\n")})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#define BOARD_TEST\n", string(data))
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "boards", "board.h")

	err := WriteFile(GeneratedFile{Filename: path, Content: []byte("x")})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.h")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := WriteFile(GeneratedFile{Filename: path, Content: []byte("new")})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileBadDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	require.NoError(t, os.WriteFile(blocker, []byte(""), 0o644))

	err := WriteFile(GeneratedFile{Filename: filepath.Join(blocker, "board.h"), Content: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}
