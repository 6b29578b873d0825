package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExist(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "book.txt")

	exists, err := FileExist(filePath)
	assert.Nil(t, err)
	assert.False(t, exists)

	assert.Nil(t, os.WriteFile(filePath, []byte("tony\r\n"), 0600))
	exists, err = FileExist(filePath)
	assert.Nil(t, err)
	assert.True(t, exists)

	// a regular file used as a directory is an error, not a missing file
	exists, err = FileExist(filepath.Join(filePath, "book.txt"))
	assert.NotNil(t, err)
	assert.False(t, exists)
}

func TestCreateDirIfNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	assert.Nil(t, CreateDirIfNotExist(dir))
	exists, err := FileExist(dir)
	assert.Nil(t, err)
	assert.True(t, exists)

	// already exists
	assert.Nil(t, CreateDirIfNotExist(dir))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.Nil(t, err)

	path, err := ExpandHome("~/book.txt")
	assert.Nil(t, err)
	assert.Equal(t, filepath.Join(home, "book.txt"), path)

	path, err = ExpandHome("/tmp/book.txt")
	assert.Nil(t, err)
	assert.Equal(t, "/tmp/book.txt", path)
}
