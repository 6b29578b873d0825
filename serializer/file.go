package serializer

import (
	"os"
	"path/filepath"

	"github.com/Daskott/addressbook/models"
	"github.com/Daskott/addressbook/utils"
	"go.uber.org/multierr"
)

// LoadFile appends the entries stored in filePath to book.
// A missing file is treated as an empty book.
func LoadFile(filePath string, book *models.Book) error {
	exists, err := utils.FileExist(filePath)
	if err != nil {
		return &models.IOError{Op: "LoadFile", Err: err}
	}
	if !exists {
		logg.Debugf("No book at %v, starting empty", filePath)
		return nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return &models.IOError{Op: "LoadFile", Err: err}
	}
	defer f.Close()

	return Load(f, book)
}

// SaveFile writes book to filePath with 0600 permissions, replacing its content.
// The book is written to a temporary file in the same directory first, so a failed
// save keeps the previous file.
func SaveFile(book *models.Book, filePath string) (err error) {
	dir := filepath.Dir(filePath)
	if err = utils.CreateDirIfNotExist(dir); err != nil {
		return &models.IOError{Op: "SaveFile", Err: err}
	}

	f, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return &models.IOError{Op: "SaveFile", Err: err}
	}
	tmpPath := f.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	err = Save(book, f)
	if closeErr := f.Close(); closeErr != nil {
		err = multierr.Append(err, &models.IOError{Op: "SaveFile", Err: closeErr})
	}
	if err != nil {
		return err
	}

	if err = os.Rename(tmpPath, filePath); err != nil {
		return &models.IOError{Op: "SaveFile", Err: err}
	}

	logg.Debugf("Saved book to %v", filePath)
	return nil
}
