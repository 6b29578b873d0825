// Package serializer saves an address book to, and loads it from, a line based
// text format: five lines per entry (name, postal address, phone number,
// email address, note) each followed by a "**********" line.
//
// Lines are written with CRLF endings; LF endings are accepted on load.
// Field values cannot contain line breaks or be equal to the sentinel line.
package serializer

import (
	"bufio"
	"io"

	"github.com/Daskott/addressbook/logger"
	"github.com/Daskott/addressbook/models"
	"github.com/pkg/errors"
)

// MaxLineSize is the longest line Load accepts.
const MaxLineSize = 1024 * 1024

var logg = logger.NewLogger()

// Save writes the text form of book to w. The caller owns w and is
// responsible for closing it.
func Save(book *models.Book, w io.Writer) error {
	if book == nil {
		return errors.Wrap(models.ErrNullReference, "Save: book is nil")
	}

	bw := bufio.NewWriter(w)
	for _, entry := range book.Entries() {
		if _, err := bw.WriteString(entry.String()); err != nil {
			return &models.IOError{Op: "Save", Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &models.IOError{Op: "Save", Err: err}
	}

	logg.Debugf("Saved %v entries", book.Len())
	return nil
}

// Load reads entries from r and appends them to book.
//
// A sentinel line before a record is skipped. Input that ends in the middle of
// a record fails with models.ErrMalformedInput; an entry that does not validate
// fails with models.ErrInvalidArgument. Entries read before a failure stay in book.
func Load(r io.Reader, book *models.Book) error {
	if book == nil {
		return errors.Wrap(models.ErrNullReference, "Load: book is nil")
	}

	lr := newLineReader(r)
	count := 0

	for {
		line, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if line == models.Sentinel {
			line, ok, err = lr.next()
			if err != nil {
				return err
			}
			if !ok {
				logg.Debugf("Trailing sentinel on line %v", lr.line)
				break
			}
		}

		startLine := lr.line
		values := []string{line}
		for len(values) < len(models.Fields) {
			line, ok, err = lr.next()
			if err != nil {
				return err
			}
			if !ok {
				return errors.Wrapf(models.ErrMalformedInput,
					"record starting on line %v has %v of %v lines", startLine, len(values), len(models.Fields))
			}
			values = append(values, line)
		}

		entry, err := models.NewEntry(values[0], models.EntryOptions{
			PostalAddress: values[1],
			PhoneNumber:   values[2],
			EmailAddress:  values[3],
			Note:          values[4],
		})
		if err != nil {
			return errors.WithMessagef(err, "record starting on line %v", startLine)
		}

		if _, err = book.AddEntry(entry); err != nil {
			return err
		}
		count++
	}

	logg.Debugf("Loaded %v entries", count)
	return nil
}

// ---------------------------------------------------------------------------------//
// Helpers
// --------------------------------------------------------------------------------//

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	// bufio.ScanLines drops the trailing '\r' of CRLF endings
	scanner.Split(bufio.ScanLines)

	return &lineReader{scanner: scanner}
}

// next returns the next line and true, or false once the input is exhausted.
func (lr *lineReader) next() (string, bool, error) {
	if lr.scanner.Scan() {
		lr.line++
		return lr.scanner.Text(), true, nil
	}

	if err := lr.scanner.Err(); err != nil {
		return "", false, &models.IOError{Op: "Load", Err: err}
	}
	return "", false, nil
}
