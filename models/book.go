package models

import (
	"strings"

	"github.com/pkg/errors"
)

// Book is an ordered collection of entries. Duplicates are allowed.
// A Book is not safe for concurrent use; callers sharing one must guard it
// with their own lock.
type Book struct {
	entries []Entry
}

func NewBook() *Book {
	return &Book{}
}

// AddEntry appends a copy of entry, so later changes to entry do not affect the book.
func (book *Book) AddEntry(entry *Entry) (bool, error) {
	if entry == nil {
		return false, errors.Wrap(ErrNullReference, "AddEntry: entry is nil")
	}

	book.entries = append(book.entries, *entry.Clone())
	return true, nil
}

// DeleteEntry removes the first entry equal to entry and reports whether one was removed.
func (book *Book) DeleteEntry(entry *Entry) (bool, error) {
	if entry == nil {
		return false, errors.Wrap(ErrNullReference, "DeleteEntry: entry is nil")
	}

	for i := range book.entries {
		if book.entries[i].Equal(entry) {
			book.entries = append(book.entries[:i], book.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Search returns a copy of the first entry, in insertion order, whose field equals value.
// ErrNotFound is returned when there is no such entry.
// Unknown fields and an empty name fail with ErrInvalidArgument.
func (book *Book) Search(field Field, value string) (*Entry, error) {
	if _, ok := fieldNames[field]; !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "Search: unknown %s", field)
	}
	if field == FieldName && value == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "Search: name cannot be empty")
	}

	return book.find(func(entry *Entry) bool {
		return entry.Get(field) == value
	}, field, value)
}

func (book *Book) SearchByName(name string) (*Entry, error) {
	return book.Search(FieldName, name)
}

func (book *Book) SearchByPostalAddress(postalAddress string) (*Entry, error) {
	return book.Search(FieldPostalAddress, postalAddress)
}

func (book *Book) SearchByPhoneNumber(phoneNumber string) (*Entry, error) {
	return book.Search(FieldPhoneNumber, phoneNumber)
}

func (book *Book) SearchByEmailAddress(emailAddress string) (*Entry, error) {
	return book.Search(FieldEmailAddress, emailAddress)
}

func (book *Book) SearchByNote(note string) (*Entry, error) {
	return book.Search(FieldNote, note)
}

// Len returns the number of entries in book.
func (book *Book) Len() int {
	return len(book.entries)
}

// Entries returns copies of all entries in insertion order.
func (book *Book) Entries() []Entry {
	entries := make([]Entry, len(book.entries))
	copy(entries, book.entries)
	return entries
}

// Equal reports whether both books hold equal entries in the same order.
func (book *Book) Equal(other *Book) bool {
	if book == nil || other == nil {
		return book == other
	}

	if len(book.entries) != len(other.entries) {
		return false
	}

	for i := range book.entries {
		if !book.entries[i].Equal(&other.entries[i]) {
			return false
		}
	}
	return true
}

// Hash combines the hashes of all entries in order. Equal books have equal hashes.
func (book *Book) Hash() uint64 {
	const prime = 31

	var result uint64 = 1
	for i := range book.entries {
		result = result*prime + book.entries[i].Hash()
	}
	return result
}

// String concatenates the text form of every entry in order.
func (book *Book) String() string {
	var sb strings.Builder
	for i := range book.entries {
		sb.WriteString(book.entries[i].String())
	}
	return sb.String()
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func (book *Book) find(match func(entry *Entry) bool, field Field, value string) (*Entry, error) {
	for i := range book.entries {
		if match(&book.entries[i]) {
			return book.entries[i].Clone(), nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no entry with %s %q", field, value)
}
