package models

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
)

const (
	// Sentinel marks the end of an entry in its text form.
	Sentinel = "**********"

	// LineBreak terminates every line of the text form.
	LineBreak = "\r\n"
)

// Field identifies one of the five properties of an Entry.
type Field int

const (
	FieldName Field = iota
	FieldPostalAddress
	FieldPhoneNumber
	FieldEmailAddress
	FieldNote
)

// Fields lists every Field in text form order.
var Fields = []Field{FieldName, FieldPostalAddress, FieldPhoneNumber, FieldEmailAddress, FieldNote}

var (
	fieldNames = map[Field]string{
		FieldName:          "name",
		FieldPostalAddress: "postal address",
		FieldPhoneNumber:   "phone number",
		FieldEmailAddress:  "email address",
		FieldNote:          "note",
	}

	fieldAliases = map[string]Field{
		"name":    FieldName,
		"address": FieldPostalAddress,
		"postal":  FieldPostalAddress,
		"phone":   FieldPhoneNumber,
		"email":   FieldEmailAddress,
		"note":    FieldNote,
	}

	// validator tags, fields without a tag accept any value
	fieldTags = map[Field]string{
		FieldName:         "required",
		FieldPhoneNumber:  "omitempty,phone_number",
		FieldEmailAddress: "omitempty,email_address",
	}
)

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps a user supplied name (name, address, postal, phone, email, note)
// to a Field.
func ParseField(name string) (Field, error) {
	field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown field %q", name)
	}
	return field, nil
}

// EntryOptions holds the optional properties of an Entry.
// An empty string means the property is not set.
type EntryOptions struct {
	PostalAddress string
	PhoneNumber   string
	EmailAddress  string
	Note          string
}

// Entry is a single address book record. Values are only changed through the
// setters, which run the same validation as NewEntry.
type Entry struct {
	name          string
	postalAddress string
	phoneNumber   string
	emailAddress  string
	note          string
}

// NewEntry creates an Entry from the required name & the optional properties in opts.
func NewEntry(name string, opts EntryOptions) (*Entry, error) {
	values := map[Field]string{
		FieldName:          name,
		FieldPostalAddress: opts.PostalAddress,
		FieldPhoneNumber:   opts.PhoneNumber,
		FieldEmailAddress:  opts.EmailAddress,
		FieldNote:          opts.Note,
	}

	for _, field := range Fields {
		if err := checkField(field, values[field]); err != nil {
			return nil, err
		}
	}

	return &Entry{
		name:          name,
		postalAddress: opts.PostalAddress,
		phoneNumber:   opts.PhoneNumber,
		emailAddress:  opts.EmailAddress,
		note:          opts.Note,
	}, nil
}

func (e *Entry) Name() string          { return e.name }
func (e *Entry) PostalAddress() string { return e.postalAddress }
func (e *Entry) PhoneNumber() string   { return e.phoneNumber }
func (e *Entry) EmailAddress() string  { return e.emailAddress }
func (e *Entry) Note() string          { return e.note }

// Get returns the value of field.
func (e *Entry) Get(field Field) string {
	switch field {
	case FieldName:
		return e.name
	case FieldPostalAddress:
		return e.postalAddress
	case FieldPhoneNumber:
		return e.phoneNumber
	case FieldEmailAddress:
		return e.emailAddress
	case FieldNote:
		return e.note
	}
	return ""
}

func (e *Entry) SetName(val string) error {
	return e.set(FieldName, val, &e.name)
}

func (e *Entry) SetPostalAddress(val string) error {
	return e.set(FieldPostalAddress, val, &e.postalAddress)
}

// SetPhoneNumber updates the phone number, an empty value clears it.
func (e *Entry) SetPhoneNumber(val string) error {
	return e.set(FieldPhoneNumber, val, &e.phoneNumber)
}

// SetEmailAddress updates the email address, an empty value clears it.
func (e *Entry) SetEmailAddress(val string) error {
	return e.set(FieldEmailAddress, val, &e.emailAddress)
}

func (e *Entry) SetNote(val string) error {
	return e.set(FieldNote, val, &e.note)
}

// Options returns the optional properties of e.
func (e *Entry) Options() EntryOptions {
	return EntryOptions{
		PostalAddress: e.postalAddress,
		PhoneNumber:   e.phoneNumber,
		EmailAddress:  e.emailAddress,
		Note:          e.note,
	}
}

// Equal reports whether e and other hold the same five values.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return *e == *other
}

// Hash combines all five values. Equal entries have equal hashes.
func (e *Entry) Hash() uint64 {
	h := murmur3.New64()
	for _, field := range Fields {
		h.Write([]byte(e.Get(field)))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// Clone returns a copy of e that shares no state with it.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

// String returns the text form of e: one line per field followed by the Sentinel line.
func (e *Entry) String() string {
	var sb strings.Builder
	for _, field := range Fields {
		sb.WriteString(e.Get(field))
		sb.WriteString(LineBreak)
	}
	sb.WriteString(Sentinel)
	sb.WriteString(LineBreak)
	return sb.String()
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func (e *Entry) set(field Field, val string, dest *string) error {
	if err := checkField(field, val); err != nil {
		return err
	}
	*dest = val
	return nil
}

func checkField(field Field, val string) error {
	tag, ok := fieldTags[field]
	if !ok {
		return nil
	}

	if err := validate.Var(val, tag); err != nil {
		if val == "" {
			return errors.Wrapf(ErrInvalidArgument, "%s cannot be empty", field)
		}
		return errors.Wrapf(ErrInvalidArgument, "invalid %s %q", field, val)
	}
	return nil
}
