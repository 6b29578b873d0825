package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		phoneNumber string
		valid       bool
	}{
		{"1-234-567-8901", true},
		{"234-567-8901", true},
		{"(234) 567 8901", true},
		{"2345678901", true},
		{"1234-(234)-567-8901", true},
		{"12345", false},
		{"12345-234-567-8901", false},
		{"234-567-890", false},
		{"phone", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidPhoneNumber(c.phoneNumber), "phone number %q", c.phoneNumber)
	}
}

func TestIsValidEmailAddress(t *testing.T) {
	cases := []struct {
		emailAddress string
		valid        bool
	}{
		{"user@example.com", true},
		{"first.last-name@mail.example.org", true},
		{"USER@EXAMPLE.COM", true},
		{"user@example", false},
		{"not-an-email", false},
		{"user@example.technology", false},
		{"@example.com", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidEmailAddress(c.emailAddress), "email address %q", c.emailAddress)
	}
}

func TestNewEntry(t *testing.T) {
	opts := EntryOptions{
		PostalAddress: "177A Bleecker Street, New York",
		PhoneNumber:   "1-234-567-8901",
		EmailAddress:  "strange@sanctum.org",
		Note:          "sorcerer supreme",
	}

	entry, err := NewEntry("Stephen Strange", opts)
	require.Nil(t, err)

	assert.Equal(t, "Stephen Strange", entry.Name())
	assert.Equal(t, opts.PostalAddress, entry.PostalAddress())
	assert.Equal(t, opts.PhoneNumber, entry.PhoneNumber())
	assert.Equal(t, opts.EmailAddress, entry.EmailAddress())
	assert.Equal(t, opts.Note, entry.Note())
	assert.Equal(t, opts, entry.Options())
}

func TestNewEntryDefaults(t *testing.T) {
	entry, err := NewEntry("Wong", EntryOptions{})
	require.Nil(t, err)

	for _, field := range Fields[1:] {
		assert.Empty(t, entry.Get(field), "%s should default to empty", field)
	}
}

func TestNewEntryInvalid(t *testing.T) {
	cases := []struct {
		description string
		name        string
		opts        EntryOptions
	}{
		{"Should fail with empty name", "", EntryOptions{}},
		{"Should fail with invalid phone number", "tony", EntryOptions{PhoneNumber: "12345"}},
		{"Should fail with email without tld", "tony", EntryOptions{EmailAddress: "user@example"}},
		{"Should fail with invalid email", "tony", EntryOptions{EmailAddress: "not-an-email"}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			entry, err := NewEntry(c.name, c.opts)
			assert.Nil(t, entry)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "expected ErrInvalidArgument, got %v", err)
		})
	}
}

func TestEntrySetters(t *testing.T) {
	entry, err := NewEntry("peter", EntryOptions{PhoneNumber: "234-567-8901", EmailAddress: "peter@parker.com"})
	require.Nil(t, err)

	assert.Nil(t, entry.SetName("Peter Parker"))
	assert.Nil(t, entry.SetPostalAddress("20 Ingram Street, Queens"))
	assert.Nil(t, entry.SetPhoneNumber("(212) 555 0199"))
	assert.Nil(t, entry.SetEmailAddress("spidey@avengers.com"))
	assert.Nil(t, entry.SetNote("friendly neighbour"))

	assert.Equal(t, "Peter Parker", entry.Name())
	assert.Equal(t, "20 Ingram Street, Queens", entry.PostalAddress())
	assert.Equal(t, "(212) 555 0199", entry.PhoneNumber())
	assert.Equal(t, "spidey@avengers.com", entry.EmailAddress())
	assert.Equal(t, "friendly neighbour", entry.Note())

	// invalid values leave the previous value untouched
	assert.True(t, errors.Is(entry.SetName(""), ErrInvalidArgument))
	assert.True(t, errors.Is(entry.SetPhoneNumber("12345"), ErrInvalidArgument))
	assert.True(t, errors.Is(entry.SetEmailAddress("user@example"), ErrInvalidArgument))
	assert.Equal(t, "Peter Parker", entry.Name())
	assert.Equal(t, "(212) 555 0199", entry.PhoneNumber())
	assert.Equal(t, "spidey@avengers.com", entry.EmailAddress())

	// empty clears optional values
	assert.Nil(t, entry.SetPhoneNumber(""))
	assert.Empty(t, entry.PhoneNumber())
}

func TestEntryEqualAndHash(t *testing.T) {
	opts := EntryOptions{PostalAddress: "Avengers Tower", EmailAddress: "stark@avengers.com"}

	e1, err := NewEntry("tony", opts)
	require.Nil(t, err)
	e2, err := NewEntry("tony", opts)
	require.Nil(t, err)

	assert.True(t, e1.Equal(e2))
	assert.Equal(t, e1.Hash(), e2.Hash())

	require.Nil(t, e2.SetNote("iron man"))
	assert.False(t, e1.Equal(e2))
	assert.NotEqual(t, e1.Hash(), e2.Hash())

	assert.False(t, e1.Equal(nil))
	assert.True(t, (*Entry)(nil).Equal(nil))
}

func TestEntryHashFieldBoundaries(t *testing.T) {
	e1, err := NewEntry("ab", EntryOptions{PostalAddress: "c"})
	require.Nil(t, err)
	e2, err := NewEntry("a", EntryOptions{PostalAddress: "bc"})
	require.Nil(t, err)

	assert.NotEqual(t, e1.Hash(), e2.Hash())
}

func TestEntryString(t *testing.T) {
	entry, err := NewEntry("natasha", EntryOptions{PhoneNumber: "234-567-8901", Note: "red room"})
	require.Nil(t, err)

	expected := "natasha\r\n\r\n234-567-8901\r\n\r\nred room\r\n**********\r\n"
	assert.Equal(t, expected, entry.String())
}

func TestEntryClone(t *testing.T) {
	entry, err := NewEntry("bruce", EntryOptions{Note: "hulk"})
	require.Nil(t, err)

	clone := entry.Clone()
	assert.True(t, entry.Equal(clone))
	assert.NotSame(t, entry, clone)

	require.Nil(t, clone.SetNote("smash"))
	assert.Equal(t, "hulk", entry.Note())

	assert.Nil(t, (*Entry)(nil).Clone())
}

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"name":    FieldName,
		"Address": FieldPostalAddress,
		"postal":  FieldPostalAddress,
		"phone":   FieldPhoneNumber,
		" email ": FieldEmailAddress,
		"note":    FieldNote,
	}

	for input, expected := range cases {
		field, err := ParseField(input)
		assert.Nil(t, err)
		assert.Equal(t, expected, field)
	}

	_, err := ParseField("birthday")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRegisterValidators(t *testing.T) {
	type contact struct {
		Phone string `validate:"phone_number"`
		Email string `validate:"omitempty,email_address"`
	}

	assert.Nil(t, validate.Struct(contact{Phone: "234-567-8901"}))
	assert.Nil(t, validate.Struct(contact{Phone: "234-567-8901", Email: "user@example.com"}))
	assert.NotNil(t, validate.Struct(contact{Phone: "12345"}))
	assert.NotNil(t, validate.Struct(contact{Phone: "234-567-8901", Email: "not-an-email"}))
}
