/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/Daskott/addressbook/colors"
	"github.com/Daskott/addressbook/models"
	"github.com/Daskott/addressbook/serializer"
	"github.com/spf13/cobra"
)

// entryFlags binds the five entry properties to a command's flags.
type entryFlags struct {
	name          string
	postalAddress string
	phoneNumber   string
	emailAddress  string
	note          string
}

func (flags *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "name of the contact")
	cmd.Flags().StringVarP(&flags.postalAddress, "address", "a", "", "postal address")
	cmd.Flags().StringVarP(&flags.phoneNumber, "phone", "p", "", "phone number e.g. 1-234-567-8901, 234-567-8901 or (234) 567 8901")
	cmd.Flags().StringVarP(&flags.emailAddress, "email", "e", "", "email address")
	cmd.Flags().StringVar(&flags.note, "note", "", "free text note")

	cmd.MarkFlagRequired("name")
}

func (flags *entryFlags) entry() (*models.Entry, error) {
	return models.NewEntry(flags.name, models.EntryOptions{
		PostalAddress: flags.postalAddress,
		PhoneNumber:   flags.phoneNumber,
		EmailAddress:  flags.emailAddress,
		Note:          flags.note,
	})
}

// ---------------------------------------------------------------------------------//
// Book Helpers
// --------------------------------------------------------------------------------//

func loadBook() (*models.Book, error) {
	book := models.NewBook()
	if err := serializer.LoadFile(config.Book.Path, book); err != nil {
		return nil, fmt.Errorf("unable to load address book %v: %v", config.Book.Path, err)
	}
	return book, nil
}

func saveBook(book *models.Book) error {
	if err := serializer.SaveFile(book, config.Book.Path); err != nil {
		return fmt.Errorf("unable to save address book %v: %v", config.Book.Path, err)
	}
	return nil
}

func printEntry(w io.Writer, entry *models.Entry) {
	fmt.Fprintf(w, "%s %s\n", colors.Label("Name:"), entry.Name())

	optional := []struct {
		label string
		value string
	}{
		{"Address:", entry.PostalAddress()},
		{"Phone:", entry.PhoneNumber()},
		{"Email:", entry.EmailAddress()},
		{"Note:", entry.Note()},
	}

	for _, field := range optional {
		if field.value != "" {
			fmt.Fprintf(w, "%s %s\n", colors.Label(field.label), field.value)
		}
	}
}
