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

	"github.com/Daskott/addressbook/colors"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Adds a contact to the address book",
		Example: `  addressbook add --name "Tony Stark" --phone 1-234-567-8901 --email tony@stark.com
  addressbook add -n Pepper -a "10880 Malibu Point" --note "CEO"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, flags *entryFlags) error {
	entry, err := flags.entry()
	if err != nil {
		return err
	}

	book, err := loadBook()
	if err != nil {
		return err
	}

	if _, err := book.SearchByName(entry.Name()); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s an entry named '%s' already exists, adding another one\n",
			warningLabel, entry.Name())
	}

	if _, err = book.AddEntry(entry); err != nil {
		return err
	}

	if err = saveBook(book); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s '%s' to %v\n", colors.Green("Added"), entry.Name(), config.Book.Path)
	return nil
}
