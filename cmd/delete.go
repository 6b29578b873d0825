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

func createDeleteCmd() *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes a contact from the address book",
		Long: `Deletes the first contact whose name, address, phone, email & note all match the flags given.
Properties that are not set on the contact must be left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, flags *entryFlags) error {
	entry, err := flags.entry()
	if err != nil {
		return err
	}

	book, err := loadBook()
	if err != nil {
		return err
	}

	deleted, err := book.DeleteEntry(entry)
	if err != nil {
		return err
	}

	if !deleted {
		return fmt.Errorf("no matching entry for '%s'. Try 'addressbook search %s' to see its details",
			entry.Name(), entry.Name())
	}

	if err = saveBook(book); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s '%s' from %v\n", colors.Green("Deleted"), entry.Name(), config.Book.Path)
	return nil
}
