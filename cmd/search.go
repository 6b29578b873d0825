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
	"github.com/Daskott/addressbook/models"
	"github.com/spf13/cobra"
)

func createSearchCmd() *cobra.Command {
	var byArg string

	cmd := &cobra.Command{
		Use:   "search VALUE",
		Short: "Finds the first contact with a matching property",
		Long: `Finds the first contact, in the order they were added, whose property exactly matches VALUE.
The property is picked with --by and is one of name, address, phone, email or note.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, byArg, args[0])
		},
	}

	cmd.Flags().StringVar(&byArg, "by", "name", "property to search by i.e. name, address, phone, email or note")

	return cmd
}

func runSearch(cmd *cobra.Command, by, value string) error {
	field, err := models.ParseField(by)
	if err != nil {
		return err
	}

	book, err := loadBook()
	if err != nil {
		return err
	}

	entry, err := book.Search(field, value)
	if err != nil {
		return err
	}

	printEntry(cmd.OutOrStdout(), entry)
	return nil
}
