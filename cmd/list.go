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

	"github.com/Daskott/addressbook/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// entryYAML is the yaml shape of an entry for 'list --format yaml'
type entryYAML struct {
	Name          string `yaml:"name"`
	PostalAddress string `yaml:"postal_address,omitempty"`
	PhoneNumber   string `yaml:"phone_number,omitempty"`
	EmailAddress  string `yaml:"email_address,omitempty"`
	Note          string `yaml:"note,omitempty"`
}

func createListCmd() *cobra.Command {
	var formatArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists every contact in the address book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, formatArg)
		},
	}

	cmd.Flags().StringVarP(&formatArg, "format", "f", "text", "output format i.e. text, yaml or raw")

	return cmd
}

func runList(cmd *cobra.Command, format string) error {
	if format != "text" && format != "yaml" && format != "raw" {
		return fmt.Errorf("invalid argument \"%v\", --format should be text, yaml or raw", format)
	}

	book, err := loadBook()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := book.Entries()

	switch format {
	case "raw":
		fmt.Fprint(out, book.String())
	case "yaml":
		list := make([]entryYAML, 0, len(entries))
		for i := range entries {
			list = append(list, newEntryYAML(&entries[i]))
		}

		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(list); err != nil {
			return err
		}
		return encoder.Close()
	default:
		if len(entries) == 0 {
			fmt.Fprintf(out, "No contacts in %v. Try 'addressbook add --name NAME'\n", config.Book.Path)
			return nil
		}

		for i := range entries {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printEntry(out, &entries[i])
		}
	}

	return nil
}

func newEntryYAML(entry *models.Entry) entryYAML {
	return entryYAML{
		Name:          entry.Name(),
		PostalAddress: entry.PostalAddress(),
		PhoneNumber:   entry.PhoneNumber(),
		EmailAddress:  entry.EmailAddress(),
		Note:          entry.Note(),
	}
}
