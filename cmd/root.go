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
	"os"
	"path/filepath"
	"strings"

	"github.com/Daskott/addressbook/colors"
	"github.com/Daskott/addressbook/logger"
	"github.com/Daskott/addressbook/shared"
	"github.com/Daskott/addressbook/utils"
	"github.com/Daskott/addressbook/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configName = ".addressbook.yaml"

var (
	cfgFile     string
	bookPathArg string
	verboseArg  bool
	noColorArg  bool

	config *shared.Config
	logg   = logger.NewLogger()

	warningLabel = colors.Yellow("Warning:")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "addressbook",
		Short: `addressbook is a CLI for keeping a plain text address book.

Entries hold a name, postal address, phone number, email address & a note,
and are stored in a single text file you can read or edit by hand.`,
		Version:      fmt.Sprintf("v%s", version.Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.addressbook.yaml)")
	cmd.PersistentFlags().StringVarP(&bookPathArg, "book", "b", "", "address book file (default is $HOME/.addressbook.txt)")
	cmd.PersistentFlags().BoolVarP(&verboseArg, "verbose", "v", false, "log debug output")
	cmd.PersistentFlags().BoolVar(&noColorArg, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		createAddCmd(),
		createDeleteCmd(),
		createSearchCmd(),
		createListCmd(),
	)

	return cmd
}

// initConfig reads in config file, .env & ENV variables and stores the result in 'config'.
func initConfig(cmd *cobra.Command) error {
	if noColorArg {
		colors.Disable()
	}

	if err := godotenv.Load(); err != nil {
		logg.Debug("No .env file found (using environment variables)")
	}

	v := viper.New()
	v.SetDefault("book.path", shared.DEFAULT_BOOK_PATH)
	v.SetDefault("log.level", shared.DEFAULT_LOG_LEVEL)

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		configFilePath, err := defaultConfigFilePath()
		if err != nil {
			return err
		}
		v.SetConfigFile(configFilePath)
	}
	v.SetConfigType("yaml")

	// ADDRESSBOOK_BOOK_PATH overrides book.path, ADDRESSBOOK_LOG_LEVEL overrides log.level
	v.SetEnvPrefix("ADDRESSBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("book.path", cmd.Root().PersistentFlags().Lookup("book")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %v: %v", v.ConfigFileUsed(), err)
	}

	cfg := shared.Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode config: %v", err)
	}

	if verboseArg {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return formattedError("%v\nUpdate app config in %s", err, v.ConfigFileUsed())
	}

	bookPath, err := utils.ExpandHome(cfg.Book.Path)
	if err != nil {
		return err
	}
	cfg.Book.Path = bookPath

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	logg.Debugf("Using config file: %v", v.ConfigFileUsed())
	logg.Debugf("Using address book: %v", cfg.Book.Path)

	config = &cfg
	return nil
}

// defaultConfigFilePath returns $HOME/.addressbook.yaml, creating it with
// default content if it does not exist.
func defaultConfigFilePath() (string, error) {
	configDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configFilePath := filepath.Join(configDir, configName)
	exists, err := utils.FileExist(configFilePath)
	if err != nil {
		return "", err
	}
	if !exists {
		err = os.WriteFile(configFilePath, []byte(shared.DEFAULT_CONFIG_YML), 0600)
		if err != nil {
			return "", err
		}
	}

	return configFilePath, nil
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
