package shared

import (
	"strings"

	"github.com/go-playground/validator"
)

const (
	DEFAULT_BOOK_PATH = "~/.addressbook.txt"
	DEFAULT_LOG_LEVEL = "info"
)

// DEFAULT_CONFIG_YML is written to $HOME/.addressbook.yaml when no config file exists.
const DEFAULT_CONFIG_YML = `book:
  # File the address book is loaded from & saved to
  path: "~/.addressbook.txt"

log:
  # One of debug, info, warn or error
  level: info
`

type Config struct {
	Book BookConfig `mapstructure:"book" validate:"required"`
	Log  LogConfig  `mapstructure:"log"`
}

type BookConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Validate checks config values and returns one error listing every invalid field.
func (config *Config) Validate() error {
	err := validator.New().Struct(config)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := []string{}
	for _, fieldErr := range validationErrs {
		msgs = append(msgs, fieldErr.Namespace()+" failed on '"+fieldErr.Tag()+"'")
	}
	return &ConfigError{Msgs: msgs}
}

type ConfigError struct {
	Msgs []string
}

func (e *ConfigError) Error() string {
	return "invalid config: " + strings.Join(e.Msgs, ", ")
}
