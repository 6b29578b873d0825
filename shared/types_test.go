package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		description string
		config      Config
		expectedErr string
	}{
		{"Should accept valid config", Config{Book: BookConfig{Path: "book.txt"}, Log: LogConfig{Level: "debug"}}, ""},
		{"Should accept empty log level", Config{Book: BookConfig{Path: "book.txt"}}, ""},
		{"Should require book path", Config{}, "Config.Book.Path failed on 'required'"},
		{"Should reject unknown log level", Config{Book: BookConfig{Path: "book.txt"}, Log: LogConfig{Level: "loud"}}, "Config.Log.Level failed on 'oneof'"},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			err := c.config.Validate()
			if c.expectedErr == "" {
				assert.Nil(t, err)
				return
			}

			if assert.NotNil(t, err) {
				assert.Contains(t, err.Error(), c.expectedErr)
			}
		})
	}
}
