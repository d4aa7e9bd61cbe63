// Package config resolves the credentials, tokens and default spreadsheet settings from
// an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sheets-helper/sheets-helper/auth"
)

const DEFAULT_ENV = ".env"

type Config struct {
	Workdir          string
	Credentials      string
	Tokens           string
	Spreadsheet      string
	ValueInputOption string
}

// TokenFile returns the configured tokens file, defaulting to the tokens file for the
// credentials in the working directory.
func (c Config) TokenFile() string {
	if c.Tokens != "" {
		return c.Tokens
	}

	return auth.TokenFile(c.Credentials, c.Workdir)
}

// Environment variables, with the original helper's names as fall backs.
var keys = struct {
	workdir          []string
	credentials      []string
	tokens           []string
	spreadsheet      []string
	valueInputOption []string
}{
	workdir:          []string{"SHEETS_WORKDIR"},
	credentials:      []string{"SHEETS_CREDENTIALS", "credentialFilePath"},
	tokens:           []string{"SHEETS_TOKENS", "tokenPath"},
	spreadsheet:      []string{"SHEETS_SPREADSHEET"},
	valueInputOption: []string{"SHEETS_VALUE_INPUT_OPTION"},
}

// Load reads the settings from the .env file (if it exists) and the environment, with
// environment variables taking precedence. Unset values default to the platform defaults.
func Load(file string) (*Config, error) {
	env := map[string]string{}

	if file != "" {
		if m, err := godotenv.Read(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading %s (%w)", file, err)
		} else if err == nil {
			env = m
		}
	}

	lookup := func(keys []string, defval string) string {
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}

			if v, ok := env[k]; ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}

		return defval
	}

	conf := Config{}
	conf.Workdir = lookup(keys.workdir, DEFAULT_WORKDIR)
	conf.Credentials = lookup(keys.credentials, DEFAULT_CREDENTIALS)
	conf.Tokens = lookup(keys.tokens, "")
	conf.Spreadsheet = lookup(keys.spreadsheet, "")
	conf.ValueInputOption = strings.ToUpper(lookup(keys.valueInputOption, "RAW"))

	switch conf.ValueInputOption {
	case "RAW", "USER_ENTERED":
	default:
		return nil, fmt.Errorf("invalid value input option '%s' - expected RAW or USER_ENTERED", conf.ValueInputOption)
	}

	return &conf, nil
}
