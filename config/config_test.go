package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearenv(t *testing.T) {
	for _, k := range []string{
		"SHEETS_WORKDIR",
		"SHEETS_CREDENTIALS",
		"SHEETS_TOKENS",
		"SHEETS_SPREADSHEET",
		"SHEETS_VALUE_INPUT_OPTION",
		"credentialFilePath",
		"tokenPath",
	} {
		t.Setenv(k, "")
	}
}

func dotenv(t *testing.T, contents string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(file, []byte(contents), 0600); err != nil {
		t.Fatalf("Error creating .env file (%v)", err)
	}

	return file
}

func TestLoadDefaults(t *testing.T) {
	clearenv(t)

	conf, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Unexpected error loading configuration (%v)", err)
	}

	expected := Config{
		Workdir:          DEFAULT_WORKDIR,
		Credentials:      DEFAULT_CREDENTIALS,
		Tokens:           "",
		Spreadsheet:      "",
		ValueInputOption: "RAW",
	}

	if *conf != expected {
		t.Errorf("Incorrect configuration\n   expected: %+v\n   got:      %+v", expected, *conf)
	}

	if tokens := conf.TokenFile(); tokens != filepath.Join(DEFAULT_WORKDIR, ".google", "credentials.sheets") {
		t.Errorf("Incorrect default tokens file %v", tokens)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	clearenv(t)

	file := dotenv(t, `
# sheets-helper
SHEETS_WORKDIR=/tmp/sheets
SHEETS_CREDENTIALS=/etc/sheets/client.json
SHEETS_SPREADSHEET="1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
SHEETS_VALUE_INPUT_OPTION=user_entered
`)

	conf, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading configuration (%v)", err)
	}

	expected := Config{
		Workdir:          "/tmp/sheets",
		Credentials:      "/etc/sheets/client.json",
		Tokens:           "",
		Spreadsheet:      "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		ValueInputOption: "USER_ENTERED",
	}

	if *conf != expected {
		t.Errorf("Incorrect configuration\n   expected: %+v\n   got:      %+v", expected, *conf)
	}

	if tokens := conf.TokenFile(); tokens != filepath.Join("/tmp/sheets", ".google", "client.sheets") {
		t.Errorf("Incorrect tokens file %v", tokens)
	}
}

func TestEnvironmentOverridesDotEnv(t *testing.T) {
	clearenv(t)
	t.Setenv("SHEETS_TOKENS", "/var/tokens.json")

	file := dotenv(t, "SHEETS_TOKENS=/tmp/ignored.json\ntokenPath=/tmp/also-ignored.json\n")

	conf, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error loading configuration (%v)", err)
	}

	if conf.Tokens != "/var/tokens.json" {
		t.Errorf("Incorrect tokens file - expected:%v, got:%v", "/var/tokens.json", conf.Tokens)
	}
}

func TestLoadWithLegacyNames(t *testing.T) {
	clearenv(t)
	t.Setenv("credentialFilePath", "/opt/credentials.json")
	t.Setenv("tokenPath", "/opt/token.json")

	conf, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error loading configuration (%v)", err)
	}

	if conf.Credentials != "/opt/credentials.json" || conf.Tokens != "/opt/token.json" {
		t.Errorf("Incorrect configuration %+v", *conf)
	}
}

func TestLoadWithInvalidValueInputOption(t *testing.T) {
	clearenv(t)
	t.Setenv("SHEETS_VALUE_INPUT_OPTION", "PARSED")

	if _, err := Load(""); err == nil {
		t.Errorf("Expected error for invalid value input option, got %v", err)
	}
}
