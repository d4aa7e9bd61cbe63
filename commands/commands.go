package commands

import (
	"github.com/sheets-helper/sheets-helper/config"
)

// Configure replaces the built-in command defaults with the loaded configuration.
func Configure(conf *config.Config) {
	list := []configurable{
		&AuthoriseCmd,
		&CreateCmd,
		&GetCmd,
		&PutCmd,
		&AppendCmd,
		&UpdateCmd,
		&ColourCmd,
		&DuplicateCmd,
		&FindCmd,
		&WorksheetsCmd,
	}

	for _, c := range list {
		c.configure(conf)
	}
}
