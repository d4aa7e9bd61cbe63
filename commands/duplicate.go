package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
)

var DuplicateCmd = Duplicate{
	command: newCommand(),

	worksheet: "",
	title:     "",
}

type Duplicate struct {
	command
	worksheet string
	title     string
}

func (cmd *Duplicate) Name() string {
	return "duplicate"
}

func (cmd *Duplicate) Description() string {
	return "Duplicates a worksheet in a Google Sheets spreadsheet"
}

func (cmd *Duplicate) Usage() string {
	return "--url <url> --worksheet <name> --title <name>"
}

func (cmd *Duplicate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] duplicate [options] --url <URL> --worksheet <name> --title <name>\n", APP)
	fmt.Println()
	fmt.Println("  Copies a worksheet (values and formatting) to a new worksheet in the same spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper duplicate --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --worksheet Template --title "2026-10"`)
	fmt.Println()
}

func (cmd *Duplicate) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("duplicate")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Name of the worksheet to copy")
	flagset.StringVar(&cmd.title, "title", cmd.title, "Name for the new worksheet")

	return flagset
}

func (cmd *Duplicate) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	if strings.TrimSpace(cmd.title) == "" {
		return fmt.Errorf("--title is a required option")
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	properties, err := h.DuplicateWorksheet(ctx, cmd.worksheet, cmd.title)
	if err != nil {
		return err
	}

	infof("Duplicated worksheet '%v' to '%v' (ID:%v)", cmd.worksheet, properties.Title, properties.SheetId)

	return nil
}
