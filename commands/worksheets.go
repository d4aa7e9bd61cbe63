package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/sheets-helper/sheets-helper/auth"
)

var WorksheetsCmd = Worksheets{
	command: newCommand(),
}

type Worksheets struct {
	command
}

func (cmd *Worksheets) Name() string {
	return "worksheets"
}

func (cmd *Worksheets) Description() string {
	return "Lists the worksheets in a Google Sheets spreadsheet"
}

func (cmd *Worksheets) Usage() string {
	return "--url <url>"
}

func (cmd *Worksheets) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] worksheets [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the index, ID and title of each worksheet in a spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Worksheets) FlagSet() *flag.FlagSet {
	return cmd.flagset("worksheets")
}

func (cmd *Worksheets) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS_READONLY)
	if err != nil {
		return err
	}

	worksheets, err := h.Worksheets(ctx)
	if err != nil {
		return err
	}

	for _, w := range worksheets {
		fmt.Printf("%-4v %-12v %v\n", w.Index, w.SheetId, w.Title)
	}

	return nil
}
