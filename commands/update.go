package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/table"
)

var UpdateCmd = Update{
	command: newCommand(),

	worksheet: "",
	cell:      "",
	value:     "",
	area:      "",
	file:      "",
}

// Update is the CLI command that overwrites a single cell or a range.
type Update struct {
	command
	worksheet string
	cell      string
	value     string
	area      string
	file      string
}

func (cmd *Update) Name() string {
	return "update"
}

func (cmd *Update) Description() string {
	return "Updates a cell or a range in a Google Sheets worksheet"
}

func (cmd *Update) Usage() string {
	return "--url <url> (--worksheet <name> --cell <cell> --value <value> | --range <range> --file <file>)"
}

func (cmd *Update) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] update [options] --url <URL> --worksheet <name> --cell <cell> --value <value>\n", APP)
	fmt.Printf("         %s [--debug] update [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Sets the value of a single cell, or overwrites a range with the contents of a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper update --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --worksheet Sheet1 --cell B5 --value "Hi, I'm a test!"`)
	fmt.Println(`    sheets-helper update --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --range "Sheet1!A1:F5" --file "update.tsv"`)
	fmt.Println()
}

func (cmd *Update) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("update")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet name for --cell")
	flagset.StringVar(&cmd.cell, "cell", cmd.cell, "Cell to update e.g. 'B5'")
	flagset.StringVar(&cmd.value, "value", cmd.value, "New cell value")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range to overwrite with --file e.g. 'Sheet1!A1:F5'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the new values for --range")
	flagset.StringVar(&cmd.valueInput, "value-input-option", cmd.valueInput, "RAW or USER_ENTERED")

	return flagset
}

func (cmd *Update) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	single := cmd.cell != ""
	if single && cmd.area != "" {
		return fmt.Errorf("--cell and --range are mutually exclusive")
	} else if !single && cmd.area == "" {
		return fmt.Errorf("requires either --cell or --range")
	}

	if !single && strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option for --range")
	}

	option, err := valueInputOption(cmd.valueInput)
	if err != nil {
		return err
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	h.ValueInputOption = option

	if single {
		h.Worksheet = cmd.worksheet

		response, err := h.UpdateCell(ctx, cmd.cell, cmd.value)
		if err != nil {
			return err
		}

		infof("Updated %v", response.UpdatedRange)

		return nil
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	data, err := table.ReadTSV(f, cmd.area)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	h.Range = cmd.area

	response, err := h.Update(ctx, data.Values)
	if err != nil {
		return err
	}

	infof("Updated %v (%v cells)", response.UpdatedRange, response.UpdatedCells)

	return nil
}
