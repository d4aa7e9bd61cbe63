package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
)

var FindCmd = Find{
	command: newCommand(),

	worksheet: "",
	area:      "",
	value:     "",
}

type Find struct {
	command
	worksheet string
	area      string
	value     string
}

func (cmd *Find) Name() string {
	return "find"
}

func (cmd *Find) Description() string {
	return "Finds the first cell in a worksheet or range with a matching value"
}

func (cmd *Find) Usage() string {
	return "--url <url> (--worksheet <name> | --range <range>) --value <value>"
}

func (cmd *Find) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] find [options] --url <URL> (--worksheet <name> | --range <range>) --value <value>\n", APP)
	fmt.Println()
	fmt.Println("  Searches row by row for the first cell whose formatted value matches --value and prints")
	fmt.Println("  the cell in A1 notation")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper find --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --worksheet Sheet1 --value "apple"`)
	fmt.Println()
}

func (cmd *Find) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("find")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet to search")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Range to search e.g. 'Sheet1!A1:E'")
	flagset.StringVar(&cmd.value, "value", cmd.value, "Value to find")

	return flagset
}

func (cmd *Find) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.worksheet) == "" && strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("requires one of --worksheet or --range")
	}

	if cmd.value == "" {
		return fmt.Errorf("--value is a required option")
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS_READONLY)
	if err != nil {
		return err
	}

	h.Worksheet = cmd.worksheet
	h.Range = cmd.area

	cell, err := h.FindCellByValue(ctx, cmd.value)
	if err != nil {
		return err
	}

	fmt.Println(cell)

	return nil
}
