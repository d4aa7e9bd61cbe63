package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/helper"
)

var ColourCmd = Colour{
	command: newCommand(),

	area: "",
	rgb:  "",
}

// Colour is the CLI command that sets the background colour of a range.
type Colour struct {
	command
	area string
	rgb  string
}

func (cmd *Colour) Name() string {
	return "colour"
}

func (cmd *Colour) Description() string {
	return "Sets the background colour of a range in a Google Sheets worksheet"
}

func (cmd *Colour) Usage() string {
	return "--url <url> --range <range> --rgb <r,g,b[,a]>"
}

func (cmd *Colour) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] colour [options] --url <URL> --range <range> --rgb <r,g,b[,a]>\n", APP)
	fmt.Println()
	fmt.Println("  Sets the background colour of every cell in a range. The red, green and blue components")
	fmt.Println("  are in the range 0-255 and the optional alpha component in the range 0.0-1.0")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper colour --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --range "Sheet1!A1:Z10" --rgb 142,68,173`)
	fmt.Println()
}

func (cmd *Colour) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("colour")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Sheet1!A1:Z10'")
	flagset.StringVar(&cmd.rgb, "rgb", cmd.rgb, "Background colour as r,g,b or r,g,b,a e.g. '142,68,173'")

	return flagset
}

func (cmd *Colour) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	colour, err := helper.ParseColour(cmd.rgb)
	if err != nil {
		return err
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	h.Range = cmd.area

	if err := h.ColorRange(ctx, colour); err != nil {
		return err
	}

	infof("Set background colour of %v to %v", cmd.area, colour)

	return nil
}
