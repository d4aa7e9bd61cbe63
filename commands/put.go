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

var PutCmd = Put{
	command: newCommand(),

	area:  "",
	file:  "",
	clear: false,
}

type Put struct {
	command
	area  string
	file  string
	clear bool
}

func (c *Put) FlagSet() *flag.FlagSet {
	flagset := c.flagset("put")

	flagset.StringVar(&c.area, "range", c.area, "Spreadsheet range e.g. 'Sheet1!A2:E'. The TSV file is written starting at the top-left cell")
	flagset.StringVar(&c.file, "file", c.file, "TSV file")
	flagset.StringVar(&c.valueInput, "value-input-option", c.valueInput, "RAW or USER_ENTERED")
	flagset.BoolVar(&c.clear, "clear", c.clear, "Clears the range before uploading the TSV file")

	return flagset
}

func (c *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	c.debug = options.Debug

	if err := c.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(c.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	option, err := valueInputOption(c.valueInput)
	if err != nil {
		return err
	}

	f, err := os.Open(c.file)
	if err != nil {
		return err
	}

	defer f.Close()

	data, err := table.ReadTSV(f, c.area)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	ctx := context.Background()

	h, err := c.connect(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	h.ValueInputOption = option

	if c.clear {
		if err := h.Clear(ctx, c.area); err != nil {
			return err
		}

		if c.debug {
			debugf("cleared %s", c.area)
		}
	}

	h.Range = data.Range

	response, err := h.Update(ctx, data.Values)
	if err != nil {
		return err
	}

	if rows := int64(len(data.Values)); response.UpdatedRows < rows {
		warnf("%v of %v rows updated", response.UpdatedRows, rows)
	}

	infof("Uploaded TSV file %v to Google Sheets %v (%v cells)", c.file, response.UpdatedRange, response.UpdatedCells)

	return nil
}

func (c *Put) Name() string {
	return "put"
}

func (c *Put) Description() string {
	return "Uploads a TSV file to a Google Sheets worksheet"
}

func (c *Put) Usage() string {
	return "--url <url> --range <range> --file <file>"
}

func (c *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to a Google Sheets worksheet")
	fmt.Println()

	helpOptions(c.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    sheets-helper --debug put --credentials "credentials.json" \`)
	fmt.Println(`                              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --range "Sheet1!A2:E" \`)
	fmt.Println(`                              --file "example.tsv"`)
	fmt.Println()
}
