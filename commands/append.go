package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/table"
)

var AppendCmd = Append{
	command: newCommand(),

	area: "",
	row:  "",
	file: "",
}

// Append is the CLI command that adds rows after the last row of a table.
type Append struct {
	command
	area string
	row  string
	file string
}

func (cmd *Append) Name() string {
	return "append"
}

func (cmd *Append) Description() string {
	return "Appends rows after the last row of a table in a Google Sheets worksheet"
}

func (cmd *Append) Usage() string {
	return "--url <url> --range <range> [--row <values>] [--file <file>]"
}

func (cmd *Append) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] append [options] --url <URL> --range <range> [--row <values>] [--file <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Appends a single comma separated row, or all the rows in a TSV file, to a table")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper append --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --range "Sheet1!A:C" --row "apple,3,1.50"`)
	fmt.Println(`    sheets-helper append --url 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --range "Sheet1!A:C" --file "rows.tsv"`)
	fmt.Println()
}

func (cmd *Append) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("append")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range that identifies the table e.g. 'Sheet1!A:C'")
	flagset.StringVar(&cmd.row, "row", cmd.row, "Comma separated values for a single row e.g. 'apple,3,1.50'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the rows to append")
	flagset.StringVar(&cmd.valueInput, "value-input-option", cmd.valueInput, "RAW or USER_ENTERED")

	return flagset
}

func (cmd *Append) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if (cmd.row == "") == (cmd.file == "") {
		return fmt.Errorf("requires one of --row or --file")
	}

	option, err := valueInputOption(cmd.valueInput)
	if err != nil {
		return err
	}

	rows, err := cmd.rows()
	if err != nil {
		return err
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	h.Range = cmd.area
	h.ValueInputOption = option

	updates, err := h.Append(ctx, rows)
	if err != nil {
		return err
	}

	if updates != nil {
		infof("Appended %v rows to %v", updates.UpdatedRows, updates.UpdatedRange)
	}

	return nil
}

func (cmd *Append) rows() ([][]interface{}, error) {
	if cmd.row != "" {
		return parseRow(strings.NewReader(cmd.row))
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	data, err := table.ReadTSV(f, cmd.area)
	if err != nil {
		return nil, fmt.Errorf("invalid TSV file (%v)", err)
	}

	return data.Values, nil
}

// parseRow splits a single line of comma separated values, honouring CSV quoting.
func parseRow(r io.Reader) ([][]interface{}, error) {
	record, err := csv.NewReader(r).Read()
	if err != nil {
		return nil, fmt.Errorf("invalid --row (%v)", err)
	}

	row := make([]interface{}, len(record))
	for i, v := range record {
		row[i] = v
	}

	return [][]interface{}{row}, nil
}
