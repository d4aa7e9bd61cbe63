package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/table"
)

var GetCmd = Get{
	command: newCommand(),

	area: "",
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a range from a Google Sheets worksheet and stores it to a local TSV or xlsx file"
}

func (cmd *Get) Usage() string {
	return "--url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet range to a TSV file (or an xlsx file if the file")
	fmt.Println("  has a .xlsx extension)")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper --debug get --credentials "credentials.json" \`)
	fmt.Println(`                              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --range "Sheet1!A1:E" \`)
	fmt.Println(`                              --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Sheet1!A1:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV or xlsx file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	ctx := context.Background()

	h, err := cmd.connect(ctx, auth.SHEETS_READONLY)
	if err != nil {
		return err
	}

	h.Range = cmd.area

	rows, err := h.Get(ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	if cmd.debug {
		debugf("retrieved %v rows from %s", len(rows), cmd.area)
	}

	data := sheets.ValueRange{
		Range:  cmd.area,
		Values: rows,
	}

	if err := cmd.save(&data); err != nil {
		return err
	}

	infof("Retrieved %s to file %s", cmd.area, cmd.file)

	return nil
}

// save writes the data to a temporary file and then renames it, so that a failed
// download never leaves a partial file behind.
func (cmd *Get) save(data *sheets.ValueRange) error {
	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+APP+"-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if strings.EqualFold(filepath.Ext(cmd.file), ".xlsx") {
		if err := table.WriteXLSX(tmp, worksheet(cmd.area), data); err != nil {
			return fmt.Errorf("error creating xlsx file (%v)", err)
		}
	} else if err := table.WriteTSV(tmp, data); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	return os.Rename(tmp.Name(), cmd.file)
}
