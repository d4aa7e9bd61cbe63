package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/sheets-helper/sheets-helper/column"
)

var ColumnCmd = Column{
	label: "",
	index: 0,
}

// Column is the CLI command that converts between column labels and column numbers.
type Column struct {
	label string
	index int
}

func (cmd *Column) Name() string {
	return "column"
}

func (cmd *Column) Description() string {
	return "Converts a column label to a column number, or a column number to a label"
}

func (cmd *Column) Usage() string {
	return "--label <label> | --index <number>"
}

func (cmd *Column) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s column --label <label> | --index <number>\n", APP)
	fmt.Println()
	fmt.Println("  Converts a spreadsheet column label (A, B, ..., Z, AA, ...) to its 1-based column number,")
	fmt.Println("  or a column number to its label")
	fmt.Println()

	cmd.FlagSet().VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-8s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper column --label AZ`)
	fmt.Println(`    sheets-helper column --index 104`)
	fmt.Println()
}

func (cmd *Column) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("column", flag.ExitOnError)

	flagset.StringVar(&cmd.label, "label", cmd.label, "Column label e.g. 'AZ'")
	flagset.IntVar(&cmd.index, "index", cmd.index, "1-based column number e.g. 52")

	return flagset
}

func (cmd *Column) Execute(args ...any) error {
	s, err := cmd.convert()
	if err != nil {
		return err
	}

	fmt.Println(s)

	return nil
}

func (cmd *Column) convert() (string, error) {
	label := strings.TrimSpace(cmd.label)

	switch {
	case label != "" && cmd.index != 0:
		return "", fmt.Errorf("--label and --index are mutually exclusive")

	case label != "":
		index, err := column.ToIndex(label)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%v", index), nil

	case cmd.index != 0:
		return column.ToLabel(cmd.index)

	default:
		return "", fmt.Errorf("requires one of --label or --index")
	}
}
