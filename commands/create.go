package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/helper"
)

var CreateCmd = Create{
	command: newCommand(),

	title: "",
}

type Create struct {
	command
	title string
}

func (cmd *Create) Name() string {
	return "create"
}

func (cmd *Create) Description() string {
	return "Creates a new Google Sheets spreadsheet"
}

func (cmd *Create) Usage() string {
	return "--title <title>"
}

func (cmd *Create) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] create [options] --title <title>\n", APP)
	fmt.Println()
	fmt.Println("  Creates a new spreadsheet and prints its URL")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper create --credentials "credentials.json" --title "Stock take"`)
	fmt.Println()
}

func (cmd *Create) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("create")

	flagset.StringVar(&cmd.title, "title", cmd.title, "Title for the new spreadsheet")

	return flagset
}

func (cmd *Create) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.title) == "" {
		return fmt.Errorf("--title is a required option")
	}

	ctx := context.Background()

	google, err := cmd.service(ctx, auth.SHEETS)
	if err != nil {
		return err
	}

	id, err := helper.NewHelper(google, "").Create(ctx, cmd.title)
	if err != nil {
		return err
	}

	infof("Created spreadsheet '%v' (ID:%v)", cmd.title, id)
	fmt.Printf("https://docs.google.com/spreadsheets/d/%s\n", id)

	return nil
}
