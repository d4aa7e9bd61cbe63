package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sheets-helper/sheets-helper/auth"
)

var AuthoriseCmd = Authorise{
	command:  newCommand(),
	readonly: false,
}

type Authorise struct {
	command
	readonly bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheets-helper to access Google Sheets on your behalf"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises sheets-helper to access Google Sheets and saves the issued OAuth2 tokens to")
	fmt.Println("  the tokens file. Open the displayed link in a browser, grant access and paste the")
	fmt.Println("  verification code at the prompt.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-helper authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Path for the OAuth2 tokens file. Defaults to <workdir>/.google/<credentials>.sheets")
	flagset.BoolVar(&cmd.readonly, "read-only", cmd.readonly, "Requests read-only access to spreadsheets")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	scope := auth.SHEETS
	if cmd.readonly {
		scope = auth.SHEETS_READONLY
	}

	if cmd.debug {
		debugf("credentials:%s  tokens:%s  scope:%s", cmd.credentials, cmd.tokenFile(), scope)
	}

	if err := auth.Authorise(context.Background(), cmd.credentials, cmd.tokenFile(), scope, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Authorised %s", APP)

	return nil
}
