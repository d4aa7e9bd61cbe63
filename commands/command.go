package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheets-helper/sheets-helper/a1"
	"github.com/sheets-helper/sheets-helper/auth"
	"github.com/sheets-helper/sheets-helper/config"
	"github.com/sheets-helper/sheets-helper/helper"
)

const APP = "sheets-helper"

type Options struct {
	Debug bool
}

// command holds the options common to every command that accesses a spreadsheet.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	valueInput  string
	debug       bool
}

type configurable interface {
	configure(*config.Config)
}

var urlRE = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var idRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func newCommand() command {
	return command{
		workdir:     config.DEFAULT_WORKDIR,
		credentials: config.DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		valueInput:  helper.RAW,
		debug:       false,
	}
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the OAuth2 tokens file. Defaults to <workdir>/.google/<credentials>.sheets")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL or ID")

	return flagset
}

// configure replaces the built-in defaults with the values loaded from the .env file and
// environment. Must be invoked before the command line is parsed.
func (c *command) configure(conf *config.Config) {
	if conf == nil {
		return
	}

	c.workdir = conf.Workdir
	c.credentials = conf.Credentials
	c.tokens = conf.Tokens
	c.valueInput = conf.ValueInputOption

	if conf.Spreadsheet != "" {
		c.url = conf.Spreadsheet
	}
}

func (c *command) tokenFile() string {
	conf := config.Config{
		Workdir:     c.workdir,
		Credentials: c.credentials,
		Tokens:      strings.TrimSpace(c.tokens),
	}

	return conf.TokenFile()
}

func (c *command) validate() error {
	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	return nil
}

// connect authorises the Sheets client and returns a helper for the spreadsheet.
func (c *command) connect(ctx context.Context, scope string) (*helper.Helper, error) {
	spreadsheet, err := spreadsheetID(c.url)
	if err != nil {
		return nil, err
	}

	if c.debug {
		debugf("spreadsheet:%s", spreadsheet)
	}

	google, err := c.service(ctx, scope)
	if err != nil {
		return nil, err
	}

	return helper.NewHelper(google, spreadsheet), nil
}

func (c *command) service(ctx context.Context, scope string) (*sheets.Service, error) {
	if c.debug {
		debugf("credentials:%s  tokens:%s", c.credentials, c.tokenFile())
	}

	client, err := auth.Authorize(ctx, c.credentials, c.tokenFile(), scope)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return google, nil
}

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL. A bare ID is
// returned as is.
func spreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)

	if match := urlRE.FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if idRE.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
}

// worksheet returns the worksheet named in an A1 range, defaulting to 'Sheet1'.
func worksheet(area string) string {
	if r, err := a1.Parse(area); err == nil && r.Sheet != "" {
		return r.Sheet
	}

	return "Sheet1"
}

func valueInputOption(v string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "", helper.RAW:
		return helper.RAW, nil

	case helper.USER_ENTERED:
		return helper.USER_ENTERED, nil

	default:
		return "", fmt.Errorf("invalid --value-input-option '%s' - expected RAW or USER_ENTERED", v)
	}
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-20s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
