package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/sheets-helper/sheets-helper/commands"
	"github.com/sheets-helper/sheets-helper/config"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.CreateCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.AppendCmd,
	&commands.UpdateCmd,
	&commands.ColourCmd,
	&commands.DuplicateCmd,
	&commands.FindCmd,
	&commands.WorksheetsCmd,
	&commands.ColumnCmd,
}

var options = commands.Options{
	Debug: false,
}

var env = config.DEFAULT_ENV

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&env, "env", env, "Settings file (.env format)")
	flag.Parse()

	conf, err := config.Load(env)
	if err != nil {
		fmt.Printf("\nError loading configuration: %v\n\n", err)
		os.Exit(1)
	}

	commands.Configure(conf)

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
