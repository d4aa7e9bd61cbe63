package commands

import (
	"flag"
	"fmt"
)

// VERSION is the release version, formatted as v<major>.<minor>.<patch>.
const VERSION = "v0.1.0"

var VersionCmd = Version{}

type Version struct {
}

func (cmd *Version) Name() string {
	return "version"
}

func (cmd *Version) Description() string {
	return "Displays the sheets-helper version"
}

func (cmd *Version) Usage() string {
	return ""
}

func (cmd *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Printf("  Displays the %s version as v<major>.<minor>.<patch> e.g. %s\n", APP, VERSION)
	fmt.Println()
}

func (cmd *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (cmd *Version) Execute(args ...any) error {
	fmt.Println(VERSION)

	return nil
}
