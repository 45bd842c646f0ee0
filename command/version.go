package command

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/travisbrown/cli-helpers/version"
)

// Version prints the tool version information.
type Version struct {
	out io.Writer
}

// NewVersionCommand creates a new Version command instance.
func NewVersionCommand() *Version {
	return &Version{out: os.Stdout}
}

var versionUsage = `usage: <tool> version
Show the version information.`

// InstallFlags sets up parsing for command line flags.
func (vCmd *Version) InstallFlags(flags *flag.FlagSet) {
	flags.Usage = func() {
		fmt.Println(versionUsage)
	}
}

// Parse parses the command line arguments for the version command.
func (vCmd *Version) Parse(args []string) error {
	return nil
}

// Run prints the version information.
func (vCmd *Version) Run() int {
	fmt.Fprintln(vCmd.out, version.Version)
	return 0
}
