package command

import (
	"flag"

	log "github.com/sirupsen/logrus"

	clihelpers "github.com/travisbrown/cli-helpers"
	"github.com/travisbrown/cli-helpers/config"
)

// CommonFlags is the flag group shared by every subcommand: verbosity, an
// explicit log level, and a flag defaults file. Subcommands embed it by
// pointer; the promoted BeforeRun hook then applies the configuration before
// the command runs.
type CommonFlags struct {
	Verbosity  clihelpers.Verbosity
	LogLevel   string
	ConfigPath string

	flags *flag.FlagSet
}

// InstallFlags sets up parsing for command line flags.
func (cf *CommonFlags) InstallFlags(flags *flag.FlagSet) {
	cf.Verbosity.InstallFlags(flags)
	flags.StringVar(&cf.LogLevel, "log-level", "",
		"level to set logger to (overrides -v)")
	flags.StringVar(&cf.ConfigPath, "config", "",
		"path to a YAML file of flag defaults")

	cf.flags = flags
}

// BeforeRun applies the flag defaults file and initializes logging.
func (cf *CommonFlags) BeforeRun() error {
	if cf.ConfigPath != "" && cf.flags != nil {
		if err := config.Apply(cf.ConfigPath, cf.flags); err != nil {
			return err
		}
	}

	return cf.InitLogging()
}

// InitLogging configures the global logrus logger. An explicit -log-level
// wins over the -v count.
func (cf *CommonFlags) InitLogging() error {
	if cf.LogLevel == "" {
		cf.Verbosity.InitLogging()
		return nil
	}

	level, err := clihelpers.ParseLevel(cf.LogLevel)
	if err != nil {
		return err
	}

	log.SetFormatter(clihelpers.Formatter{})
	log.SetLevel(level)
	return nil
}
