// Package clihelpers provides opinionated helpers for building consistent
// command-line interfaces on top of the standard flag package and logrus.
//
// The core helpers are Verbosity, a counting -v flag that selects a logrus
// level and initializes the global logger, and Timestamp, a flag value that
// accepts epoch seconds, epoch milliseconds, or the en_US output of date(1):
//
//	var opts struct {
//		verbosity clihelpers.Verbosity
//		since     clihelpers.Timestamp
//	}
//
//	flags := flag.NewFlagSet("demo", flag.ExitOnError)
//	opts.verbosity.InstallFlags(flags)
//	flags.Var(&opts.since, "since", "earliest timestamp to include")
//	flags.Parse(os.Args[1:])
//	opts.verbosity.InitLogging()
//
// The subpackages capture the surrounding conventions: command implements
// subcommand dispatch, flagval provides reusable flag values, config loads
// flag defaults from YAML files, prompt and output cover terminal
// interaction and rendering.
package clihelpers
