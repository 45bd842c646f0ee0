// Package command implements the subcommand conventions for command line
// tools: a SubCommand interface, a named dispatch table, response file
// expansion, and the flag groups every command shares.
package command

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/travisbrown/cli-helpers/util"
)

// SubCommand defines the conversion between the user CLI flags and
// functionality within the code.
type SubCommand interface {
	// InstallFlags sets up parsing for command line flags.
	InstallFlags(*flag.FlagSet)

	// The function to run once the flags have been parsed. The return value
	// is the exit code.
	Run() int

	// Give the non-flag command line arguments to the subcommand so that it
	// can parse it for later execution.
	Parse(args []string) error
}

// beforeRunner is implemented by subcommands that need setup after flag
// parsing and before Run, such as applying config defaults or opening
// connections.
type beforeRunner interface {
	BeforeRun() error
}

// afterRunner is implemented by subcommands that need teardown after Run.
type afterRunner interface {
	AfterRun() error
}

// Set maps subcommand names to their implementations.
type Set map[string]SubCommand

// Has returns true if the set has a subcommand for the given name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Run parses and runs the subcommand given the command line arguments,
// returning its exit code.
func (s Set) Run(args []string) int {
	if len(args) == 0 {
		log.Error("No subcommand given.")
		return 1
	}

	cmd, err := s.parse(args[0], args[1:])
	if err != nil {
		log.WithError(err).Error("Unable to parse subcommand.")
		return 1
	}

	return run(cmd)
}

func (s Set) parse(name string, args []string) (SubCommand, error) {
	if !s.Has(name) {
		return nil, fmt.Errorf("unrecognized subcommand: %s", name)
	}

	args, err := ExpandArgs(args)
	if err != nil {
		return nil, err
	}

	cmd := s[name]
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	cmd.InstallFlags(flags)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := cmd.Parse(flags.Args()); err != nil {
		flags.Usage()
		return nil, err
	}

	return cmd, nil
}

func run(cmd SubCommand) int {
	if br, ok := cmd.(beforeRunner); ok {
		if err := br.BeforeRun(); err != nil {
			log.Error(err)
			return 1
		}
	}

	code := cmd.Run()

	if ar, ok := cmd.(afterRunner); ok {
		if err := ar.AfterRun(); err != nil {
			log.Error(err)
			return 1
		}
	}

	return code
}

// ExpandArgs replaces each @file argument with the arguments read from the
// referenced response file. Expansion is not recursive.
func ExpandArgs(args []string) ([]string, error) {
	var expanded []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") {
			expanded = append(expanded, arg)
			continue
		}

		fileArgs, err := util.ReadArgsFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, fileArgs...)
	}
	return expanded, nil
}
