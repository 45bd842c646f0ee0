package clihelpers

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Verbosity counts occurrences of the -v flag and selects the corresponding
// logrus level: one occurrence enables error logging, two warnings, three
// info, four debug, and five or more trace. A count of zero silences the
// logger entirely.
type Verbosity struct {
	count int
}

// NewVerbosity creates a Verbosity with the given count.
func NewVerbosity(count int) *Verbosity {
	return &Verbosity{count: count}
}

// InstallFlags sets up parsing for command line flags.
func (v *Verbosity) InstallFlags(flags *flag.FlagSet) {
	flags.Var(v, "v", "increase logging verbosity (may be repeated)")
	flags.Var(v, "verbose", "increase logging verbosity (may be repeated)")
}

// Set increments the count for each bare occurrence of the flag. An explicit
// integer argument sets the count directly.
func (v *Verbosity) Set(raw string) error {
	switch raw {
	case "", "true":
		v.count++
		return nil
	case "false":
		v.count = 0
		return nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return fmt.Errorf("bad verbosity: '%v'", raw)
	}
	v.count = count
	return nil
}

func (v *Verbosity) String() string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(v.count)
}

// IsBoolFlag allows the flag to appear without an argument.
func (v *Verbosity) IsBoolFlag() bool {
	return true
}

// Count returns the number of times the flag was passed.
func (v *Verbosity) Count() int {
	return v.count
}

// LogLevel returns the logrus level selected by the current count.
func (v *Verbosity) LogLevel() log.Level {
	switch v.count {
	case 0, 1:
		return log.ErrorLevel
	case 2:
		return log.WarnLevel
	case 3:
		return log.InfoLevel
	case 4:
		return log.DebugLevel
	}
	return log.TraceLevel
}

// InitLogging configures the global logrus logger with the selected level
// and the clihelpers Formatter. A count of zero discards all output.
func (v *Verbosity) InitLogging() {
	log.SetFormatter(Formatter{})
	log.SetLevel(v.LogLevel())

	if v.count == 0 {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
}

// ParseLevel returns the log.Level type corresponding to the given string
// (case insensitive).
// If no such matching string is found, it returns log.InfoLevel (default) and
// an error.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	case "panic":
		return log.PanicLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("bad log level: '%v'", level)
}
