package clihelpers

import (
	"flag"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestVerbosityCounting(t *testing.T) {
	t.Parallel()

	var verbosity Verbosity
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	verbosity.InstallFlags(flags)

	err := flags.Parse([]string{"-v", "-v", "-v"})
	assert.NoError(t, err)
	assert.Equal(t, 3, verbosity.Count())
	assert.Equal(t, log.InfoLevel, verbosity.LogLevel())
}

func TestVerbosityExplicitCount(t *testing.T) {
	t.Parallel()

	var verbosity Verbosity
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	verbosity.InstallFlags(flags)

	err := flags.Parse([]string{"-v=4"})
	assert.NoError(t, err)
	assert.Equal(t, 4, verbosity.Count())
	assert.Equal(t, log.DebugLevel, verbosity.LogLevel())
}

func TestVerbosityLongForm(t *testing.T) {
	t.Parallel()

	var verbosity Verbosity
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	verbosity.InstallFlags(flags)

	err := flags.Parse([]string{"-verbose", "-v"})
	assert.NoError(t, err)
	assert.Equal(t, 2, verbosity.Count())
	assert.Equal(t, log.WarnLevel, verbosity.LogLevel())
}

func TestVerbosityBadCount(t *testing.T) {
	t.Parallel()

	var verbosity Verbosity
	assert.Error(t, verbosity.Set("loud"))
	assert.Error(t, verbosity.Set("-1"))
}

func TestVerbosityLevels(t *testing.T) {
	t.Parallel()

	levels := map[int]log.Level{
		1: log.ErrorLevel,
		2: log.WarnLevel,
		3: log.InfoLevel,
		4: log.DebugLevel,
		5: log.TraceLevel,
		9: log.TraceLevel,
	}

	for count, exp := range levels {
		assert.Equal(t, exp, NewVerbosity(count).LogLevel())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("DEBUG")
	assert.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	level, err = ParseLevel("warn")
	assert.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)

	level, err = ParseLevel("whisper")
	assert.Error(t, err)
	assert.Equal(t, log.InfoLevel, level)
}
