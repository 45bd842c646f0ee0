package command

import (
	"flag"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/travisbrown/cli-helpers/util"
)

func TestCommonFlags(t *testing.T) {
	cf := &CommonFlags{}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	cf.InstallFlags(flags)

	err := flags.Parse([]string{"-v", "-v", "-log-level", "debug",
		"-config", "defaults.yaml"})
	assert.NoError(t, err)

	assert.Equal(t, 2, cf.Verbosity.Count())
	assert.Equal(t, "debug", cf.LogLevel)
	assert.Equal(t, "defaults.yaml", cf.ConfigPath)
}

func TestCommonFlagsBeforeRun(t *testing.T) {
	util.AppFs = afero.NewMemMapFs()
	err := util.WriteFile("defaults.yaml", []byte("namespace: staging\n"), 0644)
	assert.NoError(t, err)

	cf := &CommonFlags{}
	var namespace string

	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	cf.InstallFlags(flags)
	flags.StringVar(&namespace, "namespace", "default", "")

	assert.NoError(t, flags.Parse([]string{"-config", "defaults.yaml"}))
	assert.NoError(t, cf.BeforeRun())
	assert.Equal(t, "staging", namespace)
}

func TestCommonFlagsBeforeRunMissingConfig(t *testing.T) {
	util.AppFs = afero.NewMemMapFs()

	cf := &CommonFlags{}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	cf.InstallFlags(flags)

	assert.NoError(t, flags.Parse([]string{"-config", "missing.yaml"}))
	assert.Error(t, cf.BeforeRun())
}

func TestInitLogging(t *testing.T) {
	cf := &CommonFlags{LogLevel: "warn"}
	assert.NoError(t, cf.InitLogging())
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	cf = &CommonFlags{LogLevel: "whisper"}
	assert.Error(t, cf.InitLogging())
}
