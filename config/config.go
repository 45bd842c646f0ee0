// Package config loads flag defaults from YAML files.
//
// A defaults file is a flat mapping of flag names to values:
//
//	log-level: debug
//	namespace: staging
//	timeout: 30s
//
// Values from the file never override flags the user passed on the command
// line.
package config

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/travisbrown/cli-helpers/util"
)

// Apply reads a YAML mapping of flag names to values from path and sets
// every flag the user did not pass on the command line. The flag set must
// already be parsed.
func Apply(path string, flags *flag.FlagSet) error {
	path = util.ExpandHome(path)

	contents, err := util.ReadFile(path)
	if err != nil {
		return err
	}

	defaults := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(contents), &defaults); err != nil {
		return fmt.Errorf("unable to parse %s: %s", path, err)
	}

	passed := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		passed[f.Name] = true
	})

	applied := 0
	for name, value := range defaults {
		if passed[name] {
			continue
		}

		if flags.Lookup(name) == nil {
			return fmt.Errorf("unknown flag in %s: %s", path, name)
		}

		if err := flags.Set(name, fmt.Sprintf("%v", value)); err != nil {
			return fmt.Errorf("bad value for %s in %s: %s", name, path, err)
		}
		applied++
	}

	log.WithFields(log.Fields{
		"path":  path,
		"count": applied,
	}).Debug("Applied flag defaults.")
	return nil
}

// ApplyIfExists behaves like Apply, except that a missing file is not an
// error. It supports tools with a conventional defaults path that may or may
// not be present.
func ApplyIfExists(path string, flags *flag.FlagSet) error {
	exists, err := util.FileExists(util.ExpandHome(path))
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return Apply(path, flags)
}
