package clihelpers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	entry := &log.Entry{
		Time:    time.Date(2023, time.August, 25, 8, 47, 9, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "Applied flag defaults.",
		Data: log.Fields{
			"path":  "defaults.yaml",
			"count": 2,
		},
	}

	out, err := Formatter{}.Format(entry)
	assert.NoError(t, err)

	exp := fmt.Sprintf("INFO [Aug 25 08:47:09.000] %-40s", entry.Message) +
		" count=2 path=defaults.yaml\n"
	assert.Equal(t, exp, string(out))
}

func TestFormatNoFields(t *testing.T) {
	t.Parallel()

	entry := &log.Entry{
		Time:    time.Date(2023, time.August, 25, 8, 47, 9, 0, time.UTC),
		Level:   log.ErrorLevel,
		Message: "Unable to parse subcommand.",
	}

	out, err := Formatter{}.Format(entry)
	assert.NoError(t, err)

	str := string(out)
	assert.True(t, strings.HasPrefix(str, "ERROR [Aug 25 08:47:09.000] "))
	assert.True(t, strings.HasSuffix(str, "\n"))
	assert.NotContains(t, str, "=")
}
