package clihelpers

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayout matches the default en_US output of date(1).
const timestampLayout = "Mon Jan _2 03:04:05 PM -0700 2006"

// Integer arguments below the cutoff are epoch seconds, the rest epoch
// milliseconds.
const millisCutoff = 1000000000000

// Timestamp is a flag value holding an instant in UTC. It accepts an
// integer epoch timestamp in seconds or milliseconds, or the en_US output
// format of date(1).
type Timestamp struct {
	time.Time
}

// Set parses the given argument, normalizing to UTC.
func (t *Timestamp) Set(raw string) error {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < millisCutoff {
			t.Time = time.Unix(n, 0).UTC()
		} else {
			t.Time = time.UnixMilli(n).UTC()
		}
		return nil
	}

	parsed, err := time.Parse(timestampLayout, expandZoneNames(raw))
	if err != nil {
		return InvalidTimestampError{Raw: raw}
	}

	t.Time = parsed.UTC()
	return nil
}

func (t *Timestamp) String() string {
	if t == nil || t.Time.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

// UnmarshalText lets Timestamp double as an encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	return t.Set(string(text))
}

// expandZoneNames rewrites the zone names date(1) prints in central European
// locales to numeric offsets. This is enough to support copy-paste of date
// output without carrying a zone database.
func expandZoneNames(input string) string {
	return strings.NewReplacer("CEST", "+0200", "CET", "+0100").Replace(input)
}
