// Package flagval provides reusable flag.Value implementations for common
// command line argument shapes.
package flagval

import (
	"fmt"
	"sort"
	"strings"
	"time"

	units "github.com/docker/go-units"
)

// List collects repeated or comma-separated string arguments.
type List []string

func (l *List) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends the given values, splitting on commas.
func (l *List) Set(raw string) error {
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			*l = append(*l, value)
		}
	}
	return nil
}

// KeyValue collects repeated key=value arguments into a map.
type KeyValue map[string]string

func (kv *KeyValue) String() string {
	if kv == nil || *kv == nil {
		return ""
	}

	var pairs []string
	for k, v := range *kv {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set stores the given pair. Later pairs win over earlier ones with the same
// key.
func (kv *KeyValue) Set(raw string) error {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return fmt.Errorf("bad key=value pair: '%v'", raw)
	}

	if *kv == nil {
		*kv = KeyValue{}
	}
	(*kv)[parts[0]] = parts[1]
	return nil
}

// Size is a byte count parsed from human readable strings such as 512MB or
// 2GB, using binary units.
type Size int64

func (s *Size) String() string {
	if s == nil {
		return ""
	}
	return units.BytesSize(float64(*s))
}

func (s *Size) Set(raw string) error {
	bytes, err := units.RAMInBytes(raw)
	if err != nil {
		return fmt.Errorf("bad size: '%v'", raw)
	}
	*s = Size(bytes)
	return nil
}

// Bytes returns the size as a plain byte count.
func (s Size) Bytes() int64 {
	return int64(s)
}

// Duration parses time.ParseDuration syntax, e.g. 30s or 1h15m.
type Duration time.Duration

func (d *Duration) String() string {
	if d == nil {
		return ""
	}
	return time.Duration(*d).String()
}

func (d *Duration) Set(raw string) error {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("bad duration: '%v'", raw)
	}
	*d = Duration(parsed)
	return nil
}
