package clihelpers

import (
	"fmt"
)

// InvalidTimestampError represents a timestamp argument that is neither an
// epoch value nor date(1) output.
type InvalidTimestampError struct {
	Raw string
}

func (err InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp format: %q", err.Raw)
}
