// Package output implements the rendering conventions for command line
// tools: aligned tables, colorized diffs, human readable quantities, and
// debug dumps.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	units "github.com/docker/go-units"
)

// Table writes rows under header as aligned columns.
func Table(fd io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(fd, 0, 0, 4, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

// HumanDuration formats the time elapsed since t, e.g. "2 hours".
func HumanDuration(t time.Time) string {
	return units.HumanDuration(time.Since(t))
}

// HumanSize formats a byte count with a human readable unit, e.g. "1.5GB".
func HumanSize(bytes int64) string {
	return units.HumanSize(float64(bytes))
}
