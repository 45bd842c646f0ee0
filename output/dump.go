package output

import (
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

var dumpConfig = spew.ConfigState{
	Indent:   "  ",
	SortKeys: true,
}

// Sdump returns a verbose, human readable representation of its arguments
// for debug output.
func Sdump(v ...interface{}) string {
	return dumpConfig.Sdump(v...)
}

// LogDump writes the dump of v to the debug log under the given label.
// Nothing is rendered unless debug logging is enabled.
func LogDump(label string, v interface{}) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	log.WithField("dump", dumpConfig.Sdump(v)).Debug(label)
}
