package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// PhaseTimer times named phases of a command so that verbose runs show where
// the time went.
type PhaseTimer struct {
	phaseName string
	start     time.Time
}

// StartPhase creates a PhaseTimer and logs the start of the phase.
func StartPhase(phaseName string) *PhaseTimer {
	log.Debugf("Starting %s.", phaseName)
	return &PhaseTimer{
		phaseName: phaseName,
		start:     time.Now(),
	}
}

// Done logs the end of the phase and how long it took.
func (pt *PhaseTimer) Done() {
	log.Debugf("%s took %v.", pt.phaseName, time.Since(pt.start))
}
