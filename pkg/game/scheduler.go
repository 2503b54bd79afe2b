package game

import (
	"time"

	"github.com/cbodonnell/tilerunner/pkg/game/constants"
)

// Scheduler converts wall-clock time into a fixed-rate physics tick count,
// decoupling the simulation rate from the rendering framerate. Ticks owed
// after a slow frame are reported all at once so the simulation catches up
// instead of slowing down.
type Scheduler struct {
	start    time.Time
	lastTick int64
}

// NewScheduler returns a scheduler with its tick counter anchored at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{start: start}
}

// Due returns the number of physics ticks owed since the previous call.
// Every tick is reported exactly once: a fast frame may owe zero ticks and
// a slow frame several, but none are skipped or double-counted.
func (s *Scheduler) Due(now time.Time) int {
	tick := int64(now.Sub(s.start).Seconds() * float64(constants.TickRate))
	if tick < s.lastTick {
		tick = s.lastTick
	}
	due := int(tick - s.lastTick)
	s.lastTick = tick
	return due
}
