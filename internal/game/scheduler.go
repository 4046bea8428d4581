package game

import (
	"sort"
	"time"
)

// TriggerKind is the closed set of timed event effects the scheduler can
// release.
type TriggerKind int

const (
	// TriggerOrbEnd clears the orb-visible flag.
	TriggerOrbEnd TriggerKind = iota
	// TriggerEMFBlastEnd resets the EMF reading to zero.
	TriggerEMFBlastEnd
	// TriggerHuntEnd clears the hunting flag. Nothing schedules a hunt yet;
	// the kind is an extension point for the hunting mechanic.
	TriggerHuntEnd
	// TriggerThermometer has no state effect. It re-schedules itself so a
	// tick fires periodically even when nothing else changes.
	TriggerThermometer
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerOrbEnd:
		return "orb-end"
	case TriggerEMFBlastEnd:
		return "emf-blast-end"
	case TriggerHuntEnd:
		return "hunt-end"
	case TriggerThermometer:
		return "thermometer"
	default:
		return "unknown"
	}
}

type trigger struct {
	fireAt time.Duration
	kind   TriggerKind
}

// Scheduler holds pending event triggers ordered by fire time. Entries with
// equal fire times release in the order they were scheduled.
type Scheduler struct {
	pending []trigger
}

// Schedule adds a trigger that releases once the clock passes fireAt, an
// absolute offset from session start.
func (s *Scheduler) Schedule(fireAt time.Duration, kind TriggerKind) {
	// Insert after any entry with the same fire time to keep release order
	// stable.
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].fireAt > fireAt
	})
	s.pending = append(s.pending, trigger{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = trigger{fireAt: fireAt, kind: kind}
}

// Advance releases every trigger whose fire time has elapsed, in schedule
// order, and returns their kinds. Each trigger releases exactly once.
func (s *Scheduler) Advance(now time.Duration) []TriggerKind {
	due := 0
	for due < len(s.pending) && s.pending[due].fireAt < now {
		due++
	}
	if due == 0 {
		return nil
	}

	kinds := make([]TriggerKind, due)
	for i := 0; i < due; i++ {
		kinds[i] = s.pending[i].kind
	}
	s.pending = s.pending[due:]
	return kinds
}

// Len returns the number of pending triggers.
func (s *Scheduler) Len() int {
	return len(s.pending)
}
