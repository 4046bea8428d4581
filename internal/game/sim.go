package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pixil98/go-haunt/internal/house"
)

// Flags is the derived environmental and behavioral state of a session. The
// tick algorithm is the only writer after construction.
type Flags struct {
	OrbVisible     bool
	WritingVisible bool
	BookRoom       house.RoomLabel
	EMFLevel       int
	Hunting        bool
}

// Simulation is the authoritative state of one haunted location. All access
// goes through its methods, which serialize on a single lock; movement,
// scheduling, and snapshotting all read overlapping state, so nothing finer
// grained would be safe.
type Simulation struct {
	mu sync.Mutex

	opts   Options
	house  *house.Map
	ghost  *Ghost
	roster Roster
	sched  Scheduler
	flags  Flags
	rng    *rand.Rand

	started   bool
	elapsed   time.Duration
	lastMove  time.Duration
	lastPulse time.Duration

	notifications []string
}

// NewSimulation creates a session over the given topology. The ghost variant,
// its favorite room, and the book location are drawn from rng, which is also
// the only source of randomness for the rest of the session; seeding it makes
// a run reproducible.
func NewSimulation(m *house.Map, opts Options, rng *rand.Rand) (*Simulation, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}
	if m.NumRooms() < 2 {
		return nil, fmt.Errorf("topology needs at least two rooms, got %d", m.NumRooms())
	}

	start := house.RoomLabel(0)
	favorite := house.RoomLabel(1 + rng.Intn(m.NumRooms()-1))

	s := &Simulation{
		opts:  opts,
		house: m,
		ghost: NewGhost(RandomGhostType(rng), start, favorite),
		rng:   rng,
	}
	s.flags.BookRoom = house.RoomLabel(rng.Intn(m.NumRooms()))
	s.sched.Schedule(opts.ThermometerInterval, TriggerThermometer)

	return s, nil
}

// Start moves the session out of the lobby. It is idempotent; only the first
// call has any effect.
func (s *Simulation) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.started = true
		slog.Info("session started",
			"ghost", s.ghost.Type.String(),
			"favorite_room", int(s.ghost.Favorite),
			"players", s.roster.Len())
	}
}

// Started reports whether the session has left the lobby.
func (s *Simulation) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// AddPlayer registers a new investigator. A repeated identity or display
// name rejects the join without mutating the roster.
func (s *Simulation) AddPlayer(identity, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Add(identity, name)
}

// SetPlayerLocation records a player's self-reported room. Unknown names are
// silently ignored; the report is trusted as-is.
func (s *Simulation) SetPlayerLocation(name string, room house.RoomLabel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster.SetLocation(name, room)
}

// Update advances the session by one fixed timestep and reports whether
// anything broadcast-worthy happened. Passive sanity drain alone does not
// count; only movement ticks, event pulses, and released triggers mark the
// tick changed.
func (s *Simulation) Update(dt time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return false
	}

	s.elapsed += dt
	s.roster.Drain(s.opts.SanityDrainPerSecond * dt.Seconds())

	changed := false
	if s.elapsed-s.lastMove >= s.opts.MoveInterval {
		s.moveGhost()
		s.lastMove = s.elapsed
		changed = true
	}
	if s.elapsed-s.lastPulse >= s.opts.PulseInterval {
		s.pulse()
		s.lastPulse = s.elapsed
		changed = true
	}
	for _, kind := range s.sched.Advance(s.elapsed) {
		s.applyTrigger(kind)
		changed = true
	}

	return changed
}

// moveGhost runs one movement tick and the book-room side channel: a ghost
// crossing the book location may reveal a writing manifestation that then
// persists for the rest of the session.
func (s *Simulation) moveGhost() {
	moved, err := s.ghost.Advance(s.house, s.rng, s.opts.StayChance)
	if err != nil {
		// Unreachable on a validated map.
		slog.Error("ghost movement failed", "error", err)
		return
	}
	if !moved {
		return
	}

	if s.ghost.Current == s.flags.BookRoom && !s.flags.WritingVisible &&
		s.ghost.Type.HasEvidence(EvidenceWriting) && s.roll(s.opts.InteractionChance) {
		s.flags.WritingVisible = true
		s.notify("Fresh handwriting has appeared in the journal in the %s.", s.roomName(s.flags.BookRoom))
	}
}

// pulse runs the periodic manifestation checks.
func (s *Simulation) pulse() {
	if !s.flags.OrbVisible && s.ghost.Type.HasEvidence(EvidenceGhostOrbs) && s.roll(s.opts.OrbChance) {
		s.flags.OrbVisible = true
		s.sched.Schedule(s.elapsed+s.opts.OrbDuration, TriggerOrbEnd)
	}

	if s.roll(s.opts.InteractionChance) {
		s.interact()
	}
}

// interact performs one ghost interaction: a symbolic manifestation, an
// extra sanity penalty weighted by proximity, and an EMF blast.
func (s *Simulation) interact() {
	kinds := []string{
		"a low moan echoes through the walls",
		"the lights flicker",
	}
	if s.ghost.Type.HasEvidence(EvidenceWriting) {
		kinds = append(kinds, "frantic scratching comes from the journal")
	}
	desc := kinds[s.rng.Intn(len(kinds))]

	for _, p := range s.roster.Players() {
		if p.InRoom(s.ghost.Current) {
			p.Drain(s.opts.InteractionDrainNear)
		} else {
			p.Drain(s.opts.InteractionDrainFar)
		}
	}

	s.emfBlast()
	s.notify("Near the %s, %s.", s.roomName(s.ghost.Current), desc)
}

func (s *Simulation) applyTrigger(kind TriggerKind) {
	switch kind {
	case TriggerOrbEnd:
		s.flags.OrbVisible = false
	case TriggerEMFBlastEnd:
		s.flags.EMFLevel = 0
	case TriggerHuntEnd:
		s.flags.Hunting = false
	case TriggerThermometer:
		s.sched.Schedule(s.elapsed+s.opts.ThermometerInterval, TriggerThermometer)
	}
}

// ClearNotifications acknowledges delivery of the pending notification list.
// The broadcast path calls it after a successful send so each interaction
// message is delivered at most once.
func (s *Simulation) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

func (s *Simulation) notify(format string, args ...any) {
	s.notifications = append(s.notifications, fmt.Sprintf(format, args...))
}

func (s *Simulation) roll(chance float64) bool {
	return s.rng.Float64() < chance
}

func (s *Simulation) roomName(label house.RoomLabel) string {
	if name := s.house.Name(label); name != "" {
		return name
	}
	return fmt.Sprintf("room %d", label)
}
