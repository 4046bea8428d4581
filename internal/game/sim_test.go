package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pixil98/go-haunt/internal/house"
	"github.com/pixil98/go-testutil"
)

// quietOptions returns tunables where nothing periodic ever fires, so a test
// can enable one mechanism at a time.
func quietOptions() Options {
	opts := DefaultOptions()
	opts.MoveInterval = time.Hour
	opts.PulseInterval = time.Hour
	opts.ThermometerInterval = time.Hour
	return opts
}

// newTestSim builds a deterministic simulation: a spirit starting in the
// entry hall with its favorite room in the garage and the journal in the
// dining room.
func newTestSim(t *testing.T, opts Options) *Simulation {
	t.Helper()

	s := &Simulation{
		opts:  opts,
		house: house.DefaultMap(),
		ghost: NewGhost(GhostSpirit, 0, 7),
		rng:   rand.New(rand.NewSource(42)),
	}
	s.flags.BookRoom = 3
	s.sched.Schedule(opts.ThermometerInterval, TriggerThermometer)
	return s
}

func TestUpdateBeforeStartIsInert(t *testing.T) {
	s := newTestSim(t, quietOptions())
	if err := s.AddPlayer("10.0.0.1:4000", "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}

	testutil.AssertEqual(t, "changed", s.Update(time.Second), false)
	testutil.AssertEqual(t, "sanity", s.roster.Get("alice").Sanity, FullSanity)
	testutil.AssertEqual(t, "elapsed", s.elapsed, time.Duration(0))
}

func TestSanityDrainAloneDoesNotMarkChanged(t *testing.T) {
	s := newTestSim(t, quietOptions())
	_ = s.AddPlayer("10.0.0.1:4000", "alice")
	s.Start()

	changed := s.Update(time.Second)

	// The tick drained sanity but that alone is not broadcast-worthy.
	testutil.AssertEqual(t, "changed", changed, false)
	testutil.AssertEqual(t, "sanity", s.roster.Get("alice").Sanity, FullSanity-s.opts.SanityDrainPerSecond)
}

func TestSanityStaysWithinBounds(t *testing.T) {
	opts := quietOptions()
	opts.SanityDrainPerSecond = 10
	s := newTestSim(t, opts)
	_ = s.AddPlayer("10.0.0.1:4000", "alice")
	s.Start()

	for i := 0; i < 100; i++ {
		s.Update(time.Second)
		sanity := s.roster.Get("alice").Sanity
		if sanity < 0 || sanity > FullSanity {
			t.Fatalf("sanity %g out of bounds after tick %d", sanity, i)
		}
	}
	testutil.AssertEqual(t, "floored", s.roster.Get("alice").Sanity, 0.0)
}

func TestGhostReachesFavoriteThroughUpdate(t *testing.T) {
	opts := quietOptions()
	opts.MoveInterval = time.Second
	opts.StayChance = 0

	s := newTestSim(t, opts)
	s.house = linearHouse(t)
	s.ghost = NewGhost(GhostSpirit, 0, 2)
	s.Start()

	testutil.AssertEqual(t, "tick 1 changed", s.Update(time.Second), true)
	testutil.AssertEqual(t, "tick 1 room", s.ghost.Current, house.RoomLabel(1))

	testutil.AssertEqual(t, "tick 2 changed", s.Update(time.Second), true)
	testutil.AssertEqual(t, "tick 2 room", s.ghost.Current, house.RoomLabel(2))
}

func TestInteractionDrainsByProximity(t *testing.T) {
	opts := quietOptions()
	opts.PulseInterval = time.Second
	opts.InteractionChance = 1
	opts.OrbChance = 0
	opts.SanityDrainPerSecond = 0

	s := newTestSim(t, opts)
	_ = s.AddPlayer("10.0.0.1:4000", "near")
	_ = s.AddPlayer("10.0.0.2:4000", "far")
	_ = s.AddPlayer("10.0.0.3:4000", "lost")
	s.roster.SetLocation("near", s.ghost.Current)
	s.roster.SetLocation("far", 13)
	s.Start()

	testutil.AssertEqual(t, "changed", s.Update(time.Second), true)

	testutil.AssertEqual(t, "near", s.roster.Get("near").Sanity, FullSanity-opts.InteractionDrainNear)
	testutil.AssertEqual(t, "far", s.roster.Get("far").Sanity, FullSanity-opts.InteractionDrainFar)
	// A player who never reported a location counts as elsewhere.
	testutil.AssertEqual(t, "lost", s.roster.Get("lost").Sanity, FullSanity-opts.InteractionDrainFar)

	if len(s.notifications) != 1 {
		t.Fatalf("expected one notification, got %v", s.notifications)
	}
	testutil.AssertEqual(t, "emf active", s.flags.EMFLevel > 0, true)
}

func TestOrbLifecycle(t *testing.T) {
	opts := quietOptions()
	opts.PulseInterval = time.Second
	opts.OrbChance = 1
	opts.OrbDuration = 2 * time.Second
	opts.InteractionChance = 0

	s := newTestSim(t, opts)
	s.ghost.Type = GhostMare // produces ghost orbs
	s.Start()

	s.Update(time.Second)
	testutil.AssertEqual(t, "orb visible", s.flags.OrbVisible, true)
	testutil.AssertEqual(t, "expiry pending", s.sched.Len() > 0, true)

	// Visible through the scheduled duration, cleared on the tick after it
	// elapses.
	s.Update(time.Second)
	testutil.AssertEqual(t, "still visible", s.flags.OrbVisible, true)
	s.Update(time.Second)
	testutil.AssertEqual(t, "visible at expiry boundary", s.flags.OrbVisible, true)
	s.Update(time.Second)
	testutil.AssertEqual(t, "cleared", s.flags.OrbVisible, false)
}

func TestThermometerKeepsTicking(t *testing.T) {
	opts := quietOptions()
	opts.ThermometerInterval = time.Second

	s := newTestSim(t, opts)
	s.Start()

	// With every other mechanism quiet, a changed tick means the thermometer
	// fired. Three refresh intervals fit in five seconds of half-second
	// ticks (fire times are strict inequalities).
	fired := 0
	for i := 0; i < 10; i++ {
		if s.Update(500 * time.Millisecond) {
			fired++
		}
	}
	testutil.AssertEqual(t, "thermometer fires", fired, 3)
	testutil.AssertEqual(t, "still pending", s.sched.Len(), 1)
}

func TestWritingRevealPersists(t *testing.T) {
	opts := quietOptions()
	opts.MoveInterval = time.Second
	opts.StayChance = 0
	opts.InteractionChance = 1

	s := newTestSim(t, opts)
	s.house = linearHouse(t)
	s.ghost = NewGhost(GhostSpirit, 0, 2) // spirits produce writing
	s.flags.BookRoom = 1
	s.Start()

	s.Update(time.Second)
	testutil.AssertEqual(t, "revealed in book room", s.flags.WritingVisible, true)

	// The flag persists once set.
	for i := 0; i < 10; i++ {
		s.Update(time.Second)
	}
	testutil.AssertEqual(t, "still revealed", s.flags.WritingVisible, true)
}

func TestWritingNeedsCapability(t *testing.T) {
	opts := quietOptions()
	opts.MoveInterval = time.Second
	opts.StayChance = 0
	opts.InteractionChance = 1

	s := newTestSim(t, opts)
	s.house = linearHouse(t)
	s.ghost = NewGhost(GhostHantu, 0, 2) // hantu cannot write
	s.flags.BookRoom = 1
	s.Start()

	for i := 0; i < 10; i++ {
		s.Update(time.Second)
	}
	testutil.AssertEqual(t, "never revealed", s.flags.WritingVisible, false)
}

func TestStartIsIdempotent(t *testing.T) {
	s := newTestSim(t, quietOptions())
	_ = s.AddPlayer("10.0.0.1:4000", "alice")

	update := s.Snapshot()
	if update.Lobby == nil || update.Sim != nil {
		t.Fatal("expected lobby snapshot before start")
	}
	testutil.AssertEqual(t, "lobby players", len(update.Lobby.Players), 1)

	s.Start()
	s.Start()
	testutil.AssertEqual(t, "started", s.Started(), true)

	update = s.Snapshot()
	if update.Sim == nil || update.Lobby != nil {
		t.Fatal("expected sim snapshot after start")
	}
	testutil.AssertEqual(t, "player count", len(update.Sim.Players), 1)
	testutil.AssertEqual(t, "ghost room", update.Sim.GhostRoom, house.RoomLabel(0))
	testutil.AssertEqual(t, "favorite room", update.Sim.FavoriteRoom, house.RoomLabel(7))
}

func TestNotificationsClearedByAck(t *testing.T) {
	s := newTestSim(t, quietOptions())
	s.Start()
	s.notify("the lights flicker")

	update := s.Snapshot()
	testutil.AssertEqual(t, "pending", len(update.Sim.Notifications), 1)

	s.ClearNotifications()
	update = s.Snapshot()
	testutil.AssertEqual(t, "acked", len(update.Sim.Notifications), 0)
}

func TestNewSimulationRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.StayChance = 1.5

	_, err := NewSimulation(house.DefaultMap(), opts, rand.New(rand.NewSource(1)))
	testutil.AssertErrorContains(t, err, "stay chance")
}

func TestNewSimulationSeedsSession(t *testing.T) {
	m := house.DefaultMap()
	s, err := NewSimulation(m, DefaultOptions(), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	testutil.AssertEqual(t, "ghost starts at the entry", s.ghost.Current, house.RoomLabel(0))
	if s.ghost.Favorite == 0 {
		t.Error("favorite room should not be the entry hall")
	}
	testutil.AssertEqual(t, "book room in map", m.Contains(s.flags.BookRoom), true)
	testutil.AssertEqual(t, "thermometer scheduled", s.sched.Len(), 1)
}
