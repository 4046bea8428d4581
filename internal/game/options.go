package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Options are the static tunables of a session. They are read-only once the
// simulation is constructed.
type Options struct {
	// MoveInterval is how often the ghost takes a movement tick.
	MoveInterval time.Duration
	// StayChance is the probability an idle ghost lingers in its favorite
	// room instead of starting an excursion.
	StayChance float64

	// PulseInterval is how often the event pulse rolls for manifestations.
	PulseInterval time.Duration
	// OrbChance is the per-pulse probability an orb manifests.
	OrbChance float64
	// OrbDuration is how long a manifested orb stays visible.
	OrbDuration time.Duration
	// InteractionChance is the per-pulse probability of a ghost interaction.
	// It also gates the writing reveal when the ghost crosses the book room.
	InteractionChance float64
	// EMFBlastDuration is how long an EMF blast reads above zero.
	EMFBlastDuration time.Duration
	// ThermometerInterval paces the self-rescheduling thermometer refresh.
	ThermometerInterval time.Duration

	// SanityDrainPerSecond is the passive drain applied to every player.
	SanityDrainPerSecond float64
	// InteractionDrainNear is the extra drain for players sharing the
	// ghost's room during an interaction.
	InteractionDrainNear float64
	// InteractionDrainFar is the extra drain for everyone else.
	InteractionDrainFar float64

	// AmbientTemp is the baseline temperature at session start, in celsius.
	AmbientTemp float64
	// MinRoomTemp is the floor the ghost room decays toward.
	MinRoomTemp float64
	// TempDropPerMinute is the linear decay rate toward the floor.
	TempDropPerMinute float64
	// TempJitter is the half-width of the random band applied to each
	// externally visible temperature reading.
	TempJitter float64
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		MoveInterval: 10 * time.Second,
		StayChance:   0.5,

		PulseInterval:       5 * time.Second,
		OrbChance:           0.2,
		OrbDuration:         8 * time.Second,
		InteractionChance:   1.0,
		EMFBlastDuration:    10 * time.Second,
		ThermometerInterval: 3 * time.Second,

		SanityDrainPerSecond: 0.1,
		InteractionDrainNear: 5.0,
		InteractionDrainFar:  1.0,

		AmbientTemp:       20.0,
		MinRoomTemp:       2.0,
		TempDropPerMinute: 3.0,
		TempJitter:        1.5,
	}
}

// Validate checks the tunables are usable for a session.
func (o *Options) Validate() error {
	el := errors.NewErrorList()

	for name, d := range map[string]time.Duration{
		"move interval":        o.MoveInterval,
		"pulse interval":       o.PulseInterval,
		"orb duration":         o.OrbDuration,
		"emf blast duration":   o.EMFBlastDuration,
		"thermometer interval": o.ThermometerInterval,
	} {
		if d <= 0 {
			el.Add(fmt.Errorf("%s must be positive", name))
		}
	}

	for name, p := range map[string]float64{
		"stay chance":        o.StayChance,
		"orb chance":         o.OrbChance,
		"interaction chance": o.InteractionChance,
	} {
		if p < 0 || p > 1 {
			el.Add(fmt.Errorf("%s must be within [0,1], got %g", name, p))
		}
	}

	if o.SanityDrainPerSecond < 0 {
		el.Add(fmt.Errorf("sanity drain must not be negative"))
	}
	if o.InteractionDrainNear < 0 || o.InteractionDrainFar < 0 {
		el.Add(fmt.Errorf("interaction drain must not be negative"))
	}
	if o.MinRoomTemp > o.AmbientTemp {
		el.Add(fmt.Errorf("minimum room temperature %g exceeds ambient %g", o.MinRoomTemp, o.AmbientTemp))
	}
	if o.TempDropPerMinute < 0 {
		el.Add(fmt.Errorf("temperature drop rate must not be negative"))
	}
	if o.TempJitter < 0 {
		el.Add(fmt.Errorf("temperature jitter must not be negative"))
	}

	return el.Err()
}
