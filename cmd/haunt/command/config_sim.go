package command

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-haunt/internal/game"
	"github.com/pixil98/go-haunt/internal/house"
)

// SimConfig tunes one session. Every field is optional; absent fields keep
// the reference defaults.
type SimConfig struct {
	// Seed makes the whole session reproducible. Zero or absent seeds from
	// the clock.
	Seed *int64 `json:"seed,omitempty"`
	// TopologyPath points at a JSON room list replacing the built-in house.
	TopologyPath string `json:"topology_path,omitempty"`

	MoveInterval      string   `json:"move_interval,omitempty"`
	StayChance        *float64 `json:"stay_chance,omitempty"`
	PulseInterval     string   `json:"pulse_interval,omitempty"`
	OrbChance         *float64 `json:"orb_chance,omitempty"`
	InteractionChance *float64 `json:"interaction_chance,omitempty"`
	SanityDrain       *float64 `json:"sanity_drain_per_second,omitempty"`
	AmbientTemp       *float64 `json:"ambient_temp,omitempty"`
}

func (c *SimConfig) validate() error {
	el := errors.NewErrorList()

	for name, value := range map[string]string{
		"move_interval":  c.MoveInterval,
		"pulse_interval": c.PulseInterval,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			el.Add(fmt.Errorf("parsing %s: %w", name, err))
		}
	}

	if c.TopologyPath != "" {
		if _, err := os.Stat(c.TopologyPath); err != nil {
			el.Add(fmt.Errorf("invalid topology_path %q: %w", c.TopologyPath, err))
		}
	}

	// Ranges are checked by game.Options.Validate at build time.
	return el.Err()
}

func (c *SimConfig) BuildSimulation() (*game.Simulation, error) {
	m, err := c.buildMap()
	if err != nil {
		return nil, fmt.Errorf("building topology: %w", err)
	}

	opts := game.DefaultOptions()
	if c.MoveInterval != "" {
		opts.MoveInterval, _ = time.ParseDuration(c.MoveInterval)
	}
	if c.PulseInterval != "" {
		opts.PulseInterval, _ = time.ParseDuration(c.PulseInterval)
	}
	if c.StayChance != nil {
		opts.StayChance = *c.StayChance
	}
	if c.OrbChance != nil {
		opts.OrbChance = *c.OrbChance
	}
	if c.InteractionChance != nil {
		opts.InteractionChance = *c.InteractionChance
	}
	if c.SanityDrain != nil {
		opts.SanityDrainPerSecond = *c.SanityDrain
	}
	if c.AmbientTemp != nil {
		opts.AmbientTemp = *c.AmbientTemp
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil && *c.Seed != 0 {
		seed = *c.Seed
	}

	sim, err := game.NewSimulation(m, opts, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	return sim, nil
}

func (c *SimConfig) buildMap() (*house.Map, error) {
	if c.TopologyPath == "" {
		return house.DefaultMap(), nil
	}

	data, err := os.ReadFile(c.TopologyPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.TopologyPath, err)
	}

	var rooms []house.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", c.TopologyPath, err)
	}

	return house.NewMap(rooms)
}
