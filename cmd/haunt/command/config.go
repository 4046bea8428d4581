package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-haunt/internal/driver"
)

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Listeners    []ListenerConfig `json:"listeners"`
	Nats         NatsConfig       `json:"nats"`
	Sim          SimConfig        `json:"sim"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < 5*time.Millisecond || d > time.Second {
			el.Add(fmt.Errorf("tick_interval must be between 5ms and 1s"))
		}
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		if err := l.validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Nats.validate())
	el.Add(c.Sim.validate())

	return el.Err()
}

// tickLength returns the configured fixed timestep, defaulting to the
// driver's ~30 Hz cadence.
func (c *Config) tickLength() time.Duration {
	if c.TickInterval == "" {
		return driver.DefaultTickLength
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		// Validate already rejected this config.
		return driver.DefaultTickLength
	}
	return d
}
