package driver

import (
	"context"
	"time"
)

const (
	// DefaultTickLength targets the ~30 Hz cadence the simulation is tuned
	// for.
	DefaultTickLength = 33 * time.Millisecond
)

// Manager is anything advanced by the fixed-timestep clock.
type Manager interface {
	Tick(context.Context) error
}

// HauntDriver runs every registered manager on a fixed cadence. It is the
// only execution context that advances the simulation clock.
type HauntDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewHauntDriver(managers []Manager, opts ...HauntDriverOpt) *HauntDriver {
	d := &HauntDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// TickLength returns the fixed timestep the driver runs at.
func (d *HauntDriver) TickLength() time.Duration {
	return d.tickLength
}

// Start runs the tick loop until the context is canceled. A manager error
// stops the loop; the simulation cannot limp along with a partial tick.
func (d *HauntDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Tick advances every manager once, in registration order.
func (d *HauntDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
