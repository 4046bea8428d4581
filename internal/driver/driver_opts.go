package driver

import "time"

type HauntDriverOpt func(*HauntDriver)

func WithTickLength(tickLength time.Duration) HauntDriverOpt {
	return func(d *HauntDriver) {
		d.tickLength = tickLength
	}
}
