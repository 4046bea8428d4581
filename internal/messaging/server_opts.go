package messaging

import "time"

type BusOpt func(*Bus)

// WithStartTimeout sets how long Start waits for the embedded server.
func WithStartTimeout(d time.Duration) BusOpt {
	return func(b *Bus) {
		b.startupTimeout = d
	}
}

// WithHost sets the bind host for the embedded server.
func WithHost(host string) BusOpt {
	return func(b *Bus) {
		b.host = host
	}
}

// WithPort sets the bind port for the embedded server.
func WithPort(port int) BusOpt {
	return func(b *Bus) {
		b.port = port
	}
}
