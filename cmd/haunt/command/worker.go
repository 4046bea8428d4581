package command

import (
	"fmt"

	"github.com/pixil98/go-haunt/internal/driver"
	"github.com/pixil98/go-haunt/internal/listener"
	"github.com/pixil98/go-haunt/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Create the message bus peers fan out through
	bus, err := cfg.Nats.buildBus()
	if err != nil {
		return nil, fmt.Errorf("creating message bus: %w", err)
	}

	// Create the simulation and its caller-facing handle
	sim, err := cfg.Sim.BuildSimulation()
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	handle := session.NewSimHandle(sim, bus, cfg.tickLength())

	// Setup the tick driver
	driver := driver.NewHauntDriver(
		[]driver.Manager{handle},
		driver.WithTickLength(cfg.tickLength()),
	)

	// Create Listeners
	cm := listener.NewConnectionManager(handle, bus)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm, handle)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}

	// Create a worker list
	return service.WorkerList{
		"nats":      bus,
		"driver":    driver,
		"listeners": &listeners,
	}, nil
}
