package game

import (
	"math/rand"

	"github.com/pixil98/go-haunt/internal/house"
)

// Ghost is the autonomous entity players are investigating. It oscillates
// between its favorite room and excursions elsewhere, one room per movement
// tick. The Simulation owns it exclusively; nothing else mutates it.
type Ghost struct {
	Type     GhostType
	Current  house.RoomLabel
	Favorite house.RoomLabel

	// path holds the remaining hops toward the current target; empty when
	// the ghost is idle.
	path house.Path
}

// NewGhost places a ghost of the given variant at start with a fixed
// favorite room.
func NewGhost(t GhostType, start, favorite house.RoomLabel) *Ghost {
	return &Ghost{
		Type:     t,
		Current:  start,
		Favorite: favorite,
	}
}

// EnRoute reports whether the ghost is partway through an excursion.
func (g *Ghost) EnRoute() bool {
	return len(g.path) > 0
}

// Advance runs one movement tick. A ghost idle in its favorite room may
// linger (the stayChance roll); otherwise it picks a target, routes to it,
// and steps one room along the route. From its favorite room it targets a
// uniformly random other room; from anywhere else it heads home. Returns
// whether the ghost changed rooms.
func (g *Ghost) Advance(m *house.Map, rng *rand.Rand, stayChance float64) (bool, error) {
	if len(g.path) == 0 {
		if g.Current == g.Favorite && rng.Float64() < stayChance {
			return false, nil
		}

		path, err := m.FindPath(g.Current, g.nextTarget(m, rng))
		if err != nil {
			return false, err
		}
		g.path = path
	}

	g.Current = g.path[0]
	g.path = g.path[1:]
	return true, nil
}

func (g *Ghost) nextTarget(m *house.Map, rng *rand.Rand) house.RoomLabel {
	if g.Current != g.Favorite {
		return g.Favorite
	}

	others := make([]house.RoomLabel, 0, m.NumRooms()-1)
	for _, label := range m.Rooms() {
		if label != g.Current {
			others = append(others, label)
		}
	}
	return others[rng.Intn(len(others))]
}
