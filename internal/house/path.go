package house

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned when two rooms have no connecting route. A Map that
// passed construction validation is fully connected, so seeing this error at
// runtime means the caller asked about a room outside the map.
var ErrNoPath = errors.New("no path between rooms")

// FindPath returns the shortest hop sequence from one room to another using a
// breadth-first search. The start room is excluded and the target room
// included, so a path's length equals the number of moves required. Asking
// for a path from a room to itself yields an empty path.
func (m *Map) FindPath(from, to RoomLabel) (Path, error) {
	if !m.Contains(from) || !m.Contains(to) {
		return nil, fmt.Errorf("rooms %d to %d: %w", from, to, ErrNoPath)
	}
	if from == to {
		return Path{}, nil
	}

	// prev doubles as the visited marker; -1 means undiscovered.
	prev := make([]RoomLabel, len(m.rooms))
	for i := range prev {
		prev[i] = -1
	}
	prev[from] = from

	queue := []RoomLabel{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range m.rooms[cur].Connected {
			if prev[adj] != -1 {
				continue
			}
			prev[adj] = cur
			if adj == to {
				return m.walkBack(from, to, prev), nil
			}
			queue = append(queue, adj)
		}
	}

	return nil, fmt.Errorf("rooms %d to %d: %w", from, to, ErrNoPath)
}

func (m *Map) walkBack(from, to RoomLabel, prev []RoomLabel) Path {
	var reversed Path
	for r := to; r != from; r = prev[r] {
		reversed = append(reversed, r)
	}

	path := make(Path, len(reversed))
	for i, r := range reversed {
		path[len(reversed)-1-i] = r
	}
	return path
}
