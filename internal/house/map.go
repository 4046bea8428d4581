package house

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// RoomLabel identifies a room within the house graph.
type RoomLabel int

// Path is the sequence of rooms remaining between a start room (exclusive)
// and a target room (inclusive). Movement consumes it one hop at a time.
type Path []RoomLabel

// Room is a single node in the house graph.
type Room struct {
	Label     RoomLabel   `json:"label"`
	Name      string      `json:"name,omitempty"`
	Connected []RoomLabel `json:"connected"`
}

// Validate checks the room in isolation; cross-room invariants (symmetry,
// connectivity) are checked by NewMap.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Label < 0 {
		el.Add(fmt.Errorf("room label must be non-negative, got %d", r.Label))
	}

	seen := map[RoomLabel]bool{}
	for _, adj := range r.Connected {
		if adj == r.Label {
			el.Add(fmt.Errorf("room %d connects to itself", r.Label))
		}
		if seen[adj] {
			el.Add(fmt.Errorf("room %d lists duplicate connection to %d", r.Label, adj))
		}
		seen[adj] = true
	}

	return el.Err()
}

// Map is the fixed topology of the haunted location. It is immutable after
// construction and safe to share by read-only reference.
type Map struct {
	rooms []Room
}

// NewMap builds a Map from a room list. Labels must form a dense range
// starting at zero, adjacency must be symmetric, and the graph must be fully
// connected. Any violation is a configuration error and fails construction;
// a Map that constructs successfully can always find a path between any two
// of its rooms.
func NewMap(rooms []Room) (*Map, error) {
	el := errors.NewErrorList()

	if len(rooms) == 0 {
		return nil, fmt.Errorf("topology has no rooms")
	}

	indexed := make([]Room, len(rooms))
	seen := make([]bool, len(rooms))
	for _, r := range rooms {
		el.Add(r.Validate())
		if r.Label < 0 || int(r.Label) >= len(rooms) {
			el.Add(fmt.Errorf("room label %d outside dense range 0..%d", r.Label, len(rooms)-1))
			continue
		}
		if seen[r.Label] {
			el.Add(fmt.Errorf("duplicate room label %d", r.Label))
			continue
		}
		seen[r.Label] = true
		indexed[r.Label] = r
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	m := &Map{rooms: indexed}

	for _, r := range m.rooms {
		for _, adj := range r.Connected {
			if int(adj) >= len(m.rooms) || adj < 0 {
				el.Add(fmt.Errorf("room %d connects to unknown room %d", r.Label, adj))
				continue
			}
			if !m.connected(adj, r.Label) {
				el.Add(fmt.Errorf("adjacency not symmetric: %d->%d has no reverse edge", r.Label, adj))
			}
		}
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	if unreached := m.unreachableFrom(0); len(unreached) > 0 {
		return nil, fmt.Errorf("topology is disconnected: rooms %v unreachable from room 0", unreached)
	}

	return m, nil
}

func (m *Map) connected(from, to RoomLabel) bool {
	for _, adj := range m.rooms[from].Connected {
		if adj == to {
			return true
		}
	}
	return false
}

// unreachableFrom returns the labels a breadth-first sweep from start never
// reaches, in ascending order.
func (m *Map) unreachableFrom(start RoomLabel) []RoomLabel {
	visited := make([]bool, len(m.rooms))
	visited[start] = true
	queue := []RoomLabel{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range m.rooms[cur].Connected {
			if !visited[adj] {
				visited[adj] = true
				queue = append(queue, adj)
			}
		}
	}

	var unreached []RoomLabel
	for label, ok := range visited {
		if !ok {
			unreached = append(unreached, RoomLabel(label))
		}
	}
	return unreached
}

// NumRooms returns the number of rooms in the map.
func (m *Map) NumRooms() int {
	return len(m.rooms)
}

// Contains reports whether label names a room in this map.
func (m *Map) Contains(label RoomLabel) bool {
	return label >= 0 && int(label) < len(m.rooms)
}

// Rooms returns all room labels in ascending order.
func (m *Map) Rooms() []RoomLabel {
	labels := make([]RoomLabel, len(m.rooms))
	for i := range m.rooms {
		labels[i] = RoomLabel(i)
	}
	return labels
}

// Adjacent returns the rooms directly connected to label. The returned slice
// is shared with the map and must not be modified.
func (m *Map) Adjacent(label RoomLabel) []RoomLabel {
	if !m.Contains(label) {
		return nil
	}
	return m.rooms[label].Connected
}

// Name returns the display name of a room, if the topology provides one.
func (m *Map) Name(label RoomLabel) string {
	if !m.Contains(label) {
		return ""
	}
	return m.rooms[label].Name
}
