package game

import "github.com/pixil98/go-haunt/internal/house"

// GameUpdate is the externally consumable snapshot of a session. Exactly one
// of the two variants is set: Lobby before the session starts, Sim after.
type GameUpdate struct {
	Lobby *LobbyUpdate `json:"lobby,omitempty"`
	Sim   *SimUpdate   `json:"sim,omitempty"`
}

// LobbyUpdate lists who has joined while the session waits to start.
type LobbyUpdate struct {
	Players []string `json:"players"`
}

// PlayerUpdate is one player's telemetry. Room is omitted until the player
// reports a location.
type PlayerUpdate struct {
	Name   string           `json:"name"`
	Room   *house.RoomLabel `json:"room,omitempty"`
	Sanity float64          `json:"sanity"`
}

// SimUpdate is the full telemetry of a running session. RoomTemp carries
// reading jitter, so two snapshots of identical state may differ there.
type SimUpdate struct {
	Players        []PlayerUpdate  `json:"players"`
	GhostRoom      house.RoomLabel `json:"ghost_room"`
	FavoriteRoom   house.RoomLabel `json:"favorite_room"`
	OrbVisible     bool            `json:"orb_visible"`
	WritingVisible bool            `json:"writing_visible"`
	BookRoom       house.RoomLabel `json:"book_room"`
	EMFLevel       int             `json:"emf_level"`
	Hunting        bool            `json:"hunting"`
	AmbientTemp    float64         `json:"ambient_temp"`
	RoomTemp       float64         `json:"room_temp"`
	Notifications  []string        `json:"notifications,omitempty"`
}

// Snapshot converts the current state into a GameUpdate. The pending
// notification list rides along unchanged; the caller acknowledges delivery
// with ClearNotifications once the snapshot has actually been sent.
func (s *Simulation) Snapshot() GameUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return GameUpdate{Lobby: &LobbyUpdate{Players: s.roster.Names()}}
	}

	players := make([]PlayerUpdate, 0, s.roster.Len())
	for _, p := range s.roster.Players() {
		players = append(players, PlayerUpdate{
			Name:   p.Name,
			Room:   p.Room,
			Sanity: p.Sanity,
		})
	}

	return GameUpdate{Sim: &SimUpdate{
		Players:        players,
		GhostRoom:      s.ghost.Current,
		FavoriteRoom:   s.ghost.Favorite,
		OrbVisible:     s.flags.OrbVisible,
		WritingVisible: s.flags.WritingVisible,
		BookRoom:       s.flags.BookRoom,
		EMFLevel:       s.flags.EMFLevel,
		Hunting:        s.flags.Hunting,
		AmbientTemp:    s.opts.AmbientTemp,
		RoomTemp:       s.readTemperature(),
		Notifications:  s.notifications,
	}}
}
