package game

import (
	"errors"

	"github.com/pixil98/go-haunt/internal/house"
)

// FullSanity is the sanity every player joins with.
const FullSanity = 100.0

var (
	// ErrAlreadyConnected is returned when a join repeats an identity that
	// already registered.
	ErrAlreadyConnected = errors.New("identity already connected")
	// ErrNameTaken is returned when a join repeats a display name already in
	// use.
	ErrNameTaken = errors.New("name already taken")
)

// Player is one connected investigator. Identity is the network address the
// join arrived from; Room stays nil until the first location update.
type Player struct {
	Identity string
	Name     string
	Room     *house.RoomLabel
	Sanity   float64
}

// Roster tracks connected players in join order. Players are never removed
// mid-session; a disconnected player simply stops sending location updates.
type Roster struct {
	players []*Player
}

// Add registers a new player with full sanity and unknown location. Both the
// identity and the display name must be unique; a rejected join leaves the
// roster unchanged.
func (r *Roster) Add(identity, name string) error {
	for _, p := range r.players {
		if p.Identity == identity {
			return ErrAlreadyConnected
		}
		if p.Name == name {
			return ErrNameTaken
		}
	}

	r.players = append(r.players, &Player{
		Identity: identity,
		Name:     name,
		Sanity:   FullSanity,
	})
	return nil
}

// SetLocation records a player's self-reported room. Unknown names are
// ignored; the player may have joined on a connection the core never saw
// complete.
func (r *Roster) SetLocation(name string, room house.RoomLabel) {
	for _, p := range r.players {
		if p.Name == name {
			label := room
			p.Room = &label
			return
		}
	}
}

// Get returns the player with the given display name, or nil.
func (r *Roster) Get(name string) *Player {
	for _, p := range r.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Names returns player display names in join order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

// Players returns the players in join order. The slice is shared; callers
// holding the simulation lock may mutate the entries.
func (r *Roster) Players() []*Player {
	return r.players
}

// Len returns the number of joined players.
func (r *Roster) Len() int {
	return len(r.players)
}

// Drain lowers every player's sanity by amount, never below zero.
func (r *Roster) Drain(amount float64) {
	for _, p := range r.players {
		p.Drain(amount)
	}
}

// Drain lowers this player's sanity by amount, never below zero.
func (p *Player) Drain(amount float64) {
	p.Sanity -= amount
	if p.Sanity < 0 {
		p.Sanity = 0
	}
}

// InRoom reports whether the player last reported the given room.
func (p *Player) InRoom(room house.RoomLabel) bool {
	return p.Room != nil && *p.Room == room
}
