package session

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-haunt/internal/house"
)

// Message types spoken by clients.
const (
	TypeJoinLobby      = "join_lobby"
	TypeConnectAsAdmin = "connect_as_admin"
	TypeStartSim       = "start_sim"
	TypeLocationUpdate = "location_update"
)

// Message is one inbound client frame. Type selects the operation; the other
// fields are populated per type.
type Message struct {
	Type     string           `json:"type"`
	Name     string           `json:"name,omitempty"`
	Location *house.RoomLabel `json:"location,omitempty"`
}

// ParseMessage decodes and validates one client frame. Malformed frames are
// a per-message error, never fatal to the session.
func ParseMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decoding message: %w", err)
	}

	switch msg.Type {
	case TypeJoinLobby:
		if msg.Name == "" {
			return Message{}, fmt.Errorf("%s requires a name", TypeJoinLobby)
		}
	case TypeLocationUpdate:
		if msg.Name == "" {
			return Message{}, fmt.Errorf("%s requires a name", TypeLocationUpdate)
		}
		if msg.Location == nil {
			return Message{}, fmt.Errorf("%s requires a location", TypeLocationUpdate)
		}
	case TypeConnectAsAdmin, TypeStartSim:
		// No payload.
	default:
		return Message{}, fmt.Errorf("unknown message type %q", msg.Type)
	}

	return msg, nil
}
