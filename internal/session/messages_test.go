package session

import (
	"testing"

	"github.com/pixil98/go-haunt/internal/house"
	"github.com/pixil98/go-testutil"
)

func TestParseMessage(t *testing.T) {
	tests := map[string]struct {
		data   string
		expErr string
		check  func(t *testing.T, msg Message)
	}{
		"join lobby": {
			data: `{"type":"join_lobby","name":"alice"}`,
			check: func(t *testing.T, msg Message) {
				testutil.AssertEqual(t, "type", msg.Type, TypeJoinLobby)
				testutil.AssertEqual(t, "name", msg.Name, "alice")
			},
		},
		"join without name": {
			data:   `{"type":"join_lobby"}`,
			expErr: "requires a name",
		},
		"location update": {
			data: `{"type":"location_update","name":"alice","location":4}`,
			check: func(t *testing.T, msg Message) {
				testutil.AssertEqual(t, "name", msg.Name, "alice")
				testutil.AssertEqual(t, "location", *msg.Location, house.RoomLabel(4))
			},
		},
		"location update without location": {
			data:   `{"type":"location_update","name":"alice"}`,
			expErr: "requires a location",
		},
		"location zero is a real room": {
			data: `{"type":"location_update","name":"alice","location":0}`,
			check: func(t *testing.T, msg Message) {
				testutil.AssertEqual(t, "location", *msg.Location, house.RoomLabel(0))
			},
		},
		"start sim": {
			data: `{"type":"start_sim"}`,
			check: func(t *testing.T, msg Message) {
				testutil.AssertEqual(t, "type", msg.Type, TypeStartSim)
			},
		},
		"admin connect": {
			data: `{"type":"connect_as_admin"}`,
			check: func(t *testing.T, msg Message) {
				testutil.AssertEqual(t, "type", msg.Type, TypeConnectAsAdmin)
			},
		},
		"unknown type": {
			data:   `{"type":"cast_spell"}`,
			expErr: "unknown message type",
		},
		"malformed json": {
			data:   `{"type":`,
			expErr: "decoding message",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			msg, err := ParseMessage([]byte(tt.data))
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, msg)
		})
	}
}
