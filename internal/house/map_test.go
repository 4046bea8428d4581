package house

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestNewMapValidation(t *testing.T) {
	tests := map[string]struct {
		rooms  []Room
		expErr string
	}{
		"empty topology": {
			rooms:  []Room{},
			expErr: "no rooms",
		},
		"self connection": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{0, 1}},
				{Label: 1, Connected: []RoomLabel{0}},
			},
			expErr: "connects to itself",
		},
		"duplicate label": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{1}},
				{Label: 0, Connected: []RoomLabel{1}},
			},
			expErr: "duplicate room label",
		},
		"sparse labels": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{5}},
				{Label: 5, Connected: []RoomLabel{0}},
			},
			expErr: "outside dense range",
		},
		"asymmetric adjacency": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{1}},
				{Label: 1, Connected: []RoomLabel{}},
			},
			expErr: "not symmetric",
		},
		"unknown neighbor": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{1, 7}},
				{Label: 1, Connected: []RoomLabel{0}},
			},
			expErr: "unknown room",
		},
		"disconnected": {
			rooms: []Room{
				{Label: 0, Connected: []RoomLabel{1}},
				{Label: 1, Connected: []RoomLabel{0}},
				{Label: 2, Connected: []RoomLabel{3}},
				{Label: 3, Connected: []RoomLabel{2}},
			},
			expErr: "disconnected",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewMap(tt.rooms)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestNewMapValid(t *testing.T) {
	m, err := NewMap([]Room{
		{Label: 0, Connected: []RoomLabel{1, 2}},
		{Label: 1, Connected: []RoomLabel{0}},
		{Label: 2, Connected: []RoomLabel{0}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "room count", m.NumRooms(), 3)
	testutil.AssertEqual(t, "contains 2", m.Contains(2), true)
	testutil.AssertEqual(t, "contains 3", m.Contains(3), false)
	testutil.AssertEqual(t, "room 0 degree", len(m.Adjacent(0)), 2)
	testutil.AssertEqual(t, "room labels", len(m.Rooms()), 3)
}

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()
	testutil.AssertEqual(t, "room count", m.NumRooms(), 14)
	testutil.AssertEqual(t, "entry hall", m.Name(0), "Entry Hall")

	// Spot check the hub rooms from the built-in layout.
	testutil.AssertEqual(t, "living room degree", len(m.Adjacent(2)), 4)
	testutil.AssertEqual(t, "upstairs hallway degree", len(m.Adjacent(13)), 4)
}
