package house

// WillowStreetRooms is the built-in topology: a two-storey suburban house
// with fourteen rooms. It is used whenever no topology asset is configured.
func WillowStreetRooms() []Room {
	return []Room{
		{Label: 0, Name: "Entry Hall", Connected: []RoomLabel{1, 2, 13}},
		{Label: 1, Name: "Coat Closet", Connected: []RoomLabel{0}},
		{Label: 2, Name: "Living Room", Connected: []RoomLabel{0, 3, 4, 6}},
		{Label: 3, Name: "Dining Room", Connected: []RoomLabel{2, 4}},
		{Label: 4, Name: "Kitchen", Connected: []RoomLabel{2, 3, 5}},
		{Label: 5, Name: "Pantry", Connected: []RoomLabel{4}},
		{Label: 6, Name: "Hallway", Connected: []RoomLabel{2, 7}},
		{Label: 7, Name: "Garage", Connected: []RoomLabel{6}},
		{Label: 8, Name: "Master Bathroom", Connected: []RoomLabel{9}},
		{Label: 9, Name: "Master Bedroom", Connected: []RoomLabel{8, 10, 13}},
		{Label: 10, Name: "Kids Bedroom", Connected: []RoomLabel{11, 13, 9}},
		{Label: 11, Name: "Upstairs Bathroom", Connected: []RoomLabel{10}},
		{Label: 12, Name: "Utility Room", Connected: []RoomLabel{13}},
		{Label: 13, Name: "Upstairs Hallway", Connected: []RoomLabel{0, 9, 10, 12}},
	}
}

// DefaultMap builds the Willow Street topology. The layout is static data
// that satisfies every construction invariant, so failure is a programming
// error rather than a runtime condition.
func DefaultMap() *Map {
	m, err := NewMap(WillowStreetRooms())
	if err != nil {
		panic("built-in topology invalid: " + err.Error())
	}
	return m
}
