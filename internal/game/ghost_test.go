package game

import (
	"math/rand"
	"testing"

	"github.com/pixil98/go-haunt/internal/house"
	"github.com/pixil98/go-testutil"
)

func linearHouse(t *testing.T) *house.Map {
	t.Helper()
	m, err := house.NewMap([]house.Room{
		{Label: 0, Connected: []house.RoomLabel{1}},
		{Label: 1, Connected: []house.RoomLabel{0, 2}},
		{Label: 2, Connected: []house.RoomLabel{1}},
	})
	if err != nil {
		t.Fatalf("building map: %v", err)
	}
	return m
}

func TestGhostWalksHome(t *testing.T) {
	m := linearHouse(t)
	rng := rand.New(rand.NewSource(1))

	// Away from home with no pending path, the ghost heads for its favorite
	// room one hop per tick: exactly two ticks from room 0 to room 2.
	g := NewGhost(GhostSpirit, 0, 2)

	moved, err := g.Advance(m, rng, 0)
	if err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	testutil.AssertEqual(t, "tick 1 moved", moved, true)
	testutil.AssertEqual(t, "tick 1 room", g.Current, house.RoomLabel(1))
	testutil.AssertEqual(t, "tick 1 en route", g.EnRoute(), true)

	moved, err = g.Advance(m, rng, 0)
	if err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	testutil.AssertEqual(t, "tick 2 moved", moved, true)
	testutil.AssertEqual(t, "tick 2 room", g.Current, house.RoomLabel(2))
	testutil.AssertEqual(t, "tick 2 en route", g.EnRoute(), false)
}

func TestGhostStaysHome(t *testing.T) {
	m := linearHouse(t)
	rng := rand.New(rand.NewSource(1))

	g := NewGhost(GhostSpirit, 2, 2)

	// With stay chance 1 the ghost never leaves its favorite room.
	for i := 0; i < 20; i++ {
		moved, err := g.Advance(m, rng, 1)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		testutil.AssertEqual(t, "moved", moved, false)
		testutil.AssertEqual(t, "room", g.Current, house.RoomLabel(2))
	}
}

func TestGhostExcursionNeverTargetsHome(t *testing.T) {
	m := linearHouse(t)
	rng := rand.New(rand.NewSource(7))

	// With stay chance 0 the ghost at home always picks some other room.
	for i := 0; i < 50; i++ {
		g := NewGhost(GhostSpirit, 2, 2)
		if _, err := g.Advance(m, rng, 0); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if g.Current == 2 {
			t.Fatalf("ghost stayed home despite zero stay chance")
		}
	}
}

func TestGhostEvidenceMapping(t *testing.T) {
	tests := map[string]struct {
		ghost    GhostType
		evidence Evidence
		exp      bool
	}{
		"spirit produces emf":       {GhostSpirit, EvidenceEMF, true},
		"spirit lacks freezing":     {GhostSpirit, EvidenceFreezing, false},
		"hantu produces freezing":   {GhostHantu, EvidenceFreezing, true},
		"hantu lacks writing":       {GhostHantu, EvidenceWriting, false},
		"obake produces orbs":       {GhostObake, EvidenceGhostOrbs, true},
		"obake lacks spirit box":    {GhostObake, EvidenceSpiritBox, false},
		"moroi produces writing":    {GhostMoroi, EvidenceWriting, true},
		"poltergeist lacks orbs":    {GhostPoltergeist, EvidenceGhostOrbs, false},
		"revenant produces orbs":    {GhostRevenant, EvidenceGhostOrbs, true},
		"twins produce spirit box":  {GhostTwins, EvidenceSpiritBox, true},
		"demon lacks emf":           {GhostDemon, EvidenceEMF, false},
		"myling produces uv":        {GhostMyling, EvidenceUltraviolet, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "has evidence", tt.ghost.HasEvidence(tt.evidence), tt.exp)
		})
	}
}

func TestEveryGhostHasThreeEvidenceKinds(t *testing.T) {
	for ghost, evidence := range ghostEvidence {
		if len(evidence) != 3 {
			t.Errorf("%s has %d evidence kinds, expected 3", ghost, len(evidence))
		}
	}
}
