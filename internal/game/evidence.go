package game

import "math/rand"

// Evidence is a manifestation capability a ghost may exhibit. Players
// identify the ghost by which kinds of evidence it produces.
type Evidence int

const (
	EvidenceEMF Evidence = iota
	EvidenceUltraviolet
	EvidenceFreezing
	EvidenceGhostOrbs
	EvidenceWriting
	EvidenceSpiritBox
)

func (e Evidence) String() string {
	switch e {
	case EvidenceEMF:
		return "emf"
	case EvidenceUltraviolet:
		return "ultraviolet"
	case EvidenceFreezing:
		return "freezing"
	case EvidenceGhostOrbs:
		return "ghost-orbs"
	case EvidenceWriting:
		return "writing"
	case EvidenceSpiritBox:
		return "spirit-box"
	default:
		return "unknown"
	}
}

// GhostType is the variant of entity haunting the location, fixed for the
// session.
type GhostType int

const (
	GhostSpirit GhostType = iota
	GhostPoltergeist
	GhostJinn
	GhostMare
	GhostRevenant
	GhostShade
	GhostDemon
	GhostHantu
	GhostMyling
	GhostOnryo
	GhostTwins
	GhostObake
	GhostMoroi
)

var ghostNames = map[GhostType]string{
	GhostSpirit:      "spirit",
	GhostPoltergeist: "poltergeist",
	GhostJinn:        "jinn",
	GhostMare:        "mare",
	GhostRevenant:    "revenant",
	GhostShade:       "shade",
	GhostDemon:       "demon",
	GhostHantu:       "hantu",
	GhostMyling:      "myling",
	GhostOnryo:       "onryo",
	GhostTwins:       "twins",
	GhostObake:       "obake",
	GhostMoroi:       "moroi",
}

func (g GhostType) String() string {
	if name, ok := ghostNames[g]; ok {
		return name
	}
	return "unknown"
}

// ghostEvidence maps each variant to the three kinds of evidence it can
// produce.
var ghostEvidence = map[GhostType][]Evidence{
	GhostSpirit:      {EvidenceEMF, EvidenceSpiritBox, EvidenceWriting},
	GhostPoltergeist: {EvidenceSpiritBox, EvidenceUltraviolet, EvidenceWriting},
	GhostJinn:        {EvidenceEMF, EvidenceUltraviolet, EvidenceFreezing},
	GhostMare:        {EvidenceSpiritBox, EvidenceGhostOrbs, EvidenceWriting},
	GhostRevenant:    {EvidenceGhostOrbs, EvidenceWriting, EvidenceFreezing},
	GhostShade:       {EvidenceEMF, EvidenceWriting, EvidenceFreezing},
	GhostDemon:       {EvidenceUltraviolet, EvidenceWriting, EvidenceFreezing},
	GhostHantu:       {EvidenceUltraviolet, EvidenceGhostOrbs, EvidenceFreezing},
	GhostMyling:      {EvidenceEMF, EvidenceUltraviolet, EvidenceWriting},
	GhostOnryo:       {EvidenceSpiritBox, EvidenceGhostOrbs, EvidenceFreezing},
	GhostTwins:       {EvidenceEMF, EvidenceSpiritBox, EvidenceFreezing},
	GhostObake:       {EvidenceEMF, EvidenceUltraviolet, EvidenceGhostOrbs},
	GhostMoroi:       {EvidenceSpiritBox, EvidenceWriting, EvidenceFreezing},
}

// HasEvidence reports whether this variant can produce the given kind of
// evidence.
func (g GhostType) HasEvidence(e Evidence) bool {
	for _, have := range ghostEvidence[g] {
		if have == e {
			return true
		}
	}
	return false
}

// RandomGhostType picks a variant uniformly at random.
func RandomGhostType(rng *rand.Rand) GhostType {
	return GhostType(rng.Intn(len(ghostEvidence)))
}
