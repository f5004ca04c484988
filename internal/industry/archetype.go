package industry

import "github.com/amplifyai/amplify-backend/internal/brands"

// Archetype is the qualitative label shown on the dashboard scorecard.
type Archetype string

const (
	ArchetypeTitan         Archetype = "The Titan"
	ArchetypeHighPerformer Archetype = "High Performer"
	ArchetypeContender     Archetype = "The Contender"
	ArchetypeVulnerable    Archetype = "Vulnerable Incumbent"
	ArchetypeDilution      Archetype = "Signal Dilution"
)

// ClassifyArchetype maps a final score to its archetype band. Bands are
// fixed by score alone; the tier is accepted for call-site symmetry with
// the revenue messaging but does not shift a band.
func ClassifyArchetype(score int, _ brands.Tier) Archetype {
	switch {
	case score >= 85:
		return ArchetypeTitan
	case score >= 75:
		return ArchetypeHighPerformer
	case score >= 60:
		return ArchetypeContender
	case score >= 45:
		return ArchetypeVulnerable
	default:
		return ArchetypeDilution
	}
}
