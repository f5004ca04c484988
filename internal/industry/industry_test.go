package industry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amplifyai/amplify-backend/internal/brands"
)

func TestValidateIndustryKeywordOverride(t *testing.T) {
	// Three dental keyword hits override a valid but wrong AI suggestion.
	text := "Our dental clinic offers teeth cleaning and implant consultations with a dentist."
	assert.Equal(t, "Dental", ValidateIndustry("SaaS/Tech", text))
}

func TestValidateIndustryTrustsValidSuggestionOnWeakEvidence(t *testing.T) {
	// One dental keyword is not enough to override.
	text := "We help businesses smile."
	assert.Equal(t, "Legal", ValidateIndustry("Legal", text))
}

func TestValidateIndustryWeakMatchBeatsInvalidSuggestion(t *testing.T) {
	text := "We help businesses smile."
	assert.Equal(t, "Dental", ValidateIndustry("Made Up Industry", text))
}

func TestValidateIndustryNoEvidence(t *testing.T) {
	assert.Equal(t, "Fintech", ValidateIndustry("Fintech", "zzz qqq"))
	assert.Equal(t, General, ValidateIndustry("", "zzz qqq"))
}

func TestBenchmarkForFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, Benchmark{75, 300}, BenchmarkFor("Underwater Basket Weaving"))
	assert.Equal(t, Benchmark{80, 400}, BenchmarkFor("Dental"))
}

func TestClassifyArchetypeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Archetype
	}{
		{100, ArchetypeTitan},
		{85, ArchetypeTitan},
		{84, ArchetypeHighPerformer},
		{75, ArchetypeHighPerformer},
		{74, ArchetypeContender},
		{60, ArchetypeContender},
		{59, ArchetypeVulnerable},
		{45, ArchetypeVulnerable},
		{44, ArchetypeDilution},
		{0, ArchetypeDilution},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyArchetype(tc.score, brands.TierUnknown), "score %d", tc.score)
	}
}

func TestRevenueMessageEnterpriseNeverMonetary(t *testing.T) {
	msg := RevenueMessageFor(40, "SaaS/Tech", brands.TierEnterprise)

	assert.Equal(t, DisplayCompetitive, msg.DisplayType)
	assert.Empty(t, msg.ValueDisplay)
	assert.Empty(t, msg.ImpliedValue)
	assert.Equal(t, PsychologyFallingBehind, msg.Psychology)
	assert.Contains(t, msg.Headline, "48%")
}

func TestRevenueMessageGrowthUsesTechMultiplier(t *testing.T) {
	// SaaS/Tech benchmark 88, score 78: gap 10 at 1500/point.
	msg := RevenueMessageFor(78, "SaaS/Tech", brands.TierGrowth)

	assert.Equal(t, DisplayMonetary, msg.DisplayType)
	assert.Equal(t, "$15,000", msg.ValueDisplay)
	assert.Equal(t, PsychologyOpportunityCost, msg.Psychology)
}

func TestRevenueMessageGrowthDefaultMultiplier(t *testing.T) {
	// Dental benchmark 80, score 70: gap 10 at 800/point.
	msg := RevenueMessageFor(70, "Dental", brands.TierGrowth)

	assert.Equal(t, "$8,000", msg.ValueDisplay)
}

func TestRevenueMessageLocalHasCustomerCountAndImpliedValue(t *testing.T) {
	// Dental benchmark 80, score 40: gap 40 means 5 customers at $400.
	msg := RevenueMessageFor(40, "Dental", brands.TierLocal)

	assert.Equal(t, DisplayCustomers, msg.DisplayType)
	assert.Equal(t, "5 customers/mo", msg.ValueDisplay)
	assert.Equal(t, "~$2,000/mo", msg.ImpliedValue)
	assert.Contains(t, msg.Subheadline, "best dental near me")
}

func TestRevenueMessageLocalCustomerFloor(t *testing.T) {
	// Tiny gap still shows at least 3 customers.
	msg := RevenueMessageFor(79, "Dental", brands.TierLocal)
	assert.True(t, strings.HasPrefix(msg.ValueDisplay, "3 customers"))
}

func TestRevenueMessageUnknownTier(t *testing.T) {
	// General benchmark 75, score 55: gap 20 at 500/point.
	msg := RevenueMessageFor(55, General, brands.TierUnknown)

	assert.Equal(t, DisplayMonetary, msg.DisplayType)
	assert.Equal(t, "$10,000", msg.ValueDisplay)
	assert.Equal(t, PsychologyStandardFOMO, msg.Psychology)
}

func TestRevenueMessageNoNegativeGap(t *testing.T) {
	msg := RevenueMessageFor(99, "Dental", brands.TierUnknown)
	assert.Equal(t, "$0", msg.ValueDisplay)
}

func TestComma(t *testing.T) {
	assert.Equal(t, "0", comma(0))
	assert.Equal(t, "999", comma(999))
	assert.Equal(t, "1,000", comma(1000))
	assert.Equal(t, "15,000", comma(15000))
	assert.Equal(t, "1,234,567", comma(1234567))
}
