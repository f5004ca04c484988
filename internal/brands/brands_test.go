package brands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExactMatch(t *testing.T) {
	rec, ok := Lookup("https://nike.com")
	require.True(t, ok)

	assert.Equal(t, "nike.com", rec.Domain)
	assert.Equal(t, "Retail", rec.Industry)
	assert.Equal(t, TierEnterprise, rec.Tier)
	assert.Equal(t, 88, rec.MinScore)
	assert.Equal(t, SourceTier1, rec.Source)
}

func TestLookupNormalization(t *testing.T) {
	cases := []string{
		"nike.com",
		"www.nike.com",
		"https://www.nike.com/us/en",
		"HTTPS://NIKE.COM",
		"http://nike.com:8080/path",
	}
	for _, raw := range cases {
		rec, ok := Lookup(raw)
		require.True(t, ok, raw)
		assert.Equal(t, "nike.com", rec.Domain, raw)
	}
}

func TestLookupSubdomainMatchesParent(t *testing.T) {
	parent, ok := Lookup("nike.com")
	require.True(t, ok)

	sub, ok := Lookup("https://shop.nike.com")
	require.True(t, ok)

	assert.Equal(t, parent.Industry, sub.Industry)
	assert.Equal(t, parent.Tier, sub.Tier)
	assert.Equal(t, parent.MinScore, sub.MinScore)
	assert.Equal(t, "shop.nike.com", sub.Domain)
	assert.Equal(t, SourceSubdomainMatch, sub.Source)
}

func TestLookupKnownBlocked(t *testing.T) {
	rec, ok := Lookup("https://linkedin.com/company/acme")
	require.True(t, ok)

	assert.Equal(t, SourceKnownBlocked, rec.Source)
	assert.Equal(t, "Social Media", rec.Industry)
	assert.Equal(t, 88, rec.MinScore)
}

func TestLookupUnknownDomain(t *testing.T) {
	_, ok := Lookup("https://acme-dental-austin.com")
	assert.False(t, ok)
}

func TestLookupNoFalseSuffixMatch(t *testing.T) {
	// mynike.com must not inherit nike.com's floor.
	_, ok := Lookup("https://mynike.com")
	assert.False(t, ok)
}

func TestIsKnownBlocked(t *testing.T) {
	assert.True(t, IsKnownBlocked("https://instagram.com/acme"))
	assert.True(t, IsKnownBlocked("https://business.linkedin.com"))
	assert.False(t, IsKnownBlocked("https://acme-dental.com"))
	// nike.com blocks nothing; it is a tier-1 brand, not a social platform.
	assert.False(t, IsKnownBlocked("https://nike.com"))
}

func TestDetectTierFromContent(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Tier
	}{
		{
			name: "enterprise",
			text: "A Fortune 500 multinational, publicly traded on the NYSE with worldwide operations.",
			want: TierEnterprise,
		},
		{
			name: "growth",
			text: "A fast startup backed by top venture firms, raised a Series B and scaling quickly.",
			want: TierGrowth,
		},
		{
			name: "local",
			text: "Family owned and locally owned since 1985. Call us today for a free consultation.",
			want: TierLocal,
		},
		{
			name: "unknown",
			text: "We make things.",
			want: TierUnknown,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectTierFromContent(tc.text))
		})
	}
}
