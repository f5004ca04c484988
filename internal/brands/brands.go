// Package brands classifies domains against a registry of known brands.
// Famous sites block scrapers; without a floor they would score like broken
// websites and destroy dashboard credibility.
package brands

import (
	"net/url"
	"sort"
	"strings"
)

// Tier is the coarse company-size classification.
type Tier string

const (
	TierEnterprise Tier = "enterprise"
	TierGrowth     Tier = "growth"
	TierLocal      Tier = "local"
	TierUnknown    Tier = "unknown"
)

// Source says which registry table matched a lookup.
type Source string

const (
	SourceTier1          Source = "tier1_giants"
	SourceKnownBlocked   Source = "known_blocked"
	SourceSubdomainMatch Source = "subdomain_match"
)

// Record is one registry entry, resolved for a specific domain.
type Record struct {
	Domain   string `json:"domain"`
	Industry string `json:"industry"`
	Tier     Tier   `json:"tier"`
	MinScore int    `json:"min_score"`
	Source   Source `json:"source"`
}

// tier1Domains is kept sorted so subdomain matching is deterministic.
var tier1Domains = func() []string {
	out := make([]string, 0, len(tier1Giants))
	for d := range tier1Giants {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}()

// Lookup resolves a URL against the brand registry. Order: exact tier-1
// match, exact known-blocked match, then subdomain suffix match against
// tier-1 (shop.nike.com resolves as nike.com). Returns false for unknown
// domains; unknown is a normal outcome, not an error.
func Lookup(rawURL string) (Record, bool) {
	domain := normalizeDomain(rawURL)
	if domain == "" {
		return Record{}, false
	}

	if e, ok := tier1Giants[domain]; ok {
		return resolved(e, domain, SourceTier1), true
	}
	if e, ok := knownBlocked[domain]; ok {
		return resolved(e, domain, SourceKnownBlocked), true
	}
	for _, known := range tier1Domains {
		if strings.HasSuffix(domain, "."+known) {
			return resolved(tier1Giants[known], domain, SourceSubdomainMatch), true
		}
	}
	return Record{}, false
}

// IsKnownBlocked reports whether the domain is a platform that always
// blocks scrapers, whether or not it is a registered brand.
func IsKnownBlocked(rawURL string) bool {
	domain := normalizeDomain(rawURL)
	if domain == "" {
		return false
	}
	if _, ok := knownBlocked[domain]; ok {
		return true
	}
	for known := range knownBlocked {
		if strings.HasSuffix(domain, "."+known) {
			return true
		}
	}
	return false
}

func resolved(e entry, domain string, src Source) Record {
	return Record{
		Domain:   domain,
		Industry: e.industry,
		Tier:     e.tier,
		MinScore: e.minScore,
		Source:   src,
	}
}

func normalizeDomain(rawURL string) string {
	// Lowercase first so an uppercase scheme is not doubled below.
	s := strings.ToLower(rawURL)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// Tier signal tables for content-based classification, used when the
// domain is not in the registry.
var enterpriseSignals = []string{
	"fortune 500", "enterprise", "global", "publicly traded",
	"nasdaq", "nyse", "series d", "series e", "ipo",
	"billion", "10,000+ employees", "worldwide", "multinational",
}

var growthSignals = []string{
	"series a", "series b", "series c", "backed by",
	"funded", "venture", "raised", "million in funding",
	"scaling", "growing team", "100+ employees", "startup",
}

var localSignals = []string{
	"family owned", "locally owned", "serving the", "neighborhood",
	"call us today", "visit our location", "hours:", "appointment",
	"free consultation", "free estimate", "licensed and insured",
}

// DetectTierFromContent infers a company tier from page copy. Enterprise
// wins only with a strict majority of signals; ties fall through to the
// smaller tier.
func DetectTierFromContent(text string) Tier {
	textLower := strings.ToLower(text)

	count := func(signals []string) int {
		n := 0
		for _, s := range signals {
			if strings.Contains(textLower, s) {
				n++
			}
		}
		return n
	}

	enterprise := count(enterpriseSignals)
	growth := count(growthSignals)
	local := count(localSignals)

	switch {
	case enterprise > growth && enterprise > local:
		return TierEnterprise
	case growth > local:
		return TierGrowth
	case local > 0:
		return TierLocal
	default:
		return TierUnknown
	}
}
