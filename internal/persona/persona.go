// Package persona infers who is reading the dashboard from the scanned
// page's own copy, then generates persona-targeted messaging for it.
package persona

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Persona is a detected visitor archetype.
type Persona string

const (
	PersonaStartupFounder      Persona = "startup_founder"
	PersonaEnterpriseMarketing Persona = "enterprise_marketing"
	PersonaLocalBusiness       Persona = "local_business"
	PersonaSoloConsultant      Persona = "solo_consultant"
	PersonaSaaSProduct         Persona = "saas_product"
	PersonaEcommerceOwner      Persona = "ecommerce_owner"

	// PersonaFallback is used when the signals are too weak to commit.
	PersonaFallback Persona = "growth_marketer"
)

// Confidence grades a persona detection.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// personaSignals is ordered; ties in signal counts resolve to the earlier
// entry.
var personaSignals = []struct {
	persona Persona
	signals []string
	weight  float64
}{
	{PersonaStartupFounder, []string{
		"series a", "series b", "series c", "we're hiring", "we are hiring",
		"startup", "founding team", "backed by", "raised", "seed round",
		"venture", "co-founder", "our investors", "yc", "y combinator",
		"techstars", "accelerator", "pre-seed", "funding",
	}, 1.0},
	{PersonaEnterpriseMarketing, []string{
		"fortune 500", "enterprise", "global", "publicly traded", "nyse",
		"nasdaq", "worldwide", "multinational", "fortune 100", "inc 5000",
		"billion", "corporate", "institutional", "large scale",
	}, 1.0},
	{PersonaLocalBusiness, []string{
		"family owned", "locally owned", "serving", "since 19", "since 20",
		"call us", "free estimate", "free consultation", "our location",
		"visit us", "walk-in", "appointment", "licensed and insured",
		"years in business", "neighborhood", "community",
	}, 1.0},
	{PersonaSoloConsultant, []string{
		"i help", "i work with", "coaching", "consulting", "book a call",
		"my clients", "1-on-1", "one-on-one", "personal brand", "solopreneur",
		"freelance", "independent", "my approach", "i specialize",
	}, 1.0},
	{PersonaSaaSProduct, []string{
		"platform", "api", "integrate", "developers", "documentation",
		"sdk", "webhook", "dashboard", "login", "sign up free",
		"free trial", "pricing plans", "per month", "/mo", "saas",
	}, 1.0},
	{PersonaEcommerceOwner, []string{
		"shop", "cart", "add to cart", "shipping", "products", "checkout",
		"buy now", "returns", "free shipping", "order", "delivery",
		"in stock", "out of stock", "add to bag", "wishlist",
	}, 1.0},
}

// Detection is the outcome of persona inference over page text.
type Detection struct {
	Persona      Persona    `json:"persona"`
	Confidence   Confidence `json:"confidence"`
	SignalsFound []string   `json:"signals_found"`
	// AllSignals is every signal matched across all personas, deduplicated.
	AllSignals []string `json:"all_signals_found"`
}

// Detect scans page text for persona signals. A clear winner with three or
// more signals and at least double the runner-up is high confidence; two
// signals is medium; anything weaker falls back to the generic growth
// marketer persona.
func Detect(text string) Detection {
	textLower := strings.ToLower(text)

	type scored struct {
		persona Persona
		found   []string
		weight  float64
	}
	results := make([]scored, 0, len(personaSignals))
	seen := make(map[string]bool)
	var all []string

	for _, ps := range personaSignals {
		var found []string
		for _, sig := range ps.signals {
			if strings.Contains(textLower, sig) {
				found = append(found, sig)
				if !seen[sig] {
					seen[sig] = true
					all = append(all, sig)
				}
			}
		}
		results = append(results, scored{ps.persona, found, float64(len(found)) * ps.weight})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].weight > results[j].weight
	})

	top := results[0]
	second := 0
	if len(results) > 1 {
		second = len(results[1].found)
	}

	det := Detection{AllSignals: all, SignalsFound: top.found}
	switch {
	case len(top.found) == 0:
		det.Persona = PersonaFallback
		det.Confidence = ConfidenceLow
		det.SignalsFound = nil
	case len(top.found) >= 3 && len(top.found) >= second*2:
		det.Persona = top.persona
		det.Confidence = ConfidenceHigh
	case len(top.found) >= 2:
		det.Persona = top.persona
		det.Confidence = ConfidenceMedium
	default:
		det.Persona = PersonaFallback
		det.Confidence = ConfidenceLow
	}
	return det
}

// BrandName extracts a display brand name from a URL: the first domain
// label, capitalized.
func BrandName(rawURL string) string {
	s := rawURL
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return "Unknown Brand"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	brand := strings.SplitN(host, ".", 2)[0]
	if brand == "" {
		return "Unknown Brand"
	}
	return strings.ToUpper(brand[:1]) + brand[1:]
}

// URLHash is the canonical cache key for a URL: scheme and www stripped,
// lowercased, trailing slash removed, md5, first 16 hex chars.
func URLHash(rawURL string) string {
	clean := strings.ToLower(rawURL)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	clean = strings.TrimPrefix(clean, "www.")
	clean = strings.TrimRight(clean, "/")
	sum := md5.Sum([]byte(clean))
	return hex.EncodeToString(sum[:])[:16]
}
