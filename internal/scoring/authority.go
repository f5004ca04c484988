package scoring

import (
	"strconv"
	"strings"
	"time"
)

// socialPlatforms weights social-presence links. LinkedIn counts double; a
// business without one reads as a ghost to AI assistants.
var socialPlatforms = []struct {
	domain string
	points int
}{
	{"linkedin.com", 2},
	{"twitter.com", 1},
	{"x.com", 1},
	{"facebook.com", 1},
	{"youtube.com", 1},
	{"github.com", 1},
}

var trustPhrases = []string{
	"trusted by", "case study", "testimonial", "review",
	"client", "customer", "partner", "award", "certified",
	"featured in", "as seen", "enterprise", "security",
}

var contactSignals = []string{"contact", "email", "phone", "address", "location"}

// Authority scores trust signals: social presence, trust language,
// freshness, and contact transparency. Max 15. Pattern matching only.
func Authority(html, text string, now time.Time) SubScore {
	score := 0
	factors := make(map[string]Factor)

	htmlLower := strings.ToLower(html)
	textLower := strings.ToLower(text)

	// Social proof links, capped at 4.
	socialScore := 0
	var found []string
	for _, p := range socialPlatforms {
		if strings.Contains(htmlLower, p.domain) {
			socialScore += p.points
			found = append(found, strings.TrimSuffix(p.domain, ".com"))
		}
	}
	if socialScore > 4 {
		socialScore = 4
	}
	score += socialScore
	factors["social_presence"] = Factor{
		Score:  socialScore,
		Status: trustStatus(socialScore, 3),
		Detail: map[string]any{"platforms": found},
	}

	// Trust language: 2 points per distinct phrase, capped at 5.
	var foundTrust []string
	for _, phrase := range trustPhrases {
		if strings.Contains(textLower, phrase) {
			foundTrust = append(foundTrust, phrase)
		}
	}
	trustScore := len(foundTrust) * 2
	if trustScore > 5 {
		trustScore = 5
	}
	score += trustScore
	if len(foundTrust) > 5 {
		foundTrust = foundTrust[:5]
	}
	factors["trust_signals"] = Factor{
		Score:  trustScore,
		Status: trustStatus(trustScore, 4),
		Detail: map[string]any{"found": foundTrust},
	}

	// Freshness: mentions of this year (or last) plus a blog/news path.
	currentYear := strconv.Itoa(now.Year())
	lastYear := strconv.Itoa(now.Year() - 1)
	freshness := 0
	if strings.Contains(textLower, currentYear) {
		freshness += 2
	} else if strings.Contains(textLower, lastYear) {
		freshness += 1
	}
	if strings.Contains(htmlLower, "/blog") || strings.Contains(htmlLower, "/news") || strings.Contains(htmlLower, "/articles") {
		freshness++
	}
	if freshness > 3 {
		freshness = 3
	}
	score += freshness
	status := "stale"
	if freshness >= 2 {
		status = "fresh"
	}
	factors["freshness"] = Factor{
		Score:  freshness,
		Status: status,
		Detail: map[string]any{"has_current_year": strings.Contains(textLower, currentYear)},
	}

	// Contact transparency: 1 point per signal, capped at 3.
	var foundContact []string
	for _, c := range contactSignals {
		if strings.Contains(textLower, c) {
			foundContact = append(foundContact, c)
		}
	}
	contactScore := len(foundContact)
	if contactScore > 3 {
		contactScore = 3
	}
	score += contactScore
	status = "hidden"
	if contactScore >= 2 {
		status = "transparent"
	}
	factors["contact_transparency"] = Factor{
		Score:  contactScore,
		Status: status,
		Detail: map[string]any{"found": foundContact},
	}

	return SubScore{Score: clamp(score, 0, MaxAuthority), Max: MaxAuthority, Status: StatusOK, Factors: factors}
}

func trustStatus(score, strong int) string {
	switch {
	case score >= strong:
		return "strong"
	case score > 0:
		return "weak"
	default:
		return "missing"
	}
}
