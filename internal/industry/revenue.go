package industry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amplifyai/amplify-backend/internal/brands"
)

// DisplayType says how the dashboard renders the revenue risk widget.
type DisplayType string

const (
	DisplayCompetitive DisplayType = "competitive"
	DisplayMonetary    DisplayType = "monetary"
	DisplayCustomers   DisplayType = "customers"
)

// Psychology tags the persuasion angle behind a revenue message.
type Psychology string

const (
	PsychologyFallingBehind   Psychology = "fear_of_falling_behind"
	PsychologyOpportunityCost Psychology = "opportunity_cost"
	PsychologyLocal           Psychology = "local_competition"
	PsychologyStandardFOMO    Psychology = "standard_fomo"
)

// RevenueMessage is the tier-specific revenue risk copy. ValueDisplay is
// empty for enterprise; ImpliedValue is set only for local.
type RevenueMessage struct {
	DisplayType  DisplayType `json:"display_type"`
	Headline     string      `json:"headline"`
	Subheadline  string      `json:"subheadline"`
	ValueDisplay string      `json:"value_display,omitempty"`
	ImpliedValue string      `json:"implied_value,omitempty"`
	CTAText      string      `json:"cta_text"`
	Psychology   Psychology  `json:"psychology"`
}

// RevenueMessageFor builds the revenue risk message for a score against
// its industry benchmark. Enterprise buyers are sold competitive position,
// never a dollar figure; growth gets an opportunity-cost number; local
// gets a customer count with an implied dollar value.
func RevenueMessageFor(score int, ind string, tier brands.Tier) RevenueMessage {
	bench := BenchmarkFor(ind)
	gap := bench.Benchmark - score
	if gap < 0 {
		gap = 0
	}

	switch tier {
	case brands.TierEnterprise:
		return RevenueMessage{
			DisplayType: DisplayCompetitive,
			Headline:    fmt.Sprintf("Competitive Blind Spot: %d%% Below AI-First Leaders", gap),
			Subheadline: "Your competitors are already optimizing for AI search. Every month you wait, they capture more market share.",
			CTAText:     "Protect Market Position",
			Psychology:  PsychologyFallingBehind,
		}
	case brands.TierGrowth:
		multiplier := 800
		indLower := strings.ToLower(ind)
		if strings.Contains(indLower, "tech") || strings.Contains(indLower, "saas") {
			multiplier = 1500
		}
		loss := gap * multiplier
		return RevenueMessage{
			DisplayType:  DisplayMonetary,
			Headline:     fmt.Sprintf("Est. Pipeline Leak: $%s/mo", comma(loss)),
			Subheadline:  "AI-assisted buyers are researching your category right now. When they ask ChatGPT, are you in the answer?",
			ValueDisplay: "$" + comma(loss),
			CTAText:      "Capture Hidden Pipeline",
			Psychology:   PsychologyOpportunityCost,
		}
	case brands.TierLocal:
		customers := gap / 8
		if customers < 3 {
			customers = 3
		}
		implied := customers * bench.AvgCustomerValue
		return RevenueMessage{
			DisplayType:  DisplayCustomers,
			Headline:     fmt.Sprintf("~%d Customers Finding Competitors Instead", customers),
			Subheadline:  fmt.Sprintf("When locals ask AI 'best %s near me', you're invisible. Your competitors aren't.", strings.ToLower(ind)),
			ValueDisplay: fmt.Sprintf("%d customers/mo", customers),
			ImpliedValue: fmt.Sprintf("~$%s/mo", comma(implied)),
			CTAText:      "Show Up in AI Search",
			Psychology:   PsychologyLocal,
		}
	default:
		loss := gap * 500
		return RevenueMessage{
			DisplayType:  DisplayMonetary,
			Headline:     fmt.Sprintf("Est. Revenue at Risk: $%s/mo", comma(loss)),
			Subheadline:  "AI search is capturing 40% of purchase-intent queries. Are you showing up?",
			ValueDisplay: "$" + comma(loss),
			CTAText:      "Get AI Visibility Audit",
			Psychology:   PsychologyStandardFOMO,
		}
	}
}

// comma renders a non-negative int with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
