// Package report assembles the final 0-100 score and the dashboard payload
// from the math result, the AI judgment, and the brand registry.
package report

import (
	"github.com/amplifyai/amplify-backend/internal/brands"
	"github.com/amplifyai/amplify-backend/internal/industry"
	"github.com/amplifyai/amplify-backend/internal/scoring"
)

// MaxFinalScore caps the combined math + AI score.
const MaxFinalScore = 100

// Priority ranks a fix item for the dashboard.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// FixItem is one actionable recommendation on the dashboard.
type FixItem struct {
	Title        string   `json:"title"`
	Priority     Priority `json:"priority"`
	Description  string   `json:"description"`
	ImpactMetric string   `json:"impact_metric"`
	Status       string   `json:"status"`
}

// TitanDefaultFixes fills the fix list for floor-boosted brands so the
// dashboard never renders empty for a market leader.
var TitanDefaultFixes = []FixItem{
	{
		Title:        "Brand Authority Protection",
		Priority:     PriorityHigh,
		Description:  "Ensure AI agents cite your canonical domain as the source of truth.",
		ImpactMetric: "Hallucination Risk",
		Status:       "pending",
	},
	{
		Title:        "Knowledge Graph Verification",
		Priority:     PriorityHigh,
		Description:  "Verify entity data in Google/Bing/LLM graphs to prevent hallucinations.",
		ImpactMetric: "Entity Trust",
		Status:       "pending",
	},
	{
		Title:        "Snippet Dominance",
		Priority:     PriorityMedium,
		Description:  "Optimize schema to capture zero-click answers in AI search results.",
		ImpactMetric: "Click-Through Rate",
		Status:       "pending",
	},
}

// Breakdown is the flattened per-category view the dashboard renders as
// bars. Math categories sum to at most 60, AI judgment to at most 40.
type Breakdown struct {
	Technical         int `json:"technical"`
	Content           int `json:"content"`
	Authority         int `json:"authority"`
	AIDiscoverability int `json:"ai_discoverability"`
	Answerability     int `json:"answerability"`
	AIJudgment        int `json:"ai_judgment"`
}

// FinalReport is the full /analyze response payload.
type FinalReport struct {
	Score          int                     `json:"score"`
	Archetype      industry.Archetype      `json:"archetype"`
	Industry       string                  `json:"industry"`
	Benchmark      int                     `json:"benchmark"`
	RevenueRisk    string                  `json:"revenue_risk"`
	RevenueMessage industry.RevenueMessage `json:"revenue_message"`
	CompanyTier    brands.Tier             `json:"company_tier"`
	Breakdown      Breakdown               `json:"breakdown"`
	DetectedIssues []string                `json:"detected_issues"`
	FixList        []FixItem               `json:"fix_list"`
	Cached         bool                    `json:"cached,omitempty"`
	CachedAt       string                  `json:"cached_at,omitempty"`
}

// Outcome is the aggregation result before dashboard assembly.
type Outcome struct {
	Score        int
	Math         scoring.MathScoreResult
	FixList      []FixItem
	FloorApplied bool
}

// SyntheticMathResult is the placeholder breakdown used when a famous
// brand blocked the scraper and there is nothing real to measure. The
// bars fill to 55/60 so the dashboard reads as healthy, not broken.
func SyntheticMathResult() scoring.MathScoreResult {
	sub := func(score, max int) scoring.SubScore {
		return scoring.SubScore{Score: score, Max: max, Status: scoring.StatusOK, Factors: map[string]scoring.Factor{}}
	}
	return scoring.MathScoreResult{
		Total: 55,
		Max:   scoring.MaxTotal,
		Breakdown: scoring.Breakdown{
			Technical:         sub(15, scoring.MaxTechnical),
			Content:           sub(10, scoring.MaxContent),
			Authority:         sub(15, scoring.MaxAuthority),
			AIDiscoverability: sub(10, scoring.MaxDiscoverability),
			Answerability:     sub(5, scoring.MaxAnswerability),
		},
	}
}

// AggregateFinal combines the math and AI scores into the final 0-100
// score and applies the brand floor. When the floor lifts the score, the
// breakdown is replaced with the synthetic one and an empty fix list gets
// the Titan defaults. The floor is idempotent: output >= brand.MinScore
// whenever a brand record is present, regardless of inputs.
func AggregateFinal(math scoring.MathScoreResult, aiScore int, fixes []FixItem, brand *brands.Record) Outcome {
	score := math.Total + aiScore
	if score > MaxFinalScore {
		score = MaxFinalScore
	}

	out := Outcome{Score: score, Math: math, FixList: fixes}
	if brand != nil && score < brand.MinScore {
		out.Score = brand.MinScore
		out.Math = SyntheticMathResult()
		out.FloorApplied = true
		if len(out.FixList) == 0 {
			out.FixList = TitanDefaultFixes
		}
	}
	return out
}

// FlattenBreakdown collapses a math breakdown plus the AI judgment score
// into the dashboard bar values.
func FlattenBreakdown(math scoring.MathScoreResult, aiScore int) Breakdown {
	return Breakdown{
		Technical:         math.Breakdown.Technical.Score,
		Content:           math.Breakdown.Content.Score,
		Authority:         math.Breakdown.Authority.Score,
		AIDiscoverability: math.Breakdown.AIDiscoverability.Score,
		Answerability:     math.Breakdown.Answerability.Score,
		AIJudgment:        aiScore,
	}
}
