// Package scoring implements the deterministic math-scoring engine: five
// independent signal extractors over scraped page content, a per-URL variance
// factor, and the 0-60 aggregate. No AI calls, no I/O, no error paths.
package scoring

// Extractor maximums. The five extractors sum to 60 before variance.
const (
	MaxTechnical       = 15
	MaxContent         = 15
	MaxAuthority       = 15
	MaxDiscoverability = 10
	MaxAnswerability   = 5
	MaxTotal           = 60
)

// Status reports whether an extractor ran normally or degraded on bad input.
type Status string

const (
	// StatusOK means the extractor evaluated its input normally.
	StatusOK Status = "ok"
	// StatusDegraded means the input could not be parsed; the extractor
	// returned a zero score with no factors instead of failing.
	StatusDegraded Status = "degraded"
)

// Factor is the per-signal detail inside a SubScore. Factors are display
// data only; nothing downstream re-consumes them.
type Factor struct {
	Score  int            `json:"score"`
	Status string         `json:"status,omitempty"`
	Detail map[string]any `json:"detail,omitempty"`
}

// SubScore is one extractor's bounded result. Invariant: 0 <= Score <= Max.
type SubScore struct {
	Score   int               `json:"score"`
	Max     int               `json:"max"`
	Status  Status            `json:"status"`
	Factors map[string]Factor `json:"factors"`
}

// Breakdown holds all five sub-scores of a math result.
type Breakdown struct {
	Technical         SubScore `json:"technical"`
	Content           SubScore `json:"content"`
	Authority         SubScore `json:"authority"`
	AIDiscoverability SubScore `json:"ai_discoverability"`
	Answerability     SubScore `json:"answerability"`
}

// MathScoreResult is the deterministic 0-60 portion of the final score.
// Invariant: Total == clamp(sum of sub-scores + Variance, 0, 60).
type MathScoreResult struct {
	Total     int       `json:"total"`
	Max       int       `json:"max"`
	Variance  int       `json:"variance"`
	Breakdown Breakdown `json:"breakdown"`
}

func degraded(max int) SubScore {
	return SubScore{Score: 0, Max: max, Status: StatusDegraded, Factors: map[string]Factor{}}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
