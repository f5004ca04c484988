package scoring

import (
	"math"
	"strings"
)

// answerablePatterns maps query types to phrase indicators. Coverage across
// types is a cheap proxy for query coverage without embeddings.
var answerablePatterns = []struct {
	queryType  string
	indicators []string
}{
	{"what_is", []string{"is a", "are a", "means", "defined as", "refers to"}},
	{"how_to", []string{"how to", "steps", "guide", "process", "method"}},
	{"why", []string{"because", "reason", "benefit", "advantage"}},
	{"comparison", []string{"vs", "versus", "compared to", "better than", "difference"}},
	{"cost", []string{"price", "cost", "pricing", "$", "free", "subscription"}},
	{"location", []string{"located", "address", "find us", "visit", "hours"}},
	{"contact", []string{"contact", "email", "phone", "call", "reach"}},
	{"reviews", []string{"review", "testimonial", "rating", "feedback"}},
}

// Answerability counts how many question types the page content could
// answer and scores the coverage ratio on a 0-5 scale.
func Answerability(text string) SubScore {
	textLower := strings.ToLower(text)

	covered := make([]string, 0, len(answerablePatterns))
	missing := make([]string, 0, len(answerablePatterns))
	for _, p := range answerablePatterns {
		found := false
		for _, ind := range p.indicators {
			if strings.Contains(textLower, ind) {
				found = true
				break
			}
		}
		if found {
			covered = append(covered, p.queryType)
		} else {
			missing = append(missing, p.queryType)
		}
	}

	ratio := float64(len(covered)) / float64(len(answerablePatterns))
	score := int(math.Round(ratio * 5))

	factors := map[string]Factor{
		"query_coverage": {
			Score: score,
			Detail: map[string]any{
				"covered_types":  covered,
				"missing_types":  missing,
				"coverage_ratio": math.Round(ratio*100) / 100,
			},
		},
	}

	return SubScore{Score: clamp(score, 0, MaxAnswerability), Max: MaxAnswerability, Status: StatusOK, Factors: factors}
}
