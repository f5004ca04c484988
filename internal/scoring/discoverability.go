package scoring

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var faqIndicators = []string{"faq", "frequently asked", "common questions", "q&a"}

var questionPatterns = []string{
	"what ", "how ", "why ", "when ", "where ", "who ", "can ", "does ", "is ",
}

var entityIndicators = []string{
	"we ", "our ", "us ", " inc", " llc", " ltd", "founded", "established",
}

// Discoverability measures how well a page is optimized for AI search
// engines: FAQ markup, a clear value proposition, conversational phrasing,
// and entity mentions. Max 10.
func Discoverability(html, text string) SubScore {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[SCORING] discoverability parse failed: %v", err)
		return degraded(MaxDiscoverability)
	}

	score := 0
	factors := make(map[string]Factor)

	htmlLower := strings.ToLower(html)
	textLower := strings.ToLower(text)

	// FAQ detection. Schema beats plain text.
	hasFAQText := false
	for _, f := range faqIndicators {
		if strings.Contains(textLower, f) {
			hasFAQText = true
			break
		}
	}
	switch {
	case strings.Contains(htmlLower, "faqpage"):
		score += 3
		factors["faq_section"] = Factor{Score: 3, Status: "schema_faq"}
	case hasFAQText:
		score += 2
		factors["faq_section"] = Factor{Score: 2, Status: "text_faq"}
	default:
		factors["faq_section"] = Factor{Score: 0, Status: "missing"}
	}

	// Value proposition clarity: a real H1 plus a substantive meta description.
	clarity := 0
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); len(h1) > 10 {
		clarity++
	}
	if meta, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && len(meta) > 80 {
		clarity += 2
	}
	score += clarity
	factors["value_clarity"] = Factor{Score: clarity, Detail: map[string]any{"max": 3}}

	// Conversational phrasing.
	questionCount := 0
	for _, q := range questionPatterns {
		if strings.Contains(textLower, q) {
			questionCount++
		}
	}
	convScore := 0
	switch {
	case questionCount >= 5:
		convScore = 2
	case questionCount >= 2:
		convScore = 1
	}
	score += convScore
	factors["conversational_content"] = Factor{
		Score:  convScore,
		Detail: map[string]any{"question_patterns": questionCount},
	}

	// Entity mentions tell an AI who the page is about.
	entityCount := 0
	for _, e := range entityIndicators {
		if strings.Contains(textLower, e) {
			entityCount++
		}
	}
	entityScore := 0
	switch {
	case entityCount >= 3:
		entityScore = 2
	case entityCount >= 1:
		entityScore = 1
	}
	score += entityScore
	factors["entity_clarity"] = Factor{
		Score:  entityScore,
		Detail: map[string]any{"indicators": entityCount},
	}

	return SubScore{Score: clamp(score, 0, MaxDiscoverability), Max: MaxDiscoverability, Status: StatusOK, Factors: factors}
}
