package scoring

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Technical scores on-page technical SEO signals: meta description, title
// tag, schema markup, heading structure, and transport security. Max 15.
// Malformed HTML degrades to a zero sub-score; it never fails.
func Technical(html, url string) SubScore {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[SCORING] technical: html parse failed: %v", err)
		return degraded(MaxTechnical)
	}

	score := 0
	factors := make(map[string]Factor)

	// Meta description: optimal 120-160 chars, partial credit below.
	metaDesc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	switch n := utf8.RuneCountInString(metaDesc); {
	case n >= 120 && n <= 160:
		score += 3
		factors["meta_description"] = Factor{Score: 3, Status: "optimal", Detail: map[string]any{"length": n}}
	case n >= 50 && n < 120:
		score += 2
		factors["meta_description"] = Factor{Score: 2, Status: "short", Detail: map[string]any{"length": n}}
	case n > 0:
		score += 1
		factors["meta_description"] = Factor{Score: 1, Status: "exists", Detail: map[string]any{"length": n}}
	default:
		factors["meta_description"] = Factor{Score: 0, Status: "missing"}
	}

	// Title tag: optimal 30-60 chars.
	title := strings.TrimSpace(doc.Find("title").First().Text())
	switch n := utf8.RuneCountInString(title); {
	case n >= 30 && n <= 60:
		score += 3
		factors["title_tag"] = Factor{Score: 3, Status: "optimal", Detail: map[string]any{"length": n}}
	case n > 0:
		score += 1
		factors["title_tag"] = Factor{Score: 1, Status: "suboptimal", Detail: map[string]any{"length": n}}
	default:
		factors["title_tag"] = Factor{Score: 0, Status: "missing"}
	}

	// JSON-LD schema scripts.
	schemaCount := doc.Find(`script[type="application/ld+json"]`).Length()
	switch {
	case schemaCount >= 2:
		score += 3
		factors["schema_markup"] = Factor{Score: 3, Status: "rich", Detail: map[string]any{"count": schemaCount}}
	case schemaCount == 1:
		score += 2
		factors["schema_markup"] = Factor{Score: 2, Status: "basic", Detail: map[string]any{"count": 1}}
	default:
		factors["schema_markup"] = Factor{Score: 0, Status: "missing", Detail: map[string]any{"count": 0}}
	}

	// Heading structure: exactly one H1 plus at least two H2s is optimal.
	h1 := doc.Find("h1").Length()
	h2 := doc.Find("h2").Length()
	switch {
	case h1 == 1 && h2 >= 2:
		score += 3
		factors["heading_structure"] = Factor{Score: 3, Status: "optimal", Detail: map[string]any{"h1": h1, "h2": h2}}
	case h1 >= 1:
		score += 1
		factors["heading_structure"] = Factor{Score: 1, Status: "basic", Detail: map[string]any{"h1": h1, "h2": h2}}
	default:
		factors["heading_structure"] = Factor{Score: 0, Status: "missing", Detail: map[string]any{"h1": 0, "h2": 0}}
	}

	// Transport security.
	if strings.HasPrefix(strings.ToLower(url), "https://") {
		score += 3
		factors["https"] = Factor{Score: 3, Status: "secure"}
	} else {
		factors["https"] = Factor{Score: 0, Status: "insecure"}
	}

	return SubScore{Score: clamp(score, 0, MaxTechnical), Max: MaxTechnical, Status: StatusOK, Factors: factors}
}
