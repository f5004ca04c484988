package scoring

import "strings"

// windowLimit bounds the text slice analyzed for density and sentiment.
// Word and sentence counts always use the full text.
const windowLimit = 3000

// Content scores the cleaned page text for depth and readability: word
// count, information density, average sentence length, and sentiment. Max 15.
func Content(text string) SubScore {
	score := 0
	factors := make(map[string]Factor)

	words := strings.Fields(text)
	wordCount := len(words)
	switch {
	case wordCount >= 1000:
		score += 4
		factors["word_count"] = Factor{Score: 4, Status: "rich", Detail: map[string]any{"value": wordCount}}
	case wordCount >= 500:
		score += 3
		factors["word_count"] = Factor{Score: 3, Status: "adequate", Detail: map[string]any{"value": wordCount}}
	case wordCount >= 200:
		score += 1
		factors["word_count"] = Factor{Score: 1, Status: "thin", Detail: map[string]any{"value": wordCount}}
	default:
		factors["word_count"] = Factor{Score: 0, Status: "empty", Detail: map[string]any{"value": wordCount}}
	}

	// Information density: share of noun/verb tokens in the analysis window.
	window := analysisWindow(text, windowLimit)
	tokens := tokenize(window)
	meaningful := 0
	for _, tok := range tokens {
		if isMeaningful(tok) {
			meaningful++
		}
	}
	total := len(tokens)
	if total == 0 {
		total = 1
	}
	ratio := float64(meaningful) / float64(total)
	switch {
	case ratio >= 0.45:
		score += 5
		factors["info_density"] = Factor{Score: 5, Status: "high_signal", Detail: map[string]any{"ratio": ratio}}
	case ratio >= 0.35:
		score += 3
		factors["info_density"] = Factor{Score: 3, Status: "medium_signal", Detail: map[string]any{"ratio": ratio}}
	case ratio >= 0.25:
		score += 1
		factors["info_density"] = Factor{Score: 1, Status: "low_signal", Detail: map[string]any{"ratio": ratio}}
	default:
		factors["info_density"] = Factor{Score: 0, Status: "noise", Detail: map[string]any{"ratio": ratio}}
	}

	// Readability: words per sentence, full text. Never zero; any prose
	// earns at least a point.
	sentences := countSentences(text)
	avgSentence := float64(wordCount) / float64(sentences)
	switch {
	case avgSentence >= 12 && avgSentence <= 22:
		score += 3
		factors["readability"] = Factor{Score: 3, Status: "optimal", Detail: map[string]any{"avg_sentence": avgSentence}}
	case avgSentence >= 8 && avgSentence <= 30:
		score += 2
		factors["readability"] = Factor{Score: 2, Status: "acceptable", Detail: map[string]any{"avg_sentence": avgSentence}}
	default:
		score += 1
		factors["readability"] = Factor{Score: 1, Status: "poor", Detail: map[string]any{"avg_sentence": avgSentence}}
	}

	// Sentiment: lexicon polarity over the analysis window.
	pol := polarity(tokens)
	switch {
	case pol >= 0.2:
		score += 3
		factors["sentiment"] = Factor{Score: 3, Status: "positive", Detail: map[string]any{"polarity": pol}}
	case pol >= 0:
		score += 2
		factors["sentiment"] = Factor{Score: 2, Status: "neutral", Detail: map[string]any{"polarity": pol}}
	default:
		factors["sentiment"] = Factor{Score: 0, Status: "negative", Detail: map[string]any{"polarity": pol}}
	}

	return SubScore{Score: clamp(score, 0, MaxContent), Max: MaxContent, Status: StatusOK, Factors: factors}
}
