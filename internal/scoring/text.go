package scoring

import (
	"strings"
	"unicode"
)

// Lightweight, fully deterministic text analysis used by the content
// extractor. A closed-class word list plus suffix rules stand in for a real
// part-of-speech tagger; unknown words default to noun, which matches how
// web copy actually distributes.

// functionWords are closed-class tokens that never count as information
// carriers: determiners, prepositions, conjunctions, pronouns and particles.
// Be/have/do forms are deliberately absent; they tag as verbs.
var functionWords = map[string]bool{
	"a": true, "an": true, "the": true, "this": true, "that": true,
	"these": true, "those": true, "some": true, "any": true, "each": true,
	"every": true, "no": true, "not": true,
	"and": true, "or": true, "but": true, "nor": true, "so": true,
	"yet": true, "if": true, "because": true, "while": true, "although": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"with": true, "from": true, "by": true, "about": true, "into": true,
	"over": true, "under": true, "between": true, "through": true,
	"after": true, "before": true, "above": true, "below": true,
	"up": true, "down": true, "out": true, "off": true, "than": true,
	"as": true, "per": true, "via": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "me": true, "him": true, "her": true,
	"us": true, "them": true, "my": true, "your": true, "his": true,
	"its": true, "our": true, "their": true, "who": true, "whom": true,
	"whose": true, "which": true, "what": true, "where": true, "when": true,
	"why": true, "how": true, "there": true, "here": true,
	"very": true, "too": true, "quite": true, "rather": true, "just": true,
	"only": true, "also": true, "then": true, "now": true, "more": true,
	"most": true, "much": true, "many": true, "such": true, "both": true,
	"all": true, "will": true, "would": true, "can": true, "could": true,
	"shall": true, "should": true, "may": true, "might": true, "must": true,
}

var verbSuffixes = []string{"ing", "ed", "ize", "ise", "ify", "ate"}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "ical", "less", "ish"}

// beHaveDo covers auxiliary forms that tag as verbs, matching Penn Treebank
// VB* treatment.
var beHaveDo = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true,
	"has": true, "have": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true,
}

// tokenize splits text into lowercase word tokens. Apostrophes stay inside
// tokens so contractions count as one word.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// isMeaningful reports whether a token carries information: nouns and verbs
// count, function words and adjectives/adverbs do not.
func isMeaningful(token string) bool {
	if functionWords[token] {
		return false
	}
	if beHaveDo[token] {
		return true
	}
	if strings.HasSuffix(token, "ly") && len(token) > 4 {
		return false // adverb
	}
	for _, suf := range adjectiveSuffixes {
		if strings.HasSuffix(token, suf) && len(token) > len(suf)+2 {
			return false
		}
	}
	for _, suf := range verbSuffixes {
		if strings.HasSuffix(token, suf) && len(token) > len(suf)+1 {
			return true // verb form
		}
	}
	// Default noun, including numbers and unknown words.
	return true
}

// countSentences counts sentence terminators, treating runs of .!? as one
// boundary. Returns at least 1 for non-empty text.
func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			if !unicode.IsSpace(r) && r != '"' && r != '\'' && r != ')' {
				inTerminator = false
			}
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// polarityLexicon maps sentiment-bearing words to a polarity in [-1, 1].
// Small on purpose: marketing copy leans on a narrow positive vocabulary.
var polarityLexicon = map[string]float64{
	"excellent": 1.0, "outstanding": 0.9, "amazing": 0.8, "awesome": 0.9,
	"great": 0.8, "best": 1.0, "fantastic": 0.9, "wonderful": 0.9,
	"good": 0.7, "love": 0.6, "loved": 0.6, "perfect": 1.0,
	"innovative": 0.5, "leading": 0.4, "trusted": 0.5, "reliable": 0.6,
	"easy": 0.4, "fast": 0.3, "powerful": 0.4, "better": 0.5,
	"success": 0.5, "successful": 0.6, "win": 0.5, "proven": 0.5,
	"happy": 0.8, "delighted": 0.9, "seamless": 0.5, "secure": 0.4,
	"free": 0.3, "simple": 0.3, "beautiful": 0.8, "quality": 0.4,
	"bad": -0.7, "poor": -0.6, "terrible": -1.0, "awful": -1.0,
	"worst": -1.0, "hate": -0.8, "broken": -0.6, "slow": -0.3,
	"problem": -0.4, "problems": -0.4, "difficult": -0.5, "fail": -0.6,
	"failed": -0.6, "failure": -0.7, "wrong": -0.5, "expensive": -0.3,
	"risk": -0.3, "never": -0.3, "worse": -0.6, "ugly": -0.7,
}

// polarity returns the mean polarity of sentiment-bearing tokens, or 0 when
// none are present. A "not"/"no" immediately before a sentiment word flips
// its sign.
func polarity(tokens []string) float64 {
	sum := 0.0
	n := 0
	for i, tok := range tokens {
		p, ok := polarityLexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && (tokens[i-1] == "not" || tokens[i-1] == "no") {
			p = -p
		}
		sum += p
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// analysisWindow returns the prefix of text used for density and sentiment,
// cut at a rune boundary.
func analysisWindow(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !isStartByte(text[cut]) {
		cut--
	}
	return text[:cut]
}

func isStartByte(b byte) bool {
	return b&0xC0 != 0x80
}
