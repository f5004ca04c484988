package judgment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/amplifyai/amplify-backend/internal/report"
	"github.com/amplifyai/amplify-backend/internal/scoring"
)

// MaxAIScore caps the AI contribution to the final score.
const MaxAIScore = 40

// DefaultAIScore is the neutral score used when no provider responds.
const DefaultAIScore = 20

// DefaultCallTimeout bounds each provider call so a hung provider cannot
// stall the scan.
const DefaultCallTimeout = 10 * time.Second

// JudgmentScore is the LLM's self-reported dimension breakdown.
type JudgmentScore struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// Result is the judgment outcome. AIScore is always in [0, 40] and always
// present; Source says which provider produced it, or "hardcoded" for the
// fallback.
type Result struct {
	AIScore        int              `json:"ai_score"`
	JudgmentScore  JudgmentScore    `json:"ai_judgment_score"`
	Industry       string           `json:"industry"`
	CompanyTier    string           `json:"company_tier"`
	DetectedIssues []string         `json:"detected_issues"`
	FixList        []report.FixItem `json:"fix_list"`
	Source         string           `json:"ai_source"`
}

// DefaultResult is returned when every provider fails. A scoring service
// must always produce a number.
func DefaultResult() Result {
	return Result{
		AIScore:        DefaultAIScore,
		JudgmentScore:  JudgmentScore{Total: DefaultAIScore},
		Industry:       "General",
		CompanyTier:    "unknown",
		DetectedIssues: []string{"AI analysis unavailable"},
		FixList:        []report.FixItem{},
		Source:         "hardcoded",
	}
}

// Judge runs the provider chain.
type Judge struct {
	providers   []Provider
	callTimeout time.Duration
	verbose     bool
}

// NewJudge builds a judge over an ordered provider chain. Providers are
// tried in order; the first valid response wins.
func NewJudge(providers []Provider, callTimeout time.Duration, verbose bool) *Judge {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Judge{providers: providers, callTimeout: callTimeout, verbose: verbose}
}

// Input carries everything the judgment prompt needs.
type Input struct {
	URL       string
	Title     string
	Text      string
	MathTotal int
	// Reputation switches to the reputation prompt for famous brands that
	// blocked the scraper: rate real-world reputation, not page text.
	Reputation bool
}

const standardPrompt = `You are an AI Visibility Analyst.
Target URL: %s | Title: %s
Website Content: "%s"
Math Score: %d/60
Evaluate 3 Dimensions (0-35 points total):
1. BRAND CLARITY (0-15): Value prop clear?
2. TRUST (0-15): Evidence/Social proof?
3. SENTIMENT (0-5): Positive recommendation?
RETURN JSON with: ai_judgment_score (total, breakdown), industry, company_tier, detected_issues, fix_list.`

const reputationPrompt = `You are an AI Visibility Analyst.
CRITICAL: The website '%s' BLOCKED our scraper.
However, this is a KNOWN GLOBAL MARKET LEADER (Titan).
Task:
1. Ignore the missing text.
2. Rate their "Brand Clarity" and "Trust" based on their REAL-WORLD reputation.
3. Score them VERY HIGH (30-35/35).
RETURN JSON with: ai_judgment_score (total, breakdown), industry, company_tier, detected_issues, fix_list.`

// promptWindow bounds how much page text goes into the prompt.
const promptWindow = 2500

// Evaluate asks the provider chain for a judgment. It never returns an
// error; provider failures fall through to the next provider and finally
// to DefaultResult.
func (j *Judge) Evaluate(ctx context.Context, in Input) Result {
	prompt := j.buildPrompt(in)

	for _, p := range j.providers {
		raw, err := j.call(ctx, p, prompt)
		if err != nil {
			if j.verbose {
				log.Printf("[JUDGMENT] provider %s failed: %v", p.Name(), err)
			}
			continue
		}
		res, err := parseResult(raw)
		if err != nil {
			if j.verbose {
				log.Printf("[JUDGMENT] provider %s returned invalid payload: %v", p.Name(), err)
			}
			continue
		}
		res.Source = p.Name()
		return res
	}
	return DefaultResult()
}

func (j *Judge) buildPrompt(in Input) string {
	if in.Reputation {
		return fmt.Sprintf(reputationPrompt, in.URL)
	}
	text := in.Text
	if len(text) > promptWindow {
		text = text[:promptWindow]
	}
	return fmt.Sprintf(standardPrompt, in.URL, in.Title, text, in.MathTotal)
}

func (j *Judge) call(ctx context.Context, p Provider, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, j.callTimeout)
	defer cancel()
	return p.GenerateJSON(callCtx, prompt)
}

// parseResult validates and decodes a raw provider payload. The judged
// total gets a +5 calibration lift, capped at MaxAIScore; LLMs grade
// harshly against their own rubric.
func parseResult(raw string) (Result, error) {
	if err := validatePayload(raw); err != nil {
		return Result{}, err
	}

	var decoded struct {
		JudgmentScore  JudgmentScore    `json:"ai_judgment_score"`
		Industry       string           `json:"industry"`
		CompanyTier    string           `json:"company_tier"`
		DetectedIssues []string         `json:"detected_issues"`
		FixList        []report.FixItem `json:"fix_list"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return Result{}, fmt.Errorf("decode judgment payload: %w", err)
	}

	aiScore := decoded.JudgmentScore.Total + 5
	if aiScore > MaxAIScore {
		aiScore = MaxAIScore
	}
	if aiScore < 0 {
		aiScore = 0
	}

	res := Result{
		AIScore:        aiScore,
		JudgmentScore:  decoded.JudgmentScore,
		Industry:       decoded.Industry,
		CompanyTier:    decoded.CompanyTier,
		DetectedIssues: decoded.DetectedIssues,
		FixList:        decoded.FixList,
	}
	if res.Industry == "" {
		res.Industry = "General"
	}
	if res.CompanyTier == "" {
		res.CompanyTier = "unknown"
	}
	if res.DetectedIssues == nil {
		res.DetectedIssues = []string{}
	}
	if res.FixList == nil {
		res.FixList = []report.FixItem{}
	}
	return res, nil
}

// InputFromMath is a convenience for building an Input from a math result.
func InputFromMath(url, title, text string, math scoring.MathScoreResult, reputation bool) Input {
	return Input{
		URL:        url,
		Title:      title,
		Text:       text,
		MathTotal:  math.Total,
		Reputation: reputation,
	}
}
