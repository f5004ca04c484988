package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amplifyai/amplify-backend/internal/judgment"
	"github.com/amplifyai/amplify-backend/internal/report"
)

// Context carries everything the copywriting prompt needs about a scan.
type Context struct {
	URL            string   `json:"url"`
	BrandName      string   `json:"brand_name"`
	Industry       string   `json:"industry"`
	CompanyTier    string   `json:"company_tier"`
	Score          int      `json:"score"`
	Benchmark      int      `json:"benchmark"`
	Gap            int      `json:"gap"`
	Breakdown      report.Breakdown `json:"breakdown"`
	DetectedIssues []string `json:"detected_issues"`
	Detection      Detection `json:"detection"`
}

// BuildContext assembles the copywriting context from scan outputs.
func BuildContext(url, text, industry, tier string, score, benchmark int, breakdown report.Breakdown, issues []string) Context {
	gap := benchmark - score
	if gap < 0 {
		gap = 0
	}
	return Context{
		URL:            url,
		BrandName:      BrandName(url),
		Industry:       industry,
		CompanyTier:    tier,
		Score:          score,
		Benchmark:      benchmark,
		Gap:            gap,
		Breakdown:      breakdown,
		DetectedIssues: issues,
		Detection:      Detect(text),
	}
}

// Messaging is the persona-targeted dashboard copy block.
type Messaging struct {
	PainHook       string `json:"pain_hook"`
	ContextWhy     string `json:"context_why"`
	DreamOutcome   string `json:"dream_outcome"`
	CompetitorLine string `json:"competitor_line"`
	CTAButton      string `json:"cta_button"`
	CTASubtext     string `json:"cta_subtext"`
	UrgencyLine    string `json:"urgency_line"`
}

// Copy is the generated dashboard copy payload.
type Copy struct {
	Messaging      Messaging        `json:"messaging"`
	RecoveryCauses []report.FixItem `json:"recovery_causes"`
}

const copyPrompt = `Act as a Conversion Copywriter. Write dashboard copy for a user who just scanned their website.

USER PROFILE:
- Role/Persona: %s
- Industry: %s
- Website: %s (%s)
- Score: %d/100 (Benchmark: %d)
- Key Issues:
%s

TASK:
Generate a JSON response with 4 specific copy blocks.
Tone: Urgent, professional, authoritative. No fluff.

REQUIRED JSON STRUCTURE:
{
    "messaging": {
        "pain_hook": "1 sentence. Visceral pain point specific to their persona.",
        "context_why": "1 sentence explaining WHY they are losing traffic.",
        "dream_outcome": "1 sentence promising the result of fixing it.",
        "competitor_line": "Specific comparison (e.g. '3 competitors dominate this keyword').",
        "cta_button": "Action-oriented button text.",
        "cta_subtext": "Reassurance text under button.",
        "urgency_line": "Scarcity or urgency trigger."
    },
    "recovery_causes": [
        { "title": "Fix Title", "priority": "high", "description": "Fix description", "impact_metric": "Metric", "status": "pending" },
        { "title": "Fix Title", "priority": "high", "description": "Fix description", "impact_metric": "Metric", "status": "pending" },
        { "title": "Fix Title", "priority": "medium", "description": "Fix description", "impact_metric": "Metric", "status": "pending" }
    ]
}`

// Generator produces persona copy via the judgment provider chain.
type Generator struct {
	providers   []judgment.Provider
	callTimeout time.Duration
	verbose     bool
}

// NewGenerator builds a copy generator over an ordered provider chain.
func NewGenerator(providers []judgment.Provider, callTimeout time.Duration, verbose bool) *Generator {
	if callTimeout <= 0 {
		callTimeout = judgment.DefaultCallTimeout
	}
	return &Generator{providers: providers, callTimeout: callTimeout, verbose: verbose}
}

// Generate writes the persona copy. It never returns an error; if every
// provider fails it falls back to generic copy so the dashboard always has
// something to show.
func (g *Generator) Generate(ctx context.Context, c Context) Copy {
	prompt := buildCopyPrompt(c)

	for _, p := range g.providers {
		callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
		raw, err := p.GenerateJSON(callCtx, prompt)
		cancel()
		if err != nil {
			if g.verbose {
				log.Printf("[PERSONA] provider %s failed: %v", p.Name(), err)
			}
			continue
		}

		var out Copy
		if err := json.Unmarshal([]byte(raw), &out); err != nil || out.Messaging.PainHook == "" {
			if g.verbose {
				log.Printf("[PERSONA] provider %s returned unusable copy", p.Name())
			}
			continue
		}
		return out
	}
	return FallbackCopy(c)
}

func buildCopyPrompt(c Context) string {
	role := strings.ToUpper(strings.ReplaceAll(string(c.Detection.Persona), "_", " "))

	issues := c.DetectedIssues
	if len(issues) > 5 {
		issues = issues[:5]
	}
	var lines []string
	for _, issue := range issues {
		lines = append(lines, "- "+issue)
	}
	if len(lines) == 0 {
		lines = []string{"- No specific issues detected"}
	}

	return fmt.Sprintf(copyPrompt,
		role, c.Industry, c.BrandName, c.URL, c.Score, c.Benchmark,
		strings.Join(lines, "\n"))
}

// FallbackCopy is the generic copy used when generation fails.
func FallbackCopy(c Context) Copy {
	return Copy{
		Messaging: Messaging{
			PainHook:       fmt.Sprintf("Your competitors in %s are capturing your traffic.", c.Industry),
			ContextWhy:     "AI search engines cannot read your key value propositions.",
			DreamOutcome:   "Recover lost revenue by fixing your digital footprint.",
			CompetitorLine: "Market leaders score 85+ on this benchmark.",
			CTAButton:      "Unlock Recovery Plan",
			CTASubtext:     "Free strategy session included.",
			UrgencyLine:    "Limited audit slots available this week.",
		},
		RecoveryCauses: []report.FixItem{
			{Title: "Fix AI Indexing Errors", Priority: report.PriorityHigh, Description: "Ensure bots can read your site.", Status: "pending"},
			{Title: "Optimize Schema Data", Priority: report.PriorityHigh, Description: "Help AI understand your pricing.", Status: "pending"},
			{Title: "Boost Domain Authority", Priority: report.PriorityMedium, Description: "Increase trust signals.", Status: "pending"},
		},
	}
}
