// Package pipeline orchestrates a single brand visibility analysis:
// cache check, scrape, brand lookup, math score, AI judgment, floor,
// dashboard fields, async persona copy, persistence.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amplifyai/amplify-backend/internal/brands"
	"github.com/amplifyai/amplify-backend/internal/db"
	"github.com/amplifyai/amplify-backend/internal/fetch"
	"github.com/amplifyai/amplify-backend/internal/industry"
	"github.com/amplifyai/amplify-backend/internal/judgment"
	"github.com/amplifyai/amplify-backend/internal/persona"
	"github.com/amplifyai/amplify-backend/internal/report"
	"github.com/amplifyai/amplify-backend/internal/scoring"
)

// personaTimeout bounds the background copy generation, which runs
// detached from the request context.
const personaTimeout = 30 * time.Second

// Scraper fetches a page and classifies the outcome.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) *fetch.Result
}

// Evaluator produces the AI judgment for a scored page.
type Evaluator interface {
	Evaluate(ctx context.Context, in judgment.Input) judgment.Result
}

// CopyGenerator produces persona-targeted dashboard copy.
type CopyGenerator interface {
	Generate(ctx context.Context, c persona.Context) persona.Copy
}

// Analyzer runs the full analysis flow. The database may be nil; scans
// still complete, they just aren't cached or persisted.
type Analyzer struct {
	scraper Scraper
	judge   Evaluator
	copier  CopyGenerator
	cache   *persona.Cache
	db      *db.DB
	verbose bool
}

// Options configures an Analyzer.
type Options struct {
	Scraper Scraper
	Judge   Evaluator
	Copier  CopyGenerator
	Cache   *persona.Cache
	DB      *db.DB
	Verbose bool
}

// NewAnalyzer creates an Analyzer. Scraper, Judge, Copier and Cache are
// required; DB is optional.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		scraper: opts.Scraper,
		judge:   opts.Judge,
		copier:  opts.Copier,
		cache:   opts.Cache,
		db:      opts.DB,
		verbose: opts.Verbose,
	}
}

// Analyze runs one analysis for a URL. It never fails: every path ends
// in a report the dashboard can render, including blocked and unreachable
// sites. The email attributes the scan to a lead; empty means guest.
func (a *Analyzer) Analyze(ctx context.Context, rawURL, email string) report.FinalReport {
	start := time.Now()

	if cached := a.lookupCache(ctx, rawURL); cached != nil {
		a.logScan(ctx, rawURL, start, "cached", "cached", "hit", cached.Score)
		return *cached
	}

	scrape := a.scraper.Scrape(ctx, rawURL)
	brand, known := brands.Lookup(rawURL)

	var html, text, title string
	blockedFamous := false
	switch {
	case scrape.Status == fetch.StatusSuccess:
		html, text, title = scrape.HTML, scrape.Text, scrape.Title
	case known:
		// Famous site blocked the scraper. Score its reputation off a
		// synthetic stand-in page instead of punishing the block.
		if a.verbose {
			log.Printf("[PIPELINE] blocked but famous: %s, using synthetic content", rawURL)
		}
		blockedFamous = true
		text = fmt.Sprintf("Official website of %s. Global market leader in %s.", rawURL, brand.Industry)
		title = rawURL + " - Official Site"
	default:
		rep := securityFortressReport()
		a.persist(ctx, email, rawURL, rep)
		a.logScan(ctx, rawURL, start, string(scrape.Status), "skipped", "miss", rep.Score)
		return rep
	}

	var math scoring.MathScoreResult
	if blockedFamous {
		math = report.SyntheticMathResult()
	} else {
		math = scoring.ComputeMathScore(html, text, rawURL)
	}
	ai := a.judge.Evaluate(ctx, judgment.InputFromMath(rawURL, title, text, math, blockedFamous))

	var brandRec *brands.Record
	if known {
		brandRec = &brand
	}
	outcome := report.AggregateFinal(math, ai.AIScore, ai.FixList, brandRec)
	if outcome.FloorApplied && a.verbose {
		log.Printf("[PIPELINE] brand floor applied: %s -> %d", rawURL, outcome.Score)
	}

	tier, industryName := resolveTierAndIndustry(brandRec, text, ai)
	validated := industry.ValidateIndustry(industryName, text)
	bench := industry.BenchmarkFor(validated)
	revMsg := industry.RevenueMessageFor(outcome.Score, validated, tier)

	rep := report.FinalReport{
		Score:          outcome.Score,
		Archetype:      industry.ClassifyArchetype(outcome.Score, tier),
		Industry:       validated,
		Benchmark:      bench.Benchmark,
		RevenueRisk:    revMsg.ValueDisplay,
		RevenueMessage: revMsg,
		CompanyTier:    tier,
		Breakdown:      report.FlattenBreakdown(outcome.Math, ai.AIScore),
		DetectedIssues: ai.DetectedIssues,
		FixList:        outcome.FixList,
	}

	a.firePersona(rawURL, persona.BuildContext(
		rawURL, text, validated, string(tier),
		rep.Score, rep.Benchmark, rep.Breakdown, rep.DetectedIssues,
	))

	a.persist(ctx, email, rawURL, rep)
	a.logScan(ctx, rawURL, start, string(scrape.Status), ai.Source, "miss", rep.Score)
	return rep
}

// resolveTierAndIndustry picks the authoritative tier and industry.
// Registry beats content signals beats the model's guess.
func resolveTierAndIndustry(brand *brands.Record, text string, ai judgment.Result) (brands.Tier, string) {
	if brand != nil {
		return brand.Tier, brand.Industry
	}
	tier := brands.DetectTierFromContent(text)
	if tier == brands.TierUnknown {
		tier = brands.Tier(ai.CompanyTier)
	}
	return tier, ai.Industry
}

// securityFortressReport is returned for unknown sites that block every
// fetch path: unmeasurable, so invisible to AI answer engines.
func securityFortressReport() report.FinalReport {
	return report.FinalReport{
		Score:       15,
		Archetype:   "Security Fortress",
		Industry:    "High Security",
		Benchmark:   98,
		RevenueRisk: "AI Invisibility",
		CompanyTier: brands.TierUnknown,
		Breakdown:   report.Breakdown{Technical: 5, Content: 10},
		FixList:     []report.FixItem{},
	}
}

// firePersona marks the persona entry processing and generates the copy
// in the background. Generation never fails; the fallback copy is still
// a ready entry.
func (a *Analyzer) firePersona(rawURL string, c persona.Context) {
	hash := persona.URLHash(rawURL)
	a.cache.SetProcessing(hash)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), personaTimeout)
		defer cancel()
		a.cache.SetReady(hash, a.copier.Generate(ctx, c))
		if a.verbose {
			log.Printf("[PIPELINE] persona copy ready for %s", hash)
		}
	}()
}

// PersonaEntry resolves a persona cache entry. The identifier may be the
// URL hash or the raw URL; dashboards send both.
func (a *Analyzer) PersonaEntry(identifier string) (persona.Entry, bool) {
	if entry, ok := a.cache.Get(identifier); ok {
		return entry, true
	}
	return a.cache.Get(persona.URLHash(identifier))
}

// GeneratePersonaCopy generates persona copy synchronously and caches it
// under the context URL's hash.
func (a *Analyzer) GeneratePersonaCopy(ctx context.Context, c persona.Context) persona.Copy {
	cp := a.copier.Generate(ctx, c)
	a.cache.SetReady(persona.URLHash(c.URL), cp)
	return cp
}

func (a *Analyzer) lookupCache(ctx context.Context, rawURL string) *report.FinalReport {
	cached, err := a.db.GetCachedScan(ctx, rawURL)
	if err != nil {
		log.Printf("[PIPELINE] cache lookup failed for %s: %v", rawURL, err)
		return nil
	}
	return cached
}

func (a *Analyzer) persist(ctx context.Context, email, rawURL string, rep report.FinalReport) {
	leadID, err := a.db.TouchLead(ctx, email)
	if err != nil {
		log.Printf("[PIPELINE] lead upsert failed: %v", err)
	}
	if err := a.db.SaveScanResult(ctx, leadID, rawURL, rep); err != nil {
		log.Printf("[PIPELINE] scan save failed: %v", err)
	}
}

func (a *Analyzer) logScan(ctx context.Context, rawURL string, start time.Time, scrapeStatus, aiStatus, cacheStatus string, score int) {
	a.db.LogScan(ctx, db.ScanLog{
		URL:          rawURL,
		Duration:     time.Since(start),
		ScrapeStatus: scrapeStatus,
		AIStatus:     aiStatus,
		CacheStatus:  cacheStatus,
		FinalScore:   score,
	})
}
