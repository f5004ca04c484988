package scoring

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// ComputeMathScore runs all five extractors plus URL variance and returns
// the clamped 0-60 aggregate with its full breakdown.
func ComputeMathScore(html, text, url string) MathScoreResult {
	return computeMathScoreAt(html, text, url, time.Now())
}

func computeMathScoreAt(html, text, url string, now time.Time) MathScoreResult {
	// Extractors are independent; the HTML ones each parse their own
	// document, so run them concurrently.
	var breakdown Breakdown
	var g errgroup.Group
	g.Go(func() error { breakdown.Technical = Technical(html, url); return nil })
	g.Go(func() error { breakdown.Content = Content(text); return nil })
	g.Go(func() error { breakdown.Authority = Authority(html, text, now); return nil })
	g.Go(func() error { breakdown.AIDiscoverability = Discoverability(html, text); return nil })
	g.Go(func() error { breakdown.Answerability = Answerability(text); return nil })
	_ = g.Wait()

	base := breakdown.Technical.Score +
		breakdown.Content.Score +
		breakdown.Authority.Score +
		breakdown.AIDiscoverability.Score +
		breakdown.Answerability.Score

	variance := URLVariance(url)

	return MathScoreResult{
		Total:     clamp(base+variance, 0, MaxTotal),
		Max:       MaxTotal,
		Variance:  variance,
		Breakdown: breakdown,
	}
}
