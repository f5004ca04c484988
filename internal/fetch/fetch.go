// Package fetch retrieves and cleans website content for scoring. It tries
// a plain HTTP fetch first and falls back to headless browser rendering for
// JavaScript-heavy or bot-hostile sites.
package fetch

import (
	"context"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for the first-pass fetch.
const DefaultTimeout = 8 * time.Second

// BrowserTimeout bounds the headless-browser fallback.
const BrowserTimeout = 15 * time.Second

// DefaultUserAgent impersonates a desktop browser. Plain bot agents get
// blocked by most commercial sites.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Content caps keep scoring input and stored payloads bounded.
const (
	MaxHTMLBytes = 50000
	MaxTextBytes = 6000
)

// minHTTPTextLength is the cleaned-text threshold below which the HTTP
// result is treated as unrendered and the browser fallback kicks in.
const minHTTPTextLength = 500

// minRenderedTextLength is the threshold below which even a rendered page
// counts as empty.
const minRenderedTextLength = 100

// Status classifies a scrape outcome. Blocked and empty are ordinary
// outcomes the pipeline handles, not errors.
type Status string

const (
	StatusSuccess Status = "success"
	StatusBlocked Status = "blocked"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// Method records which fetch path produced the content.
type Method string

const (
	MethodHTTP    Method = "http"
	MethodBrowser Method = "browser"
)

// Result holds the scraped page in both raw and cleaned form.
type Result struct {
	URL        string
	Status     Status
	StatusCode int
	HTML       string
	Text       string
	Title      string
	Method     Method
}

// Options configures the scraper.
type Options struct {
	Timeout        time.Duration
	BrowserTimeout time.Duration
	UserAgent      string
	Verbose        bool
}

// DefaultOptions returns the production scraper configuration.
func DefaultOptions() *Options {
	return &Options{
		Timeout:        DefaultTimeout,
		BrowserTimeout: BrowserTimeout,
		UserAgent:      DefaultUserAgent,
	}
}

// renderFunc renders a page in a browser and returns the HTML. Injected so
// tests can run without Chrome.
type renderFunc func(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error)

// Scraper fetches and cleans pages. The zero value is not usable; use New.
type Scraper struct {
	opts   *Options
	client *http.Client
	render renderFunc
}

// New returns a Scraper with the given options, or defaults when nil.
func New(opts *Options) *Scraper {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Scraper{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		render: WithBrowser,
	}
}

// Scrape retrieves a page. It never returns an error for blocked or empty
// sites; those come back as Result statuses so the pipeline can apply its
// own handling. The returned error is reserved for programmer mistakes
// like an unparseable URL.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) *Result {
	url := rawURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	if res := s.tryHTTP(ctx, url); res != nil {
		return res
	}
	return s.tryBrowser(ctx, url)
}

func (s *Scraper) tryHTTP(ctx context.Context, url string) *Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[SCRAPE] http fetch failed for %s: %v", url, err)
		}
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if s.opts.Verbose {
			log.Printf("[SCRAPE] http status %d for %s, trying browser", resp.StatusCode, url)
		}
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	html := string(body)
	text, title := CleanHTML(html)
	if len(text) <= minHTTPTextLength {
		// Likely an SPA shell; render it properly.
		return nil
	}

	return &Result{
		URL:        url,
		Status:     StatusSuccess,
		StatusCode: resp.StatusCode,
		HTML:       truncate(html, MaxHTMLBytes),
		Text:       truncate(text, MaxTextBytes),
		Title:      title,
		Method:     MethodHTTP,
	}
}

func (s *Scraper) tryBrowser(ctx context.Context, url string) *Result {
	html, err := s.render(ctx, url, s.opts.BrowserTimeout, s.opts.Verbose)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[SCRAPE] browser rendering failed for %s: %v", url, err)
		}
		return &Result{URL: url, Status: StatusBlocked, StatusCode: http.StatusForbidden}
	}

	text, title := CleanHTML(html)
	if len(text) < minRenderedTextLength {
		return &Result{URL: url, Status: StatusEmpty, StatusCode: http.StatusNoContent}
	}

	return &Result{
		URL:        url,
		Status:     StatusSuccess,
		StatusCode: http.StatusOK,
		HTML:       truncate(html, MaxHTMLBytes),
		Text:       truncate(text, MaxTextBytes),
		Title:      title,
		Method:     MethodBrowser,
	}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanHTML strips boilerplate elements and returns the page's visible
// text with collapsed whitespace, plus the title.
func CleanHTML(html string) (text, title string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, nav, footer, noscript").Remove()
	text = whitespaceRE.ReplaceAllString(doc.Text(), " ")
	return strings.TrimSpace(text), title
}

// truncate cuts s at a rune boundary at or below limit bytes.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}
