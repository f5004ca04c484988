package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amplifyai/amplify-backend/internal/report"
)

// ScanCacheTTL is how long a stored scan result satisfies repeat requests
// for the same URL.
const ScanCacheTTL = 24 * time.Hour

// SaveScanResult stores a completed analysis. The full report is kept as
// JSON alongside the flattened columns the dashboard queries directly.
func (db *DB) SaveScanResult(ctx context.Context, leadID uuid.UUID, url string, rep report.FinalReport) error {
	if !db.enabled() {
		return nil
	}

	raw, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal scan result: %w", err)
	}

	gap := rep.Benchmark - rep.Score
	if gap < 0 {
		gap = 0
	}

	var lead any
	if leadID != uuid.Nil {
		lead = leadID
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO scan_results
		 (lead_id, url, industry, archetype, total_score, technical_score,
		  ai_score, authority_score, vibe_score, benchmark_gap, raw_analysis_json)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		lead, url, rep.Industry, string(rep.Archetype), rep.Score,
		rep.Breakdown.Technical, rep.Breakdown.AIJudgment,
		rep.Breakdown.Authority, rep.Breakdown.Content, gap, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save scan result: %w", err)
	}
	return nil
}

// GetCachedScan returns the most recent stored report for a URL within
// ScanCacheTTL, or nil on a miss. The returned report is marked cached.
func (db *DB) GetCachedScan(ctx context.Context, url string) (*report.FinalReport, error) {
	if !db.enabled() {
		return nil, nil
	}

	cutoff := time.Now().UTC().Add(-ScanCacheTTL)

	var raw []byte
	var createdAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT raw_analysis_json, created_at FROM scan_results
		 WHERE url ILIKE $1 AND created_at >= $2
		 ORDER BY created_at DESC LIMIT 1`,
		"%"+CleanURL(url)+"%", cutoff,
	).Scan(&raw, &createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query scan cache: %w", err)
	}

	var rep report.FinalReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, fmt.Errorf("failed to decode cached scan: %w", err)
	}
	rep.Cached = true
	rep.CachedAt = createdAt.UTC().Format(time.RFC3339)
	return &rep, nil
}

// ScanLog is one row of scan timing and outcome metrics.
type ScanLog struct {
	URL          string
	Duration     time.Duration
	ScrapeStatus string
	AIStatus     string
	CacheStatus  string
	FinalScore   int
}

// LogScan records scan metrics. Failures are swallowed; metrics must not
// break a scan.
func (db *DB) LogScan(ctx context.Context, entry ScanLog) {
	if !db.enabled() {
		return
	}

	_, _ = db.pool.Exec(ctx,
		`INSERT INTO scan_logs
		 (url, total_duration_ms, scrape_status, ai_status, cache_status, final_score)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.URL, entry.Duration.Milliseconds(), entry.ScrapeStatus,
		entry.AIStatus, entry.CacheStatus, entry.FinalScore,
	)
}

// ScanSummary is one scan row as shown on the internal dashboard.
type ScanSummary struct {
	URL          string    `json:"url"`
	Industry     string    `json:"industry"`
	Archetype    string    `json:"archetype"`
	TotalScore   int       `json:"total_score"`
	BenchmarkGap int       `json:"benchmark_gap"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListRecentScans returns the most recent scans, newest first.
func (db *DB) ListRecentScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	if !db.enabled() {
		return nil, fmt.Errorf("database not configured")
	}

	rows, err := db.pool.Query(ctx,
		`SELECT url, industry, archetype, total_score, benchmark_gap, created_at
		 FROM scan_results
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []ScanSummary
	for rows.Next() {
		var s ScanSummary
		if err := rows.Scan(&s.URL, &s.Industry, &s.Archetype, &s.TotalScore, &s.BenchmarkGap, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// CleanURL canonicalizes a URL for cache matching: scheme and www
// stripped, lowercased, trailing slash removed.
func CleanURL(url string) string {
	clean := strings.ToLower(url)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	clean = strings.TrimPrefix(clean, "www.")
	return strings.TrimRight(clean, "/")
}
