package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GuestEmail is attributed to scans submitted without an email address.
const GuestEmail = "guest_user@amplify.ai"

// Lead is a captured dashboard lead.
type Lead struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name"`
	Subscribed  bool      `json:"is_subscribed"`
}

// TouchLead upserts a lead by email, stamps its last scan time, and
// returns the lead ID.
func (db *DB) TouchLead(ctx context.Context, email string) (uuid.UUID, error) {
	if !db.enabled() {
		return uuid.Nil, nil
	}
	if email == "" {
		email = GuestEmail
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO leads (email, last_scan_at, marketing_source)
		 VALUES ($1, NOW(), 'web_scan')
		 ON CONFLICT (email) DO UPDATE SET last_scan_at = NOW()
		 RETURNING id`,
		email,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert lead: %w", err)
	}
	return id, nil
}

// CaptureLead upserts a fully-identified, subscribed lead.
func (db *DB) CaptureLead(ctx context.Context, email, fullName, companyName string) error {
	if !db.enabled() {
		return fmt.Errorf("database not configured")
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO leads (email, full_name, company_name, is_subscribed)
		 VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (email) DO UPDATE
		 SET full_name = $2, company_name = $3, is_subscribed = TRUE`,
		email, fullName, companyName,
	)
	if err != nil {
		return fmt.Errorf("failed to capture lead: %w", err)
	}
	return nil
}

// ListLeads returns the most recently touched leads.
func (db *DB) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	if !db.enabled() {
		return nil, fmt.Errorf("database not configured")
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, email, COALESCE(full_name, ''), COALESCE(company_name, ''), COALESCE(is_subscribed, FALSE)
		 FROM leads
		 ORDER BY last_scan_at DESC NULLS LAST
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Email, &l.FullName, &l.CompanyName, &l.Subscribed); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
