package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/amplifyai/amplify-backend/internal/persona"
	"github.com/amplifyai/amplify-backend/internal/report"
)

// AnalyzeRequest is the request body for /analyze.
type AnalyzeRequest struct {
	URL   string `json:"url" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// PersonaCopyRequest is the request body for /generate-persona-copy. It
// carries the scan outputs the dashboard already holds so copy can be
// regenerated without rescanning.
type PersonaCopyRequest struct {
	URL            string           `json:"url" validate:"required"`
	Score          int              `json:"score" validate:"min=0,max=100"`
	Industry       string           `json:"industry" validate:"required"`
	CompanyTier    string           `json:"company_tier" validate:"required"`
	Benchmark      int              `json:"benchmark" validate:"min=0,max=100"`
	Breakdown      report.Breakdown `json:"breakdown"`
	DetectedIssues []string         `json:"detected_issues"`
	Text           string           `json:"text"`
}

// LeadCaptureRequest is the request body for /capture-lead.
type LeadCaptureRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

// PersonaResponse is the response for /persona/{identifier}.
type PersonaResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Data    *persona.Entry `json:"data,omitempty"`
}

// decodeAndValidate decodes a JSON body and runs struct validation,
// converting failures into typed validation errors.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ErrValidation{Field: verrs[0].Field(), Message: "failed " + verrs[0].Tag() + " validation"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleAnalyze runs a full visibility scan for a URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if info := s.rateLimiter.Allow(ip); !info.Allowed {
		s.rateLimitResponse(w, info)
		return
	}

	var req AnalyzeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Printf("[SERVER] scanning %s", req.URL)
	rep := s.service.Analyze(r.Context(), req.URL, req.Email)
	s.jsonResponse(w, http.StatusOK, rep)
}

// handleGetPersona returns cached persona copy. The identifier may be a
// URL hash or a raw URL; both arrive from the dashboard.
func (s *Server) handleGetPersona(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	entry, ok := s.service.PersonaEntry(identifier)
	if !ok {
		s.jsonResponse(w, http.StatusOK, PersonaResponse{Status: "not_found", Message: "No persona data"})
		return
	}
	s.jsonResponse(w, http.StatusOK, PersonaResponse{Status: "ready", Data: &entry})
}

// handleGeneratePersonaCopy generates persona copy synchronously from a
// prior scan's outputs.
func (s *Server) handleGeneratePersonaCopy(w http.ResponseWriter, r *http.Request) {
	var req PersonaCopyRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	c := persona.BuildContext(
		req.URL, req.Text, req.Industry, req.CompanyTier,
		req.Score, req.Benchmark, req.Breakdown, req.DetectedIssues,
	)
	s.jsonResponse(w, http.StatusOK, s.service.GeneratePersonaCopy(r.Context(), c))
}

// handleCaptureLead stores a fully-identified lead.
func (s *Server) handleCaptureLead(w http.ResponseWriter, r *http.Request) {
	var req LeadCaptureRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.CaptureLead(r.Context(), req.Email, req.FullName, req.CompanyName); err != nil {
		log.Printf("[SERVER] lead capture failed: %v", err)
		s.jsonResponse(w, http.StatusOK, map[string]string{"status": "error"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "success"})
}

// handleListScans returns recent scan results for the internal dashboard.
func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	scans, err := s.db.ListRecentScans(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list scans: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"scans": scans})
}

// handleListLeads returns captured leads for the internal dashboard.
func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.db.ListLeads(r.Context(), 100)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list leads: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"leads": leads})
}
