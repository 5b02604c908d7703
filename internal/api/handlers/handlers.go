// Package handlers implements the HTTP handlers for the FarmAssist
// server. The analyze handler is the single place that maps pipeline
// outcomes to HTTP status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/farmassist/farmassist/server/internal/config"
	"github.com/farmassist/farmassist/server/internal/diagnosis"
	"github.com/farmassist/farmassist/server/internal/places"
	"github.com/farmassist/farmassist/server/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Handlers holds all handler dependencies.
type Handlers struct {
	Pipeline *diagnosis.Pipeline
	Places   *places.Client
	Upload   config.UploadConfig
}

// New creates a Handlers instance with all dependencies.
func New(p *diagnosis.Pipeline, pc *places.Client, upload config.UploadConfig) *Handlers {
	return &Handlers{
		Pipeline: p,
		Places:   pc,
		Upload:   upload,
	}
}

// ── Analyze ─────────────────────────────────────────────────

// Analyze accepts a multipart leaf-image upload, runs the diagnosis
// pipeline, and returns the structured result. The uploaded image is
// spooled to a temp file owned by this request and removed on every
// exit path.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	analysisID := uuid.New().String()
	w.Header().Set("X-Analysis-Id", analysisID)

	if err := r.ParseMultipartForm(h.Upload.MaxBytes); err != nil {
		analyzeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		analyzeError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp(h.Upload.Dir, "leaf-*")
	if err != nil {
		log.Error().Err(err).Msg("Failed to create upload temp file")
		analyzeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		log.Error().Err(err).Msg("Failed to spool upload")
		analyzeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmp.Close()

	image, err := os.ReadFile(tmpPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read spooled upload")
		analyzeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	log.Info().
		Str("analysis_id", analysisID).
		Str("filename", header.Filename).
		Int("bytes", len(image)).
		Msg("Analyzing leaf image")

	result := h.Pipeline.Analyze(r.Context(), image, mimeType)
	switch result.Code {
	case diagnosis.CodeOK:
		respondJSON(w, http.StatusOK, models.AnalyzeResponse{
			Success:  true,
			Analysis: result.Diagnosis,
		})
	case diagnosis.CodeNotAPlant:
		analyzeError(w, http.StatusBadRequest, "The uploaded image does not appear to be a plant leaf")
	case diagnosis.CodeRateLimited:
		analyzeError(w, http.StatusTooManyRequests, "Vision service rate limit reached. Please try again later.")
	case diagnosis.CodeUpstreamError, diagnosis.CodeInvalidResponse:
		analyzeError(w, http.StatusInternalServerError, "AI analysis unavailable")
	case diagnosis.CodeUnparseable:
		analyzeError(w, http.StatusInternalServerError, "AI analysis could not be interpreted")
	default:
		log.Error().Int("code", int(result.Code)).Msg("Unhandled pipeline outcome")
		analyzeError(w, http.StatusInternalServerError, "Internal error")
	}
}

// ── Nearby shops ────────────────────────────────────────────

// NearbyShops proxies the places search and returns agro-input shops
// within 5 km of the given coordinate.
func (h *Handlers) NearbyShops(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr == "" || lngStr == "" {
		respondError(w, http.StatusBadRequest, "Location required")
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		respondError(w, http.StatusBadRequest, "Invalid location")
		return
	}

	shops, err := h.Places.NearbyAgroShops(r.Context(), lat, lng)
	if err != nil {
		var statusErr *places.StatusError
		if errors.As(err, &statusErr) {
			// Pass the upstream signal through rather than hiding it.
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error":  statusErr.Error(),
				"status": statusErr.Status,
			})
			return
		}
		log.Error().Err(err).Msg("Places lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch shops")
		return
	}

	respondJSON(w, http.StatusOK, shops)
}

// ── Helpers ─────────────────────────────────────────────────

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// analyzeError writes the analyze endpoint's envelope, which carries a
// success flag alongside the error text.
func analyzeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.AnalyzeResponse{Success: false, Error: message})
}
