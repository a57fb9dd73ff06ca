// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/models"
	"github.com/raksha-net/relay/internal/validation"
)

// sanitizeLogValue removes control characters from strings before they
// reach a log line, so a crafted header or body field cannot forge log
// entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondRaw writes an arbitrary payload as JSON at the top level. The
// alert endpoints use this: their response shapes are a compatibility
// contract and are not wrapped in the envelope.
func respondRaw(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondJSON sends an enveloped JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an enveloped error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// validateRequest validates a struct with go-playground/validator and
// converts failures to the API error format.
func validateRequest(v interface{}) *models.APIError {
	reqErr := validation.Struct(v)
	if reqErr == nil {
		return nil
	}
	return &models.APIError{
		Code:    "VALIDATION_ERROR",
		Message: reqErr.Error(),
		Details: reqErr.Details(),
	}
}

// decodeBody decodes a JSON request body into dst. Per the permissive
// input policy an empty or unparseable body is not an error: dst keeps
// its zero value, the pipeline's defaults take over, and the request is
// never rejected. A malformed body is still worth a log line.
func decodeBody(r *http.Request, dst interface{}) {
	if r.Body == nil {
		return
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Warn().
			Err(err).
			Str("path", r.URL.Path).
			Msg("unparseable request body, proceeding with defaults")
	}
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getFloatParam extracts a float query parameter; ok reports whether the
// parameter was present and parseable.
func getFloatParam(r *http.Request, key string) (float64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
