package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/newsbrief/newsbrief/internal/service"
	"github.com/newsbrief/newsbrief/internal/transport/response"
)

// Summarize handles the summarize endpoint: fetch, extract, summarize, and
// optionally translate one article per request.
type Summarize struct {
	summaryService *service.Summary
}

func NewSummarize(summaryService *service.Summary) *Summarize {
	return &Summarize{
		summaryService: summaryService,
	}
}

type summarizeRequest struct {
	URL           string `json:"url"`
	Language      string `json:"language"`
	SummaryLength string `json:"summaryLength"`
}

func (h *Summarize) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	result, err := h.summaryService.Process(r.Context(), service.Request{
		URL:           req.URL,
		Language:      req.Language,
		SummaryLength: req.SummaryLength,
	})
	if err != nil {
		writeProcessError(w, err)
		return
	}

	response.WriteSummary(w, result.Summary)
}

// writeProcessError maps pipeline failures onto the JSON error shape.
// Validation and extraction problems are the caller's to fix; everything
// else is a service-side failure.
func writeProcessError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		response.WriteBadRequest(w, validationErr.Message)
		return
	}

	var extractionErr *service.ExtractionError
	if errors.As(err, &extractionErr) {
		response.WriteBadRequest(w, fmt.Sprintf("Failed to process the article at %s", extractionErr.URL))
		return
	}

	response.WriteInternalError(w, "Failed to generate summary", err.Error())
}
