package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/newsbrief/newsbrief/internal/profile"
	"github.com/newsbrief/newsbrief/internal/repository"
)

// Summary orchestrates one summarization request:
// validate -> extract -> summarize -> translate (optional).
type Summary struct {
	extractor  repository.ExtractorRepository
	summarizer repository.SummarizerRepository
	translator repository.TranslatorRepository
}

func NewSummary(
	extractor repository.ExtractorRepository,
	summarizer repository.SummarizerRepository,
	translator repository.TranslatorRepository,
) *Summary {
	return &Summary{
		extractor:  extractor,
		summarizer: summarizer,
		translator: translator,
	}
}

// Request carries the caller's choices. Empty Language and SummaryLength
// fall back to the defaults.
type Request struct {
	URL           string
	Language      string
	SummaryLength string
}

// Result is the terminal artifact of one request. Nothing is cached or
// stored server-side.
type Result struct {
	Summary  string
	Language profile.LanguageProfile
	Length   profile.LengthProfile
}

// Process runs the request pipeline. No step is retried; the first failure
// fails the whole request, including translation failures after a usable
// base-language summary already exists.
func (s *Summary) Process(ctx context.Context, req Request) (*Result, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	if strings.TrimSpace(req.URL) == "" {
		return nil, &ValidationError{Message: "URL is required"}
	}

	languageKey := req.Language
	if languageKey == "" {
		languageKey = profile.BaseLanguageKey
	}
	lang, ok := profile.LookupLanguage(languageKey)
	if !ok {
		return nil, &ValidationError{Message: "Invalid language selected"}
	}

	lengthKey := req.SummaryLength
	if lengthKey == "" {
		lengthKey = profile.DefaultLengthKey
	}
	length, ok := profile.LookupLength(lengthKey)
	if !ok {
		return nil, &ValidationError{Message: "Invalid summary length selected"}
	}

	logger.Printf("Summary processing started url=%s language=%s length=%s", req.URL, lang.Key, length.Key)

	// Extraction phase
	extractStart := time.Now()
	article, err := s.extractor.Extract(ctx, req.URL)
	if err != nil {
		logger.Printf("Error extracting article from %s: %v", req.URL, err)
		return nil, &ExtractionError{URL: req.URL, Err: err}
	}
	extractDuration := time.Since(extractStart)

	// Summarization phase, always in the base language
	summarizeStart := time.Now()
	summaryText, err := s.summarizer.Summarize(ctx, article.Text, length, lang.IsBase())
	if err != nil {
		logger.Printf("Error summarizing article from %s: %v", req.URL, err)
		return nil, &UpstreamError{Op: "summarizing article", Err: err}
	}
	summarizeDuration := time.Since(summarizeStart)

	// Translation phase, skipped entirely for the base language
	var translateDuration time.Duration
	if !lang.IsBase() {
		translateStart := time.Now()
		translated, err := s.translator.Translate(ctx, summaryText, lang)
		if err != nil {
			logger.Printf("Error translating summary for %s into %s: %v", req.URL, lang.Key, err)
			return nil, &UpstreamError{Op: "translating summary", Err: err}
		}
		summaryText = translated
		translateDuration = time.Since(translateStart)
	}

	totalDuration := time.Since(startTime)
	logger.Printf("Summary processing completed url=%s total_duration_ms=%d extract_duration_ms=%d summarize_duration_ms=%d translate_duration_ms=%d",
		req.URL, totalDuration.Milliseconds(), extractDuration.Milliseconds(), summarizeDuration.Milliseconds(), translateDuration.Milliseconds())

	return &Result{
		Summary:  summaryText,
		Language: lang,
		Length:   length,
	}, nil
}
