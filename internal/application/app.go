package application

import (
	"fmt"
	"time"

	"github.com/newsbrief/newsbrief/internal/extractor"
	"github.com/newsbrief/newsbrief/internal/infrastructure"
	"github.com/newsbrief/newsbrief/internal/llm"
	"github.com/newsbrief/newsbrief/internal/repository"
	"github.com/newsbrief/newsbrief/internal/service"
	"github.com/newsbrief/newsbrief/internal/transport/handler"
)

// Application holds the configuration and request handlers with all
// dependencies wired.
type Application struct {
	Config           *infrastructure.Config
	SummaryService   *service.Summary
	HomeHandler      *handler.Home
	TestHandler      *handler.Test
	SummarizeHandler *handler.Summarize
	cleanup          func() error
}

// New creates a new application instance with all dependencies.
func New() (*Application, error) {
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Clients for the three network calls
	extractorClient := extractor.NewClient(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Repositories
	extractorRepo := repository.NewExtractorRepository(extractorClient)
	summarizerRepo := repository.NewSummarizerRepository(llmClient)
	translatorRepo := repository.NewTranslatorRepository(llmClient)

	// Services (business logic)
	summaryService := service.NewSummary(extractorRepo, summarizerRepo, translatorRepo)

	// Handlers (HTTP layer)
	homeHandler := handler.NewHome()
	testHandler := handler.NewTest()
	summarizeHandler := handler.NewSummarize(summaryService)

	return &Application{
		Config:           cfg,
		SummaryService:   summaryService,
		HomeHandler:      homeHandler,
		TestHandler:      testHandler,
		SummarizeHandler: summarizeHandler,
		cleanup:          func() error { return nil },
	}, nil
}

// Close cleans up application resources.
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
