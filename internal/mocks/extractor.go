package mocks

import (
	"context"

	"github.com/newsbrief/newsbrief/internal/extractor"
)

// Mock Extractor Repository
type MockExtractorRepo struct {
	ExtractCalls int
	LastURL      string
	Article      *extractor.Article
	Err          error
}

func (m *MockExtractorRepo) Extract(ctx context.Context, url string) (*extractor.Article, error) {
	m.ExtractCalls++
	m.LastURL = url
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Article != nil {
		return m.Article, nil
	}
	return &extractor.Article{Title: "Test Article", Text: "test article text"}, nil
}
