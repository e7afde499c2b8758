package repository

import (
	"context"

	"github.com/newsbrief/newsbrief/internal/llm"
	"github.com/newsbrief/newsbrief/internal/profile"
)

type SummarizerRepository interface {
	Summarize(ctx context.Context, articleText string, length profile.LengthProfile, baseLanguage bool) (string, error)
}

type summarizerRepository struct {
	client *llm.Client
}

func NewSummarizerRepository(client *llm.Client) SummarizerRepository {
	return &summarizerRepository{
		client: client,
	}
}

func (s *summarizerRepository) Summarize(ctx context.Context, articleText string, length profile.LengthProfile, baseLanguage bool) (string, error) {
	return s.client.Summarize(ctx, articleText, length, baseLanguage)
}
