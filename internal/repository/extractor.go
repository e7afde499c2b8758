package repository

import (
	"context"

	"github.com/newsbrief/newsbrief/internal/extractor"
)

type ExtractorRepository interface {
	Extract(ctx context.Context, url string) (*extractor.Article, error)
}

type extractorRepository struct {
	client *extractor.Client
}

func NewExtractorRepository(client *extractor.Client) ExtractorRepository {
	return &extractorRepository{
		client: client,
	}
}

func (e *extractorRepository) Extract(ctx context.Context, url string) (*extractor.Article, error) {
	return e.client.Extract(ctx, url)
}
