package repository

import (
	"context"

	"github.com/newsbrief/newsbrief/internal/llm"
	"github.com/newsbrief/newsbrief/internal/profile"
)

type TranslatorRepository interface {
	Translate(ctx context.Context, summaryText string, lang profile.LanguageProfile) (string, error)
}

type translatorRepository struct {
	client *llm.Client
}

func NewTranslatorRepository(client *llm.Client) TranslatorRepository {
	return &translatorRepository{
		client: client,
	}
}

func (t *translatorRepository) Translate(ctx context.Context, summaryText string, lang profile.LanguageProfile) (string, error) {
	return t.client.Translate(ctx, summaryText, lang)
}
