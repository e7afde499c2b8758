package mocks

import (
	"context"

	"github.com/newsbrief/newsbrief/internal/profile"
)

// Mock Summarizer Repository
type MockSummarizerRepo struct {
	SummarizeCalls   int
	LastText         string
	LastLength       profile.LengthProfile
	LastBaseLanguage bool
	Summary          string
	Err              error
}

func (m *MockSummarizerRepo) Summarize(ctx context.Context, articleText string, length profile.LengthProfile, baseLanguage bool) (string, error) {
	m.SummarizeCalls++
	m.LastText = articleText
	m.LastLength = length
	m.LastBaseLanguage = baseLanguage
	if m.Err != nil {
		return "", m.Err
	}
	if m.Summary != "" {
		return m.Summary, nil
	}
	return "- test summary", nil
}

// Mock Translator Repository
type MockTranslatorRepo struct {
	TranslateCalls int
	LastText       string
	LastLanguage   profile.LanguageProfile
	Translated     string
	Err            error
}

func (m *MockTranslatorRepo) Translate(ctx context.Context, summaryText string, lang profile.LanguageProfile) (string, error) {
	m.TranslateCalls++
	m.LastText = summaryText
	m.LastLanguage = lang
	if m.Err != nil {
		return "", m.Err
	}
	if m.Translated != "" {
		return m.Translated, nil
	}
	return "- translated summary", nil
}
