package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/newsbrief/newsbrief/internal/profile"
)

const (
	summaryTemperature     = 0.3
	translationTemperature = 0.2

	// Translation output ceiling is fixed and independent of the length tier.
	translationMaxOutputTokens = 2000

	// Article text sent to the model is clamped to this many bytes.
	maxArticleBytes = 10000
)

const summarizerSystemPrompt = `You are a news summarizer. Summarize the article provided by the user as short bullet points, one per line, each starting with "- ". Report only facts stated in the article; do not speculate or add information that is not in the text.`

// Appended to the system prompt when the caller requested a non-base output
// language. Summaries are always generated in English and translated in a
// separate step afterward.
const summarizerTranslationNote = ` The summary will be translated into the requested language in a separate step, so always write it in English.`

const translatorSystemPrompt = `You are a professional translator. Translate the text provided by the user, preserving its bullet-point structure, formatting, and tone. Output only the translated text with no commentary.`

// Client calls the chat-completion backend for summarization and translation.
type Client struct {
	client openai.Client
	model  string
}

// NewClient creates a new language-model client. An empty API key is allowed;
// it surfaces as a request failure on first use rather than a startup error.
func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		client: openai.NewClient(options...),
		model:  model,
	}
}

// Summarize generates a bullet-point summary of articleText sized by the
// length profile. The summary is always generated in the base language;
// baseLanguage only steers the prompt wording.
func (c *Client) Summarize(ctx context.Context, articleText string, length profile.LengthProfile, baseLanguage bool) (string, error) {
	text := strings.TrimSpace(articleText)
	if text == "" {
		return "", fmt.Errorf("article text is required")
	}
	if len(text) > maxArticleBytes {
		text = text[:maxArticleBytes]
	}

	system := summarizerSystemPrompt
	if !baseLanguage {
		system += summarizerTranslationNote
	}

	user := length.BulletInstruction + "\n\nArticle:\n" + text

	return c.complete(ctx, system, user, length.MaxOutputTokens, summaryTemperature)
}

// Translate converts a finished summary into the profile's target language.
// For the base language it is a pure passthrough and makes no backend call.
func (c *Client) Translate(ctx context.Context, summaryText string, lang profile.LanguageProfile) (string, error) {
	if lang.IsBase() {
		return summaryText, nil
	}

	user := lang.TranslationInstruction + "\n\n" + summaryText

	return c.complete(ctx, translatorSystemPrompt, user, translationMaxOutputTokens, translationTemperature)
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty content in chat completion response")
	}

	return out, nil
}
