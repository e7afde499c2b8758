package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Article holds the readable text extracted from one fetched page.
type Article struct {
	Title string
	Text  string
}

// Client fetches a page and isolates the main article body.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new content extraction client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "Mozilla/5.0 (compatible; Article Summarizer Bot/1.0)",
	}
}

// Extract fetches rawURL and returns the readable article text. It fails when
// the URL is not absolute, the fetch fails, or no article body can be found.
// There is no partial or degraded extraction mode.
func (c *Client) Extract(ctx context.Context, rawURL string) (*Article, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if !pageURL.IsAbs() || (pageURL.Scheme != "http" && pageURL.Scheme != "https") {
		return nil, fmt.Errorf("URL %q is not an absolute http(s) URL", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	stripNonContent(doc)

	cleaned, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing cleaned HTML: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), pageURL)
	if err != nil {
		return nil, fmt.Errorf("extracting article body: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("no readable article content found at %s", pageURL)
	}

	return &Article{
		Title: strings.TrimSpace(article.Title),
		Text:  text,
	}, nil
}

// stripNonContent removes structural regions that never belong to the article
// body before the readability pass sees the document.
func stripNonContent(doc *goquery.Document) {
	doc.Find("script, style, noscript, template, svg").Remove()
	doc.Find("nav, header, footer, aside, form, iframe, embed, object, video, audio").Remove()

	// Ad, comment, share, and related-article regions by class/id substring.
	doc.Find("[class*='advert'], [id*='advert'], [class*='sponsor'], [class*='promo']").Remove()
	doc.Find("[class*='comment'], [id*='comment'], [class*='discussion'], [id*='discussion']").Remove()
	doc.Find("[class*='share'], [id*='share'], [class*='social'], [id*='social']").Remove()
	doc.Find("[class*='related'], [id*='related'], [class*='recommend'], [class*='newsletter']").Remove()
}
