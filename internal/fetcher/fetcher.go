package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"credcheck/internal/domain"
)

const (
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxBodySize = 10 << 20 // 10 MiB
)

// Fetcher retrieves a page over HTTP and parses it into a Document.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

func New(timeout time.Duration, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch downloads rawURL and extracts title, body text and the normalized
// apex domain. All network and parse failures surface as errors; scoring
// never starts on a partial Document.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("failed to fetch content: status %d", resp.StatusCode)
	}

	html, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	doc, err := ExtractDocument(parsed, html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	f.logger.Debug("fetched document",
		zap.String("url", rawURL),
		zap.String("domain", doc.Domain),
		zap.Int("body_len", len(doc.BodyText)),
	)
	return doc, nil
}
