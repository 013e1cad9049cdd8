package fetcher

import (
	"net/url"
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Rates held steady - Example News</title></head>
<body>
<nav>Home | Politics | Business</nav>
<script>trackPageview();</script>
<article>
<h1>Rates held steady</h1>
<p>The central bank left its benchmark interest rate unchanged on Wednesday,
citing easing inflation and a resilient labor market in its statement.</p>
<p>Analysts had widely expected the decision after three consecutive pauses,
and officials signaled that future moves depend on incoming data.</p>
</article>
<footer>Copyright Example News</footer>
</body>
</html>`

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) error: %v", raw, err)
	}
	return u
}

func TestExtractDocument(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://WWW.Example.com/business/rates")
	doc, err := ExtractDocument(pageURL, []byte(articleHTML))
	if err != nil {
		t.Fatalf("ExtractDocument() error: %v", err)
	}

	if doc.Domain != "example.com" {
		t.Fatalf("expected normalized domain example.com, got %q", doc.Domain)
	}
	if !strings.Contains(doc.Title, "Rates held steady") {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if !strings.Contains(doc.BodyText, "benchmark interest rate") {
		t.Fatalf("body text missing article content: %q", doc.BodyText)
	}
	if strings.Contains(doc.BodyText, "trackPageview") {
		t.Fatalf("script content leaked into body text")
	}
}

func TestExtractDocumentNoTitle(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>A lone paragraph with no title element at all.</p></body></html>`
	doc, err := ExtractDocument(mustParse(t, "https://example.org/x"), []byte(html))
	if err != nil {
		t.Fatalf("ExtractDocument() error: %v", err)
	}

	if doc.Title != fallbackTitle {
		t.Fatalf("expected fallback title, got %q", doc.Title)
	}
	if !strings.Contains(doc.BodyText, "lone paragraph") {
		t.Fatalf("expected paragraph text, got %q", doc.BodyText)
	}
}

func TestExtractDocumentEmptyPage(t *testing.T) {
	t.Parallel()

	doc, err := ExtractDocument(mustParse(t, "https://example.org/empty"), []byte("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("ExtractDocument() error: %v", err)
	}

	// An empty page is degenerate input for the analyzers, not an error here.
	if doc.BodyText != "" {
		t.Fatalf("expected empty body text, got %q", doc.BodyText)
	}
	if doc.Title != fallbackTitle {
		t.Fatalf("expected fallback title, got %q", doc.Title)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	got := normalizeWhitespace("  one\n\ttwo   three \n")
	if got != "one two three" {
		t.Fatalf("normalizeWhitespace() = %q", got)
	}
}
