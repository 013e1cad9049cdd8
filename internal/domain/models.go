package domain

// Document holds the normalized content of a fetched page. It is built once
// by the fetcher and never mutated afterwards.
type Document struct {
	URL      string `json:"url"`
	Domain   string `json:"domain"` // apex host, lower-cased, "www." stripped
	Title    string `json:"title"`
	BodyText string `json:"body_text"`
}

// SourceClassification is the verdict of the reputation lookup.
type SourceClassification string

const (
	SourceCredible     SourceClassification = "Credible"
	SourceQuestionable SourceClassification = "Questionable"
	SourceUnknown      SourceClassification = "Unknown"
)

// SourceCredibilityResult scores a domain against the curated reputation tables.
type SourceCredibilityResult struct {
	Score          int                  `json:"score"`
	Classification SourceClassification `json:"classification"`
	Note           string               `json:"note"`
}

// ClickbaitResult scores a title for sensationalism. Indicators are listed
// in rule evaluation order, so repeated runs produce identical output.
type ClickbaitResult struct {
	Score      int      `json:"score"`
	Indicators []string `json:"indicators"`
}

// TextQualityResult scores body text, higher meaning better quality.
// Issues is never empty; a single informational entry stands in when
// nothing triggered.
type TextQualityResult struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// SentimentResult holds the raw sentiment estimate. Polarity is in [-1,1],
// subjectivity in [0,1]. Scoring decisions happen in the aggregator.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// WarningLevel is derived solely from the credibility score.
type WarningLevel string

const (
	WarningSafe       WarningLevel = "safe"
	WarningSuspicious WarningLevel = "suspicious"
	WarningDangerous  WarningLevel = "dangerous"
)

// WarningResult is the user-facing classification of a credibility score.
type WarningResult struct {
	Level   WarningLevel `json:"level"`
	Label   string       `json:"label"`
	Message string       `json:"message"`
	Color   string       `json:"color"`
}

// Analysis groups the four sub-analyzer results.
type Analysis struct {
	SourceCredibility SourceCredibilityResult `json:"source_credibility"`
	Clickbait         ClickbaitResult         `json:"clickbait"`
	TextQuality       TextQualityResult       `json:"text_quality"`
	Sentiment         SentimentResult         `json:"sentiment"`
}

// AnalysisResult is the complete verdict for one Document. Immutable once
// assembled; one instance per analyzed Document.
type AnalysisResult struct {
	URL              string        `json:"url"`
	Title            string        `json:"title"`
	Domain           string        `json:"domain"`
	CredibilityScore int           `json:"credibility_score"`
	Warning          WarningResult `json:"warning"`
	Analysis         Analysis      `json:"analysis"`
	KeyFindings      []string      `json:"key_findings"`
}

// AnalysisError records a per-item failure, typically reported by the
// fetch/parse layer before the scoring core was reached.
type AnalysisError struct {
	URL     string `json:"url,omitempty"`
	Message string `json:"error"`
}

func (e *AnalysisError) Error() string {
	return e.Message
}

// BatchItem is one slot of a batch response: either a result or an error,
// never both. Slots keep the order and length of the submitted batch.
type BatchItem struct {
	Result *AnalysisResult
	Err    *AnalysisError
}

// FetchOutcome is what the fetch layer hands the orchestrator per batch
// slot: a parsed Document or the error that prevented one.
type FetchOutcome struct {
	URL string
	Doc *Document
	Err error
}
