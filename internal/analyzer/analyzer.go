package analyzer

import (
	"fmt"
	"sync"

	"credcheck/internal/domain"
)

// DefaultMaxBatchSize caps how many documents one batch call may carry.
const DefaultMaxBatchSize = 10

// Analyzer orchestrates the four heuristic analyzers and the aggregation
// pipeline. It holds only read-only state (reputation tables, sentiment
// lexicon), so one instance serves concurrent callers without locking.
type Analyzer struct {
	tables       *ReputationTables
	sentiment    *SentimentEstimator
	maxBatchSize int
}

// New builds an Analyzer around the given reputation tables. Nil tables
// fall back to the built-in curated lists; a non-positive maxBatchSize
// falls back to DefaultMaxBatchSize.
func New(tables *ReputationTables, maxBatchSize int) *Analyzer {
	if tables == nil {
		tables = DefaultReputationTables()
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &Analyzer{
		tables:       tables,
		sentiment:    NewSentimentEstimator(),
		maxBatchSize: maxBatchSize,
	}
}

// MaxBatchSize returns the configured batch cap.
func (a *Analyzer) MaxBatchSize() int {
	return a.maxBatchSize
}

// Analyze scores a single Document. The four sub-analyzers share no mutable
// state and have no ordering dependency; identical input yields identical
// output on every call.
func (a *Analyzer) Analyze(doc *domain.Document) *domain.AnalysisResult {
	analysis := domain.Analysis{
		SourceCredibility: a.tables.AnalyzeSource(doc.Domain),
		Clickbait:         AnalyzeClickbait(doc.Title),
		TextQuality:       AnalyzeTextQuality(doc.BodyText),
		Sentiment:         a.sentiment.Estimate(doc.BodyText),
	}

	score := AggregateScore(analysis)

	return &domain.AnalysisResult{
		URL:              doc.URL,
		Title:            doc.Title,
		Domain:           doc.Domain,
		CredibilityScore: score,
		Warning:          ClassifyWarning(score),
		Analysis:         analysis,
		KeyFindings:      GenerateFindings(analysis),
	}
}

// AnalyzeBatch scores up to maxBatchSize fetch outcomes. The returned slice
// has the same length and order as the input; a failed slot carries the
// upstream error untouched and never disturbs its siblings. Oversized
// batches are rejected before any item is analyzed.
func (a *Analyzer) AnalyzeBatch(items []domain.FetchOutcome) ([]domain.BatchItem, error) {
	if len(items) > a.maxBatchSize {
		return nil, domain.NewValidationError(
			fmt.Sprintf("maximum %d URLs allowed per batch", a.maxBatchSize))
	}

	results := make([]domain.BatchItem, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item domain.FetchOutcome) {
			defer wg.Done()
			results[i] = a.analyzeItem(item)
		}(i, item)
	}
	wg.Wait()

	return results, nil
}

func (a *Analyzer) analyzeItem(item domain.FetchOutcome) domain.BatchItem {
	if item.Err != nil {
		if analysisErr, ok := item.Err.(*domain.AnalysisError); ok {
			return domain.BatchItem{Err: analysisErr}
		}
		return domain.BatchItem{Err: &domain.AnalysisError{URL: item.URL, Message: item.Err.Error()}}
	}
	return domain.BatchItem{Result: a.Analyze(item.Doc)}
}
