package analyzer

import (
	"strings"

	"github.com/jonreiter/govader"

	"credcheck/internal/domain"
)

// SentimentEstimator wraps the VADER lexicon analyzer. It only estimates;
// how sentiment affects credibility is the aggregator's business.
type SentimentEstimator struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewSentimentEstimator builds an estimator with the embedded VADER lexicon.
func NewSentimentEstimator() *SentimentEstimator {
	return &SentimentEstimator{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Estimate returns polarity in [-1,1] and subjectivity in [0,1] for the
// given text. Empty text yields the neutral zero estimate.
func (e *SentimentEstimator) Estimate(text string) domain.SentimentResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.SentimentResult{}
	}

	scores := e.vader.PolarityScores(text)

	// VADER has no subjectivity notion; the proportion of non-neutral
	// tokens is a workable stand-in for opinion-vs-fact framing.
	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return domain.SentimentResult{
		Polarity:     clampFloat(scores.Compound, -1, 1),
		Subjectivity: clampFloat(subjectivity, 0, 1),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
