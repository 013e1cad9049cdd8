package analyzer

import (
	"math"

	"credcheck/internal/domain"
)

// Aggregation weights. Tunable constants, not laws of nature: the sentiment
// term treats strongly emotional, highly subjective copy as a credibility
// penalty because it correlates with lower objectivity.
const (
	sourceWeight    = 0.35
	clickbaitWeight = 0.25
	qualityWeight   = 0.20
	sentimentWeight = 0.20

	polarityPenalty     = 30
	subjectivityPenalty = 20
)

// AggregateScore folds the four sub-results into one credibility score.
// Pure and deterministic; clickbait and sentiment extremity enter inverted,
// as penalties.
func AggregateScore(a domain.Analysis) int {
	sentimentScore := 100 -
		math.Abs(a.Sentiment.Polarity)*polarityPenalty -
		a.Sentiment.Subjectivity*subjectivityPenalty
	if sentimentScore < 0 {
		sentimentScore = 0
	}

	credibility := float64(a.SourceCredibility.Score)*sourceWeight +
		float64(100-a.Clickbait.Score)*clickbaitWeight +
		float64(a.TextQuality.Score)*qualityWeight +
		sentimentScore*sentimentWeight

	return clampScore(int(math.Round(credibility)))
}

// Warning thresholds. Contiguous bands covering [0,100] with no gaps.
const (
	safeThreshold       = 70
	suspiciousThreshold = 40
)

// ClassifyWarning maps a credibility score to its warning band. Monotonic:
// a higher score never yields a worse level.
func ClassifyWarning(score int) domain.WarningResult {
	switch {
	case score >= safeThreshold:
		return domain.WarningResult{
			Level:   domain.WarningSafe,
			Label:   "Likely Credible",
			Message: "This content appears to be from a credible source with reliable information.",
			Color:   "#10b981",
		}
	case score >= suspiciousThreshold:
		return domain.WarningResult{
			Level:   domain.WarningSuspicious,
			Label:   "Verify Carefully",
			Message: "This content shows some indicators of potential misinformation. Verify with multiple sources.",
			Color:   "#f59e0b",
		}
	default:
		return domain.WarningResult{
			Level:   domain.WarningDangerous,
			Label:   "High Risk",
			Message: "This content shows multiple indicators of misinformation or fake news. Exercise extreme caution.",
			Color:   "#ef4444",
		}
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
