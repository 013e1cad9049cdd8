package analyzer

import (
	"fmt"
	"strings"

	"credcheck/internal/domain"
)

const (
	// Clickbait only makes the summary once it is loud enough to matter.
	findingClickbaitThreshold = 30
	// Above this subjectivity the content reads as opinion, not reporting.
	findingSubjectivityThreshold = 0.6
)

// GenerateFindings summarizes the strongest contributing factors in a fixed
// priority order: source first (always), then clickbait, top quality issue,
// and sentiment. The order never depends on map iteration.
func GenerateFindings(a domain.Analysis) []string {
	findings := []string{sourceFinding(a.SourceCredibility)}

	if a.Clickbait.Score > findingClickbaitThreshold && len(a.Clickbait.Indicators) > 0 {
		top := a.Clickbait.Indicators
		if len(top) > 2 {
			top = top[:2]
		}
		findings = append(findings, "Clickbait indicators detected: "+strings.Join(top, ", "))
	}

	if len(a.TextQuality.Issues) > 0 && a.TextQuality.Issues[0] != noQualityIssuesNote {
		findings = append(findings, fmt.Sprintf("Text quality issues: %s", a.TextQuality.Issues[0]))
	}

	if a.Sentiment.Subjectivity > findingSubjectivityThreshold {
		findings = append(findings, "Content is highly subjective/opinion-based")
	}

	return findings
}

func sourceFinding(src domain.SourceCredibilityResult) string {
	switch src.Classification {
	case domain.SourceCredible:
		return "Source is a well-established news organization"
	case domain.SourceQuestionable:
		return "Source has a history of publishing misleading content"
	default:
		return "Source reputation could not be verified"
	}
}
