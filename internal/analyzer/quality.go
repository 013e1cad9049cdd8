package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"credcheck/internal/domain"
)

const (
	minBodyLength       = 100
	insufficientScore   = 30
	noQualityIssuesNote = "No major quality issues detected"
)

// qualityCheck is one body-text red flag. Checks run in slice order, most
// severe deduction first, so the issues list leads with the worst finding.
type qualityCheck struct {
	deduction int
	issue     string
	test      func(s *bodyStats) bool
}

var qualityChecks = []qualityCheck{
	{20, "Excessive capitalization", func(s *bodyStats) bool {
		return s.capsRatio > 0.1
	}},
	{20, "Highly repetitive content", func(s *bodyStats) bool {
		return s.uniqueWordRatio < 0.3
	}},
	{15, "Unusually short sentences", func(s *bodyStats) bool {
		return s.sentenceCount > 0 && s.avgSentenceLen < 5
	}},
	{15, "Run-on sentences", func(s *bodyStats) bool {
		return s.sentenceCount > 0 && s.avgSentenceLen > 40
	}},
	{10, "Excessive punctuation", func(s *bodyStats) bool {
		return s.shoutingRatio > 0.02
	}},
	{10, "Possible spelling anomalies", func(s *bodyStats) bool {
		return s.stretchedWords >= 3
	}},
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// hasStretchedRun reports a run of three or more identical letters, the
// "soooo good" pattern informal or sloppy copy tends to carry.
func hasStretchedRun(word string) bool {
	var prev rune
	run := 0
	for _, r := range word {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// bodyStats carries the derived metrics the quality checks read. Computing
// them once keeps each check trivial and the whole pass a single scan.
type bodyStats struct {
	capsRatio       float64
	uniqueWordRatio float64
	avgSentenceLen  float64
	sentenceCount   int
	shoutingRatio   float64
	stretchedWords  int
}

// AnalyzeTextQuality scores body text, higher meaning better quality.
// Degenerate input never errors: an empty or too-short body yields a
// minimal score with an "Insufficient content" issue.
func AnalyzeTextQuality(body string) domain.TextQualityResult {
	body = strings.TrimSpace(body)
	if len(body) < minBodyLength {
		return domain.TextQualityResult{
			Score:  insufficientScore,
			Issues: []string{"Insufficient content"},
		}
	}

	stats := computeBodyStats(body)

	score := 100
	issues := []string{}
	for _, check := range qualityChecks {
		if check.test(stats) {
			score -= check.deduction
			issues = append(issues, check.issue)
		}
	}
	if len(issues) == 0 {
		issues = append(issues, noQualityIssuesNote)
	}

	return domain.TextQualityResult{
		Score:  clampScore(score),
		Issues: issues,
	}
}

func computeBodyStats(body string) *bodyStats {
	stats := &bodyStats{}

	upper, letters, shouting := 0, 0, 0
	for _, r := range body {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if r == '!' || r == '?' {
			shouting++
		}
	}
	if letters > 0 {
		stats.capsRatio = float64(upper) / float64(letters)
	}
	stats.shoutingRatio = float64(shouting) / float64(len(body))

	// Word repetition over a bounded window keeps long articles cheap.
	words := strings.Fields(body)
	window := words
	if len(window) > 200 {
		window = window[:200]
	}
	seen := make(map[string]struct{}, len(window))
	for _, w := range window {
		seen[strings.ToLower(w)] = struct{}{}
	}
	if len(window) > 0 {
		stats.uniqueWordRatio = float64(len(seen)) / float64(len(window))
	}

	for _, w := range words {
		if hasStretchedRun(w) {
			stats.stretchedWords++
		}
	}

	sample := body
	if len(sample) > 1000 {
		sample = sample[:1000]
	}
	totalWords := 0
	for _, sentence := range sentenceSplitRe.Split(sample, -1) {
		n := len(strings.Fields(sentence))
		if n == 0 {
			continue
		}
		stats.sentenceCount++
		totalWords += n
	}
	if stats.sentenceCount > 0 {
		stats.avgSentenceLen = float64(totalWords) / float64(stats.sentenceCount)
	}

	return stats
}
