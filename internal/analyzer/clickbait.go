package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"credcheck/internal/domain"
)

// clickbaitRule is one independent title check. Rules run in slice order so
// the indicators list is stable across runs.
type clickbaitRule struct {
	weight int
	test   func(title string) (bool, string)
}

var listicleRe = regexp.MustCompile(`\b\d+\b`)

var clickbaitPhrases = []string{
	"you won't believe", "shocking", "this one trick",
	"doctors hate", "what happened next", "the truth about",
	"they don't want you to know", "mind-blowing",
}

const (
	capsWordRatioThreshold = 0.3
	minHeadlineLength      = 20
	maxHeadlineLength      = 120
)

var clickbaitRules = []clickbaitRule{
	{weight: 15, test: func(title string) (bool, string) {
		return strings.Count(title, "!") > 1, "Excessive exclamation marks"
	}},
	{weight: 20, test: func(title string) (bool, string) {
		words := strings.Fields(title)
		if len(words) == 0 {
			return false, ""
		}
		caps := 0
		for _, w := range words {
			if utf8.RuneCountInString(w) > 1 && isAllCaps(w) {
				caps++
			}
		}
		ratio := float64(caps) / float64(len(words))
		return caps >= 2 && ratio >= capsWordRatioThreshold, "Excessive capitalization"
	}},
	{weight: 25, test: func(title string) (bool, string) {
		lower := strings.ToLower(title)
		for _, phrase := range clickbaitPhrases {
			if strings.Contains(lower, phrase) {
				return true, fmt.Sprintf("Clickbait phrase: %q", phrase)
			}
		}
		return false, ""
	}},
	{weight: 5, test: func(title string) (bool, string) {
		return strings.Contains(title, "?"), "Question-based headline"
	}},
	{weight: 10, test: func(title string) (bool, string) {
		return listicleRe.MatchString(title), "Number-based headline (listicle)"
	}},
	{weight: 10, test: func(title string) (bool, string) {
		n := utf8.RuneCountInString(strings.TrimSpace(title))
		return n > 0 && (n < minHeadlineLength || n > maxHeadlineLength), "Unusual headline length"
	}},
}

// isAllCaps reports whether a word is entirely upper-case, ignoring
// punctuation like apostrophes. Words with no letters don't count.
func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// AnalyzeClickbait scores a title for sensationalism. The score is the
// clamped sum of triggered rule weights; more triggered rules never lower it.
func AnalyzeClickbait(title string) domain.ClickbaitResult {
	score := 0
	indicators := []string{}

	for _, rule := range clickbaitRules {
		if hit, label := rule.test(title); hit {
			score += rule.weight
			indicators = append(indicators, label)
		}
	}

	return domain.ClickbaitResult{
		Score:      clampScore(score),
		Indicators: indicators,
	}
}
