package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"credcheck/internal/domain"
)

// ReputationTables holds the curated domain sets the source analyzer
// matches against. Loaded once at startup and treated as read-only from
// then on, so concurrent lookups need no locking.
type ReputationTables struct {
	Credible     map[string]struct{}
	Questionable map[string]struct{}
}

type reputationFile struct {
	Credible     []string `yaml:"credible"`
	Questionable []string `yaml:"questionable"`
}

var defaultCredibleSources = []string{
	"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
	"npr.org", "pbs.org", "theguardian.com", "nytimes.com",
	"washingtonpost.com", "wsj.com", "economist.com",
}

var defaultQuestionableSources = []string{
	"infowars.com", "naturalnews.com", "beforeitsnews.com",
}

// DefaultReputationTables returns the built-in curated source lists.
func DefaultReputationTables() *ReputationTables {
	return newReputationTables(defaultCredibleSources, defaultQuestionableSources)
}

// LoadReputationTables reads a YAML file with `credible` and `questionable`
// domain lists, replacing the built-in defaults.
func LoadReputationTables(path string) (*ReputationTables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reputation file: %w", err)
	}
	var file reputationFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse reputation file: %w", err)
	}
	if len(file.Credible) == 0 && len(file.Questionable) == 0 {
		return nil, fmt.Errorf("reputation file %s lists no domains", path)
	}
	return newReputationTables(file.Credible, file.Questionable), nil
}

func newReputationTables(credible, questionable []string) *ReputationTables {
	t := &ReputationTables{
		Credible:     make(map[string]struct{}, len(credible)),
		Questionable: make(map[string]struct{}, len(questionable)),
	}
	for _, d := range credible {
		t.Credible[domain.NormalizeDomain(d)] = struct{}{}
	}
	for _, d := range questionable {
		t.Questionable[domain.NormalizeDomain(d)] = struct{}{}
	}
	return t
}

const (
	credibleSourceScore     = 90
	questionableSourceScore = 20
	unknownSourceScore      = 50
)

// AnalyzeSource looks a normalized apex domain up in the reputation tables.
// A miss is a normal outcome, never an error.
func (t *ReputationTables) AnalyzeSource(domainName string) domain.SourceCredibilityResult {
	key := domain.NormalizeDomain(domainName)

	if _, ok := t.Credible[key]; ok {
		return domain.SourceCredibilityResult{
			Score:          credibleSourceScore,
			Classification: domain.SourceCredible,
			Note:           "Well-established news organization",
		}
	}
	if _, ok := t.Questionable[key]; ok {
		return domain.SourceCredibilityResult{
			Score:          questionableSourceScore,
			Classification: domain.SourceQuestionable,
			Note:           "Known for publishing misleading content",
		}
	}
	return domain.SourceCredibilityResult{
		Score:          unknownSourceScore,
		Classification: domain.SourceUnknown,
		Note:           "No reputation data available",
	}
}
