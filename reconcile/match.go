// Package reconcile matches imported bank transactions to categorization
// rules.
package reconcile

import (
	"strings"
	"unicode/utf8"

	"propdesk/model"

	"github.com/agnivade/levenshtein"
)

const (
	ExactConfidence    = 1.0
	ContainsConfidence = 0.9
	// FuzzyThreshold is the lowest similarity a fuzzy rule accepts.
	FuzzyThreshold = 0.6
)

// Similarity is 1 minus the edit distance over the longer length, compared
// case-insensitively. Two empty strings are identical.
func Similarity(a, b string) float64 {
	a, b = strings.ToUpper(strings.TrimSpace(a)), strings.ToUpper(strings.TrimSpace(b))
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// fuzzySimilarity compares the pattern with the whole description and with
// every run of words as long as the pattern, keeping the best score.
func fuzzySimilarity(pattern, description string) float64 {
	best := Similarity(pattern, description)
	n := len(strings.Fields(pattern))
	words := strings.Fields(description)
	if n == 0 || n >= len(words) {
		return best
	}
	for i := 0; i+n <= len(words); i++ {
		if s := Similarity(pattern, strings.Join(words[i:i+n], " ")); s > best {
			best = s
		}
	}
	return best
}

// Score reports how confidently rule matches description.
func Score(rule model.ReconciliationRule, description string) (float64, bool) {
	pattern := strings.TrimSpace(rule.Pattern)
	if pattern == "" {
		return 0, false
	}
	switch rule.MatchType {
	case model.MatchTypeExact:
		if strings.EqualFold(pattern, strings.TrimSpace(description)) {
			return ExactConfidence, true
		}
	case model.MatchTypeContains:
		if strings.Contains(strings.ToUpper(description), strings.ToUpper(pattern)) {
			return ContainsConfidence, true
		}
	case model.MatchTypeFuzzy:
		if s := fuzzySimilarity(pattern, description); s >= FuzzyThreshold {
			return s, true
		}
	}
	return 0, false
}

// Match is the rule chosen for one transaction.
type Match struct {
	Rule       model.ReconciliationRule
	Confidence float64
}

// BestMatch returns the active rule with the highest confidence. Equal
// confidences go to the lower rule id.
func BestMatch(rules []model.ReconciliationRule, description string) (Match, bool) {
	var best Match
	found := false
	for _, rule := range rules {
		if rule.Status != model.RuleStatusActive {
			continue
		}
		c, ok := Score(rule, description)
		if !ok {
			continue
		}
		if !found || c > best.Confidence || (c == best.Confidence && rule.ID < best.Rule.ID) {
			best = Match{Rule: rule, Confidence: c}
			found = true
		}
	}
	return best, found
}
