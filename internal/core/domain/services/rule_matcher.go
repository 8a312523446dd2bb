package services

import (
	"sort"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/rule"
)

// RuleMatcher filters the configured routing rules down to the ones whose
// predicates match a request, ordered by ascending priority. The synthetic
// default rule stands in only when no configured rule matches: a matched
// rule whose constraints cannot be satisfied is a policy outcome, not a
// reason to retry unrestricted.
type RuleMatcher struct{}

// NewRuleMatcher creates a new RuleMatcher instance.
func NewRuleMatcher() RuleMatcher {
	return RuleMatcher{}
}

// MatchRules returns the rules applicable to the request, sorted ascending
// by priority with original order preserved on ties. When no configured
// rule matches, the default NEAREST rule is returned instead, so the result
// is never empty.
func (m RuleMatcher) MatchRules(request *allocation.Request, rules []*rule.Rule) []*rule.Rule {
	matched := make([]*rule.Rule, 0, len(rules))
	for _, r := range rules {
		if r.AppliesTo(request) {
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		return []*rule.Rule{rule.DefaultRule()}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority() < matched[j].Priority()
	})

	return matched
}
