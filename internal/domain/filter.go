package domain

import "strings"

// PredicateKind is whether a FilterRule allows or denies the listed values.
type PredicateKind int

const (
	PredicateAllow PredicateKind = iota
	PredicateDeny
)

// ValuePredicate tests whether a dimension value passes a filter rule.
type ValuePredicate struct {
	Kind   PredicateKind
	Values []string
}

// Allows reports whether value satisfies the predicate for the given
// dimension. Mark and Language comparisons are case-insensitive; Path
// and Folder comparisons are exact, matching how those values are
// already normalized (or not) when extracted.
func (p ValuePredicate) Allows(dim Dimension, value string) bool {
	member := false
	for _, v := range p.Values {
		if valueEq(dim, v, value) {
			member = true
			break
		}
	}
	switch p.Kind {
	case PredicateAllow:
		return member
	case PredicateDeny:
		return !member
	default:
		return true
	}
}

// FilterRule ties a predicate to the dimension it tests.
type FilterRule struct {
	Dim       Dimension
	Predicate ValuePredicate
}

// FilterConfig is an unordered collection of rules; a mark passes only
// if every rule allows it.
type FilterConfig struct {
	Rules []FilterRule
}

// IsEmpty reports whether this config has no rules, i.e. allows everything.
func (c FilterConfig) IsEmpty() bool {
	return len(c.Rules) == 0
}

// Allows reports whether a mark satisfies every rule in c, using extract
// to obtain the mark's value for each rule's dimension.
func (c FilterConfig) Allows(extract func(Dimension) (string, bool)) bool {
	for _, rule := range c.Rules {
		value, ok := extract(rule.Dim)
		if !ok {
			// dimension does not apply to this mark (e.g. Mark dimension
			// on an unranked mark was already handled upstream); treat
			// as failing an Allow rule and passing a Deny rule, matching
			// "absent means not a member of any allow-list".
			if rule.Predicate.Kind == PredicateAllow {
				return false
			}
			continue
		}
		if !rule.Predicate.Allows(rule.Dim, value) {
			return false
		}
	}
	return true
}

// valueEq compares dimension values: case-insensitively for Mark and
// Language, exactly for Path and Folder.
func valueEq(dim Dimension, a, b string) bool {
	if dim == DimMark || dim == DimLanguage {
		return strings.EqualFold(a, b)
	}
	return a == b
}
