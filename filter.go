package doto

import "github.com/utakotoba/doto/internal/domain"

// PredicateKind is whether a FilterRule allows or denies its values.
type PredicateKind = domain.PredicateKind

const (
	PredicateAllow = domain.PredicateAllow
	PredicateDeny  = domain.PredicateDeny
)

// ValuePredicate tests whether a dimension value passes a filter rule.
type ValuePredicate = domain.ValuePredicate

// FilterRule ties a predicate to the dimension it tests.
type FilterRule = domain.FilterRule

// FilterConfig is an unordered collection of rules; a mark passes only
// if every rule allows it.
type FilterConfig = domain.FilterConfig
