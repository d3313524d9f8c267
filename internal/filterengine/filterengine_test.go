package filterengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/filterengine"
)

func path(p string) *string { return &p }

func TestApplyEmptyConfigPassesEverything(t *testing.T) {
	marks := []domain.Mark{{Path: path("a.go"), MarkKind: "TODO"}}
	out := filterengine.Apply(marks, domain.FilterConfig{}, nil)
	assert.Equal(t, marks, out)
}

func TestApplyAllowRule(t *testing.T) {
	marks := []domain.Mark{
		{Path: path("a.go"), MarkKind: "TODO"},
		{Path: path("a.go"), MarkKind: "FIXME"},
	}
	config := domain.FilterConfig{Rules: []domain.FilterRule{
		{Dim: domain.DimMark, Predicate: domain.ValuePredicate{Kind: domain.PredicateAllow, Values: []string{"todo"}}},
	}}
	out := filterengine.Apply(marks, config, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "TODO", out[0].MarkKind)
}

func TestApplyDenyRule(t *testing.T) {
	marks := []domain.Mark{
		{Path: path("a.go"), Language: "go"},
		{Path: path("a.rs"), Language: "rs"},
	}
	config := domain.FilterConfig{Rules: []domain.FilterRule{
		{Dim: domain.DimLanguage, Predicate: domain.ValuePredicate{Kind: domain.PredicateDeny, Values: []string{"rs"}}},
	}}
	out := filterengine.Apply(marks, config, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "go", out[0].Language)
}

func TestApplyCombinesRulesAsIntersection(t *testing.T) {
	marks := []domain.Mark{
		{Path: path("a.go"), MarkKind: "TODO", Language: "go"},
		{Path: path("a.rs"), MarkKind: "TODO", Language: "rs"},
	}
	config := domain.FilterConfig{Rules: []domain.FilterRule{
		{Dim: domain.DimMark, Predicate: domain.ValuePredicate{Kind: domain.PredicateAllow, Values: []string{"TODO"}}},
		{Dim: domain.DimLanguage, Predicate: domain.ValuePredicate{Kind: domain.PredicateAllow, Values: []string{"go"}}},
	}}
	out := filterengine.Apply(marks, config, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, "go", out[0].Language)
}
