// Package filterengine applies a domain.FilterConfig to a set of marks,
// sharing dimension-value extraction with internal/grouping so that
// "same language" or "same folder" mean the same thing whether marks are
// being filtered or sorted.
package filterengine

import (
	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/grouping"
)

// Apply returns the subset of marks that pass every rule in config. An
// empty config passes everything through unchanged.
func Apply(marks []domain.Mark, config domain.FilterConfig, roots []string) []domain.Mark {
	if config.IsEmpty() {
		return marks
	}
	out := make([]domain.Mark, 0, len(marks))
	for _, m := range marks {
		if allows(m, config, roots) {
			out = append(out, m)
		}
	}
	return out
}

func allows(m domain.Mark, config domain.FilterConfig, roots []string) bool {
	return config.Allows(func(dim domain.Dimension) (string, bool) {
		stage := domain.DimensionStage{Dim: dim}
		return grouping.ExtractDimensionValue(stage, m, roots)
	})
}
