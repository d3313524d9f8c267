package grouping

import (
	"sort"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/markkind"
)

// ApplySortPipeline returns marks ordered by the configured pipeline:
// grouped by the first stage, each group's members ordered recursively
// by the remaining stages, groups concatenated in stage order. Ordering
// within a group that has no further distinguishing stage is stable
// with respect to the input order. An empty pipeline, or fewer than two
// marks, returns marks unchanged.
func ApplySortPipeline(marks []domain.Mark, config domain.SortConfig, roots []string) []domain.Mark {
	if len(marks) <= 1 || len(config.Pipeline) == 0 {
		return marks
	}
	return sortRecursive(marks, config.Pipeline, roots)
}

func sortRecursive(marks []domain.Mark, stages []domain.DimensionStage, roots []string) []domain.Mark {
	if len(stages) == 0 {
		return marks
	}
	groups, order := groupForStage(marks, stages[0], roots)
	out := make([]domain.Mark, 0, len(marks))
	for _, key := range order {
		members := groups[key]
		out = append(out, sortRecursive(members, stages[1:], roots)...)
	}
	return out
}

// groupForStage partitions marks by the stage's dimension value, and
// returns the ordered list of keys per that stage's configured ordering.
func groupForStage(marks []domain.Mark, stage domain.DimensionStage, roots []string) (map[string][]domain.Mark, []string) {
	buckets := map[string][]domain.Mark{}
	var keys []string
	for _, m := range marks {
		value, ok := ExtractDimensionValue(stage, m, roots)
		if !ok {
			continue
		}
		if _, seen := buckets[value]; !seen {
			keys = append(keys, value)
		}
		buckets[value] = append(buckets[value], m)
	}

	switch stage.Dim {
	case domain.DimMark:
		sort.SliceStable(keys, func(i, j int) bool {
			pi := markkind.Priority(keys[i], overridesMap(stage.Mark.Overrides))
			pj := markkind.Priority(keys[j], overridesMap(stage.Mark.Overrides))
			if pi != pj {
				return pi < pj
			}
			return keys[i] < keys[j]
		})
	case domain.DimLanguage:
		switch stage.Language.Order {
		case domain.LanguageNameAsc:
			sort.SliceStable(keys, func(i, j int) bool { return keys[i] < keys[j] })
		default: // LanguageCountDescNameAsc
			sort.SliceStable(keys, func(i, j int) bool {
				ci, cj := len(buckets[keys[i]]), len(buckets[keys[j]])
				if ci != cj {
					return ci > cj
				}
				return keys[i] < keys[j]
			})
		}
	case domain.DimPath:
		sort.SliceStable(keys, func(i, j int) bool {
			if stage.Path.Order == domain.OrderDesc {
				return keys[i] > keys[j]
			}
			return keys[i] < keys[j]
		})
	case domain.DimFolder:
		sort.SliceStable(keys, func(i, j int) bool {
			if stage.Folder.Order == domain.OrderDesc {
				return keys[i] > keys[j]
			}
			return keys[i] < keys[j]
		})
	}

	return buckets, keys
}

func overridesMap(overrides []domain.MarkPriorityOverride) map[string]int {
	m := make(map[string]int, len(overrides))
	for _, o := range overrides {
		m[o.Mark] = o.Priority
	}
	return m
}
