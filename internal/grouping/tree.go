package grouping

import "github.com/utakotoba/doto/internal/domain"

// BuildGroupTree organizes marks into a GroupTree following config's
// pipeline. Fewer than one stage, or no marks, yields a leaf tree
// (Items == marks, no Groups).
func BuildGroupTree(marks []domain.Mark, config domain.SortConfig, roots []string) domain.GroupTree {
	if len(marks) == 0 || len(config.Pipeline) == 0 {
		return domain.GroupTree{Items: marks}
	}
	return domain.GroupTree{Groups: buildGroups(marks, config.Pipeline, roots)}
}

func buildGroups(marks []domain.Mark, stages []domain.DimensionStage, roots []string) []domain.GroupNode {
	buckets, order := groupForStage(marks, stages[0], roots)

	nodes := make([]domain.GroupNode, 0, len(order))
	for _, key := range order {
		members := buckets[key]
		node := domain.GroupNode{Key: key}
		if len(stages) > 1 {
			node.Groups = buildGroups(members, stages[1:], roots)
			var count uint64
			for _, child := range node.Groups {
				count += child.Count
			}
			node.Count = count
		} else {
			node.Items = members
			node.Count = uint64(len(members))
		}
		nodes = append(nodes, node)
	}
	return nodes
}
