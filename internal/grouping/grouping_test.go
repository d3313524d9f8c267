package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/grouping"
)

func path(p string) *string { return &p }

func TestApplySortPipelineDefaultOrdersByMarkPriorityThenLanguage(t *testing.T) {
	marks := []domain.Mark{
		{Path: path("a.go"), Line: 1, MarkKind: "TODO", Language: "go"},
		{Path: path("a.go"), Line: 2, MarkKind: "ERROR", Language: "go"},
		{Path: path("a.go"), Line: 3, MarkKind: "ERROR", Language: "rs"},
	}
	config := domain.DefaultSortConfig()
	out := grouping.ApplySortPipeline(marks, config, nil)
	assert.Equal(t, "ERROR", out[0].MarkKind)
	assert.Equal(t, "ERROR", out[1].MarkKind)
	assert.Equal(t, "TODO", out[2].MarkKind)
	// within ERROR, go and rs tie on count, so name ascending puts go first
	assert.Equal(t, "go", out[0].Language)
	assert.Equal(t, "rs", out[1].Language)
}

func TestApplySortPipelineEmptyReturnsUnchanged(t *testing.T) {
	marks := []domain.Mark{{Path: path("a.go"), MarkKind: "TODO"}}
	out := grouping.ApplySortPipeline(marks, domain.SortConfig{}, nil)
	assert.Equal(t, marks, out)
}

func TestBuildGroupTreeLeafWhenNoPipeline(t *testing.T) {
	marks := []domain.Mark{{Path: path("a.go"), MarkKind: "TODO"}}
	tree := grouping.BuildGroupTree(marks, domain.SortConfig{}, nil)
	assert.Empty(t, tree.Groups)
	assert.Equal(t, marks, tree.Items)
	assert.Equal(t, uint64(1), tree.Total())
}

func TestBuildGroupTreeNestedCountsSumChildren(t *testing.T) {
	marks := []domain.Mark{
		{Path: path("a.go"), MarkKind: "TODO", Language: "go"},
		{Path: path("b.rs"), MarkKind: "TODO", Language: "rs"},
		{Path: path("c.go"), MarkKind: "FIXME", Language: "go"},
	}
	config := domain.DefaultSortConfig()
	tree := grouping.BuildGroupTree(marks, config, nil)
	assert.Equal(t, uint64(3), tree.Total())
	for _, g := range tree.Groups {
		var sum uint64
		for _, c := range g.Groups {
			sum += c.Count
		}
		assert.Equal(t, g.Count, sum)
	}
}

func TestFolderKeyFallsBackWhenNoRootMatches(t *testing.T) {
	key := grouping.FolderKey("/unrelated/dir/file.go", []string{"/root"}, 1)
	assert.Equal(t, "unrelated", key)
}

func TestFolderKeyDepthZero(t *testing.T) {
	key := grouping.FolderKey("/root/a/b/file.go", []string{"/root"}, 0)
	assert.Equal(t, "", key)
}
