package domain

// Order controls ascending/descending comparison for a sort stage.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

// LanguageOrder controls how the Language dimension orders its groups.
type LanguageOrder int

const (
	// LanguageCountDescNameAsc sorts groups by member count descending,
	// breaking ties by language name ascending. This is the default.
	LanguageCountDescNameAsc LanguageOrder = iota
	LanguageNameAsc
)

// MarkPriorityOverride overrides the default priority of one mark name
// for the Mark sort/group stage.
type MarkPriorityOverride struct {
	Mark     string
	Priority int
}

// MarkSortConfig configures the Mark dimension's ordering.
type MarkSortConfig struct {
	Overrides []MarkPriorityOverride
}

// LanguageSortConfig configures the Language dimension's ordering.
type LanguageSortConfig struct {
	Order LanguageOrder
}

// PathSortConfig configures the Path dimension's ordering.
type PathSortConfig struct {
	Order Order
}

// FolderSortConfig configures the Folder dimension's ordering and the
// directory depth (relative to the matching root) used as the grouping
// key.
type FolderSortConfig struct {
	Depth int
	Order Order
}

// DefaultFolderDepth groups by the first directory component below the
// matching root.
const DefaultFolderDepth = 1

// DimensionStage is one configured stage of a sort/group pipeline.
type DimensionStage struct {
	Dim      Dimension
	Mark     MarkSortConfig
	Language LanguageSortConfig
	Path     PathSortConfig
	Folder   FolderSortConfig
}

// DefaultSortConfig returns a SortConfig with the pipeline [Mark, Language].
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Pipeline: []DimensionStage{
			{Dim: DimMark},
			{Dim: DimLanguage},
		},
	}
}

// SortConfig is an ordered pipeline of dimension stages.
type SortConfig struct {
	Pipeline []DimensionStage
}
