package doto

import "github.com/utakotoba/doto/internal/domain"

// Order controls ascending/descending comparison for a sort stage.
type Order = domain.Order

const (
	OrderAsc  = domain.OrderAsc
	OrderDesc = domain.OrderDesc
)

// LanguageOrder controls how the Language dimension orders its groups.
type LanguageOrder = domain.LanguageOrder

const (
	LanguageCountDescNameAsc = domain.LanguageCountDescNameAsc
	LanguageNameAsc          = domain.LanguageNameAsc
)

// MarkPriorityOverride overrides the default priority of one mark name.
type MarkPriorityOverride = domain.MarkPriorityOverride

// MarkSortConfig configures the Mark dimension's ordering.
type MarkSortConfig = domain.MarkSortConfig

// LanguageSortConfig configures the Language dimension's ordering.
type LanguageSortConfig = domain.LanguageSortConfig

// PathSortConfig configures the Path dimension's ordering.
type PathSortConfig = domain.PathSortConfig

// FolderSortConfig configures the Folder dimension's ordering and depth.
type FolderSortConfig = domain.FolderSortConfig

// DefaultFolderDepth is the default Folder grouping depth.
const DefaultFolderDepth = domain.DefaultFolderDepth

// DimensionStage is one configured stage of a sort/group pipeline.
type DimensionStage = domain.DimensionStage

// SortConfig is an ordered pipeline of dimension stages.
type SortConfig = domain.SortConfig

// DefaultSortConfig returns a SortConfig with the pipeline [Mark, Language].
func DefaultSortConfig() SortConfig {
	return domain.DefaultSortConfig()
}
