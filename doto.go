package doto

import (
	"github.com/utakotoba/doto/internal/filterengine"
	"github.com/utakotoba/doto/internal/grouping"
	"github.com/utakotoba/doto/internal/walkscan"
)

// Scan runs config and returns a flat, sorted result.
func Scan(config ScanConfig) (ScanResult, error) {
	result, err := runWalk(config)
	if err != nil {
		return ScanResult{}, err
	}
	result.Marks = filterengine.Apply(result.Marks, config.filterConfig, config.roots)
	result.Marks = grouping.ApplySortPipeline(result.Marks, config.sortConfig, config.roots)
	return result, nil
}

// ScanGrouped runs config and returns marks organized into a GroupTree
// by its sort pipeline.
func ScanGrouped(config ScanConfig) (GroupedScanResult, error) {
	result, err := runWalk(config)
	if err != nil {
		return GroupedScanResult{}, err
	}
	marks := filterengine.Apply(result.Marks, config.filterConfig, config.roots)
	tree := grouping.BuildGroupTree(marks, config.sortConfig, config.roots)
	return GroupedScanResult{
		Tree:     tree,
		Stats:    result.Stats,
		Warnings: result.Warnings,
	}, nil
}

func runWalk(config ScanConfig) (ScanResult, error) {
	opts := walkscan.Options{
		Roots:           config.roots,
		Regex:           config.regex,
		Include:         config.include,
		Exclude:         config.exclude,
		FollowGitignore: config.followGitignore,
		IncludeHidden:   config.includeHidden,
		BuiltinExcludes: config.builtinExcludes,
		MaxFileSize:     config.maxFileSize,
		Threads:         config.threads,
		ReadBufferSize:  config.readBufferSize,
		Progress:        config.progress,
		Cancellation:    config.cancellation,
	}
	return walkscan.Run(opts)
}
