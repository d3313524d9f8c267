// Package doto scans a workspace for TODO-style marks inside comments:
// it classifies code/string/comment regions per line, recognizes marks
// at the leading position of a comment, and can group and order the
// findings along several dimensions. See ScanConfig for the entry
// point.
package doto

import "github.com/utakotoba/doto/internal/domain"

// Mark is one recognized comment marker.
type Mark = domain.Mark

// SkipReason classifies why an entry was not scanned.
type SkipReason = domain.SkipReason

const (
	SkipMaxFileSize       = domain.SkipMaxFileSize
	SkipMetadata          = domain.SkipMetadata
	SkipIO                = domain.SkipIO
	SkipUnsupportedSyntax = domain.SkipUnsupportedSyntax
	SkipBinary            = domain.SkipBinary
)

// WarningKind classifies a non-fatal issue encountered while walking.
type WarningKind = domain.WarningKind

const (
	WarnWalk     = domain.WarnWalk
	WarnMetadata = domain.WarnMetadata
	WarnIO       = domain.WarnIO
)

// ScanStats aggregates the counters produced by a scan.
type ScanStats = domain.ScanStats

// ScanWarning describes a single non-fatal issue.
type ScanWarning = domain.ScanWarning

// ScanResult is the flat output of Scan.
type ScanResult = domain.ScanResult

// GroupedScanResult is the output of ScanGrouped.
type GroupedScanResult = domain.GroupedScanResult

// Dimension identifies one axis marks can be grouped/sorted/filtered by.
type Dimension = domain.Dimension

const (
	DimMark     = domain.DimMark
	DimLanguage = domain.DimLanguage
	DimPath     = domain.DimPath
	DimFolder   = domain.DimFolder
)

// GroupTree is the root of a grouped scan result.
type GroupTree = domain.GroupTree

// GroupNode is one node of a GroupTree.
type GroupNode = domain.GroupNode
