package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/utakotoba/doto/internal/markkind"

	"github.com/utakotoba/doto"
)

// Settings is the layered configuration resolved from defaults, an
// optional YAML file, DOTO_-prefixed environment variables, and CLI
// flags, in that increasing order of precedence — matching the
// original implementation's file+env+args layering (its `config` crate
// usage translated into yaml.v3 plus a plain os.LookupEnv pass, since no
// dedicated env-binding library appears in the example corpus).
type Settings struct {
	Roots   []string `yaml:"roots"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	Gitignore *bool `yaml:"gitignore"`
	Hidden    *bool `yaml:"hidden"`

	ReadBufferSize *int    `yaml:"read_buffer_size"`
	Regex          string  `yaml:"regex"`
	Threads        int     `yaml:"threads"`
	MaxFileSize    int64   `yaml:"max_file_size"`

	Sort             string `yaml:"sort"`
	SortMarkPriority string `yaml:"sort_mark_priority"`
	SortLangOrder    string `yaml:"sort_lang_order"`
	SortPathOrder    string `yaml:"sort_path_order"`
	SortFolderOrder  string `yaml:"sort_folder_order"`
	SortFolderDepth  *int   `yaml:"sort_folder_depth"`

	FilterMark        []string `yaml:"filter_mark"`
	FilterMarkDeny     []string `yaml:"filter_mark_deny"`
	FilterLanguage     []string `yaml:"filter_language"`
	FilterLanguageDeny []string `yaml:"filter_language_deny"`
	FilterPath         []string `yaml:"filter_path"`
	FilterPathDeny     []string `yaml:"filter_path_deny"`
	FilterFolder       []string `yaml:"filter_folder"`
	FilterFolderDeny   []string `yaml:"filter_folder_deny"`

	Verbose      bool `yaml:"verbose"`
	NoFileHeader bool `yaml:"no_file_header"`
}

// LoadSettings reads configPath (if non-empty and present) as YAML into
// a Settings, then overlays DOTO_-prefixed environment variables.
func LoadSettings(configPath string) (*Settings, error) {
	s := &Settings{Threads: 0}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("doto: reading config file %q: %w", configPath, err)
			}
		} else if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("doto: parsing config file %q: %w", configPath, err)
		}
	}

	applyEnv(s)
	return s, nil
}

func applyEnv(s *Settings) {
	if v, ok := os.LookupEnv("DOTO_ROOTS"); ok {
		s.Roots = splitList(v)
	}
	if v, ok := os.LookupEnv("DOTO_INCLUDE"); ok {
		s.Include = splitList(v)
	}
	if v, ok := os.LookupEnv("DOTO_EXCLUDE"); ok {
		s.Exclude = splitList(v)
	}
	if v, ok := os.LookupEnv("DOTO_GITIGNORE"); ok {
		b := parseBool(v)
		s.Gitignore = &b
	}
	if v, ok := os.LookupEnv("DOTO_HIDDEN"); ok {
		b := parseBool(v)
		s.Hidden = &b
	}
	if v, ok := os.LookupEnv("DOTO_THREADS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.Threads = n
		}
	}
	if v, ok := os.LookupEnv("DOTO_SORT"); ok {
		s.Sort = v
	}
	if v, ok := os.LookupEnv("DOTO_REGEX"); ok {
		s.Regex = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

// BuildScanConfig translates fully-resolved Settings (with CLI flags
// already applied on top, see applyFlags) into a doto.ScanConfig.
func BuildScanConfig(s *Settings) (doto.ScanConfig, error) {
	b := doto.NewScanConfigBuilder()

	if len(s.Roots) == 0 {
		b.Root(".")
	} else {
		b.Roots(s.Roots...)
	}
	b.Include(s.Include...)
	b.Exclude(s.Exclude...)

	if s.Gitignore != nil {
		b.FollowGitignore(*s.Gitignore)
	}
	if s.Hidden != nil {
		b.IncludeHidden(*s.Hidden)
	}
	if s.ReadBufferSize != nil {
		b.ReadBufferSize(*s.ReadBufferSize)
	}
	if s.Regex != "" {
		b.Regex(s.Regex)
	}
	if s.Threads > 0 {
		b.Threads(s.Threads)
	}
	if s.MaxFileSize > 0 {
		b.MaxFileSize(s.MaxFileSize)
	}

	sortConfig, err := resolveSortConfig(s)
	if err != nil {
		return doto.ScanConfig{}, err
	}
	b.SortConfigValue(sortConfig)
	b.FilterConfigValue(resolveFilterConfig(s))

	return b.Build()
}

// resolveSortConfig parses --sort (comma-separated stage names),
// --sort-mark-priority (MARK=N,MARK=N), and the per-dimension order/
// depth flags into a doto.SortConfig. Settings for a dimension that is
// not in the pipeline are ignored; no warning is produced for them.
func resolveSortConfig(s *Settings) (doto.SortConfig, error) {
	pipeline := parsePipeline(s.Sort)
	overrides := parseMarkOverrides(s.SortMarkPriority)

	for i := range pipeline {
		switch pipeline[i].Dim {
		case doto.DimMark:
			pipeline[i].Mark = doto.MarkSortConfig{Overrides: overrides}
		case doto.DimLanguage:
			pipeline[i].Language = doto.LanguageSortConfig{Order: mapLanguageOrder(s.SortLangOrder)}
		case doto.DimPath:
			pipeline[i].Path = doto.PathSortConfig{Order: mapOrder(s.SortPathOrder)}
		case doto.DimFolder:
			depth := doto.DefaultFolderDepth
			if s.SortFolderDepth != nil {
				depth = *s.SortFolderDepth
			}
			pipeline[i].Folder = doto.FolderSortConfig{Depth: depth, Order: mapOrder(s.SortFolderOrder)}
		}
	}

	return doto.SortConfig{Pipeline: pipeline}, nil
}

func parsePipeline(raw string) []doto.DimensionStage {
	if raw == "" {
		return doto.DefaultSortConfig().Pipeline
	}
	var stages []doto.DimensionStage
	for _, name := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "mark":
			stages = append(stages, doto.DimensionStage{Dim: doto.DimMark})
		case "language":
			stages = append(stages, doto.DimensionStage{Dim: doto.DimLanguage, Language: doto.LanguageSortConfig{Order: doto.LanguageCountDescNameAsc}})
		case "path":
			stages = append(stages, doto.DimensionStage{Dim: doto.DimPath})
		case "folder":
			stages = append(stages, doto.DimensionStage{Dim: doto.DimFolder, Folder: doto.FolderSortConfig{Depth: doto.DefaultFolderDepth}})
		}
	}
	return stages
}

func parseMarkOverrides(raw string) []doto.MarkPriorityOverride {
	if raw == "" {
		return nil
	}
	var out []doto.MarkPriorityOverride
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		mark, _ := markkind.Normalize(strings.TrimSpace(k))
		if mark == "" {
			mark = strings.ToUpper(strings.TrimSpace(k))
		}
		out = append(out, doto.MarkPriorityOverride{Mark: mark, Priority: n})
	}
	return out
}

func mapOrder(raw string) doto.Order {
	if strings.EqualFold(raw, "desc") {
		return doto.OrderDesc
	}
	return doto.OrderAsc
}

func mapLanguageOrder(raw string) doto.LanguageOrder {
	if strings.EqualFold(raw, "name") {
		return doto.LanguageNameAsc
	}
	return doto.LanguageCountDescNameAsc
}

func resolveFilterConfig(s *Settings) doto.FilterConfig {
	var rules []doto.FilterRule
	addRule := func(dim doto.Dimension, allow, deny []string) {
		if len(allow) > 0 {
			rules = append(rules, doto.FilterRule{Dim: dim, Predicate: doto.ValuePredicate{Kind: doto.PredicateAllow, Values: allow}})
		}
		if len(deny) > 0 {
			rules = append(rules, doto.FilterRule{Dim: dim, Predicate: doto.ValuePredicate{Kind: doto.PredicateDeny, Values: deny}})
		}
	}
	addRule(doto.DimMark, s.FilterMark, s.FilterMarkDeny)
	addRule(doto.DimLanguage, s.FilterLanguage, s.FilterLanguageDeny)
	addRule(doto.DimPath, s.FilterPath, s.FilterPathDeny)
	addRule(doto.DimFolder, s.FilterFolder, s.FilterFolderDeny)
	return doto.FilterConfig{Rules: rules}
}
