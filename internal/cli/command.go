package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/utakotoba/doto"
)

// Flags mirrors the original CLI's flag surface, layered on top of
// Settings loaded from a config file and the environment.
type Flags struct {
	Config     string
	NoDotenv   bool
	DotenvPath string

	Include []string
	Exclude []string

	Gitignore      string // "", "true", "false" -- tri-state so an unset flag doesn't override the file/env value
	Hidden         string
	ReadBufferSize int
	Regex          string
	Threads        int
	MaxFileSize    int64

	Sort             string
	SortMarkPriority string
	SortLangOrder    string
	SortPathOrder    string
	SortFolderOrder  string
	SortFolderDepth  int

	FilterMark         []string
	FilterMarkDeny     []string
	FilterLanguage     []string
	FilterLanguageDeny []string
	FilterPath         []string
	FilterPathDeny     []string
	FilterFolder       []string
	FilterFolderDeny   []string

	Verbose      bool
	NoFileHeader bool
	Flat         bool
}

// NewRootCommand builds the `doto` cobra command tree.
func NewRootCommand() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:           "doto [roots...]",
		Short:         "scan a workspace for TODO-style marks in comments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Config, "config", "", "path to a YAML config file")
	f.BoolVar(&flags.NoDotenv, "no-dotenv", false, "skip loading a .env file")
	f.StringVar(&flags.DotenvPath, "dotenv-path", ".env", "path to a dotenv file")

	f.StringArrayVar(&flags.Include, "include", nil, "glob pattern to include (repeatable)")
	f.StringArrayVar(&flags.Exclude, "exclude", nil, "glob pattern to exclude (repeatable)")

	f.StringVar(&flags.Gitignore, "gitignore", "", "follow .gitignore/.ignore files (true/false)")
	f.StringVar(&flags.Hidden, "hidden", "", "include hidden files and directories (true/false)")
	f.IntVar(&flags.ReadBufferSize, "read-buffer-size", 0, "per-file read buffer size in bytes")
	f.StringVar(&flags.Regex, "mark-regex", "", "override the mark detection regex")
	f.IntVar(&flags.Threads, "threads", 0, "worker thread count (default: all cores)")
	f.Int64Var(&flags.MaxFileSize, "max-file-size", 0, "skip files larger than this many bytes")

	f.StringVar(&flags.Sort, "sort", "", "comma-separated sort pipeline, e.g. mark,language,folder")
	f.StringVar(&flags.SortMarkPriority, "sort-mark-priority", "", "mark priority overrides, e.g. FIXME=0,TODO=1")
	f.StringVar(&flags.SortLangOrder, "sort-lang-order", "", "language group order: count|name")
	f.StringVar(&flags.SortPathOrder, "sort-path-order", "", "path group order: asc|desc")
	f.StringVar(&flags.SortFolderOrder, "sort-folder-order", "", "folder group order: asc|desc")
	f.IntVar(&flags.SortFolderDepth, "sort-folder-depth", 0, "folder grouping depth")

	f.StringArrayVar(&flags.FilterMark, "filter-mark", nil, "only include these mark kinds (repeatable)")
	f.StringArrayVar(&flags.FilterMarkDeny, "filter-mark-deny", nil, "exclude these mark kinds (repeatable)")
	f.StringArrayVar(&flags.FilterLanguage, "filter-language", nil, "only include these languages (repeatable)")
	f.StringArrayVar(&flags.FilterLanguageDeny, "filter-language-deny", nil, "exclude these languages (repeatable)")
	f.StringArrayVar(&flags.FilterPath, "filter-path", nil, "only include these paths (repeatable)")
	f.StringArrayVar(&flags.FilterPathDeny, "filter-path-deny", nil, "exclude these paths (repeatable)")
	f.StringArrayVar(&flags.FilterFolder, "filter-folder", nil, "only include these folders (repeatable)")
	f.StringArrayVar(&flags.FilterFolderDeny, "filter-folder-deny", nil, "exclude these folders (repeatable)")

	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "show a skip-reason breakdown")
	f.BoolVar(&flags.NoFileHeader, "no-file-header", false, "don't print a filename header before each file's marks")
	f.BoolVar(&flags.Flat, "flat", false, "print a flat list instead of a grouped tree")

	return cmd
}

func run(cmd *cobra.Command, roots []string, flags *Flags) error {
	if err := LoadDotenv(flags.NoDotenv, flags.DotenvPath); err != nil {
		return err
	}

	settings, err := LoadSettings(flags.Config)
	if err != nil {
		return err
	}
	applyFlags(settings, roots, flags)

	config, err := BuildScanConfig(settings)
	if err != nil {
		return err
	}

	progress := NewDeferredProgress(1500 * time.Millisecond)
	config = config.WithProgress(progress)

	sink := &MessageSink{}
	defer RenderMessages(os.Stderr, sink)

	if flags.Flat {
		result, err := doto.Scan(config)
		progress.Finish()
		if err != nil {
			return err
		}
		RenderPlain(cmd.OutOrStdout(), result, settings.Roots)
		pushScanSummary(sink, result.Stats)
		return nil
	}

	grouped, err := doto.ScanGrouped(config)
	progress.Finish()
	if err != nil {
		return err
	}

	shouldRender := PushResultMessages(sink, grouped, flags.Verbose)
	if shouldRender {
		RenderList(cmd.OutOrStdout(), grouped.Tree, settings.Roots, !flags.NoFileHeader)
	}
	return nil
}

func applyFlags(s *Settings, roots []string, flags *Flags) {
	if len(roots) > 0 {
		s.Roots = roots
	}
	if len(flags.Include) > 0 {
		s.Include = append(s.Include, flags.Include...)
	}
	if len(flags.Exclude) > 0 {
		s.Exclude = append(s.Exclude, flags.Exclude...)
	}
	if flags.Gitignore != "" {
		b := flags.Gitignore == "true"
		s.Gitignore = &b
	}
	if flags.Hidden != "" {
		b := flags.Hidden == "true"
		s.Hidden = &b
	}
	if flags.ReadBufferSize > 0 {
		s.ReadBufferSize = &flags.ReadBufferSize
	}
	if flags.Regex != "" {
		s.Regex = flags.Regex
	}
	if flags.Threads > 0 {
		s.Threads = flags.Threads
	}
	if flags.MaxFileSize > 0 {
		s.MaxFileSize = flags.MaxFileSize
	}
	if flags.Sort != "" {
		s.Sort = flags.Sort
	}
	if flags.SortMarkPriority != "" {
		s.SortMarkPriority = flags.SortMarkPriority
	}
	if flags.SortLangOrder != "" {
		s.SortLangOrder = flags.SortLangOrder
	}
	if flags.SortPathOrder != "" {
		s.SortPathOrder = flags.SortPathOrder
	}
	if flags.SortFolderOrder != "" {
		s.SortFolderOrder = flags.SortFolderOrder
	}
	if flags.SortFolderDepth > 0 {
		s.SortFolderDepth = &flags.SortFolderDepth
	}
	s.FilterMark = append(s.FilterMark, flags.FilterMark...)
	s.FilterMarkDeny = append(s.FilterMarkDeny, flags.FilterMarkDeny...)
	s.FilterLanguage = append(s.FilterLanguage, flags.FilterLanguage...)
	s.FilterLanguageDeny = append(s.FilterLanguageDeny, flags.FilterLanguageDeny...)
	s.FilterPath = append(s.FilterPath, flags.FilterPath...)
	s.FilterPathDeny = append(s.FilterPathDeny, flags.FilterPathDeny...)
	s.FilterFolder = append(s.FilterFolder, flags.FilterFolder...)
	s.FilterFolderDeny = append(s.FilterFolderDeny, flags.FilterFolderDeny...)

	s.Verbose = s.Verbose || flags.Verbose
	s.NoFileHeader = s.NoFileHeader || flags.NoFileHeader
}
