package walkscan

// builtinExcludes are directory/file globs ignored whenever
// ScanConfig.BuiltinExcludes is true, regardless of .gitignore state.
// Grounded on original_source's DEFAULT_EXCLUDES list (build artifacts,
// VCS metadata, dependency caches) translated to doublestar syntax.
var builtinExcludes = []string{
	"**/.git/**",
	"**/.hg/**",
	"**/.svn/**",
	"**/node_modules/**",
	"**/target/**",
	"**/dist/**",
	"**/build/**",
	"**/out/**",
	"**/vendor/**",
	"**/.venv/**",
	"**/venv/**",
	"**/__pycache__/**",
	"**/.cache/**",
	"**/.idea/**",
	"**/.vscode/**",
	"**/coverage/**",
	"**/*.min.js",
	"**/*.lock",
}
