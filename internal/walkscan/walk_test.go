package walkscan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utakotoba/doto/internal/markkind"
	"github.com/utakotoba/doto/internal/walkscan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunScansEligibleFilesAndSkipsExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n// TODO: one\n")
	writeFile(t, filepath.Join(dir, "node_modules", "vendor.go"), "package vendor\n// TODO: hidden\n")
	writeFile(t, filepath.Join(dir, "image.png"), "binarydata")

	result, err := walkscan.Run(walkscan.Options{
		Roots:           []string{dir},
		Regex:           markkind.DefaultRegex,
		FollowGitignore: true,
		BuiltinExcludes: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Marks, 1)
	assert.Equal(t, markkind.Todo, result.Marks[0].MarkKind)
	assert.EqualValues(t, 1, result.Stats.FilesScanned)
	assert.GreaterOrEqual(t, result.Stats.FilesSkipped, uint64(1))
}

func TestRunEmptyRootsErrors(t *testing.T) {
	_, err := walkscan.Run(walkscan.Options{Regex: markkind.DefaultRegex})
	assert.Error(t, err)
}

func TestRunHonorsMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.go"), "package main\n// TODO: over\n")

	result, err := walkscan.Run(walkscan.Options{
		Roots:       []string{dir},
		Regex:       markkind.DefaultRegex,
		MaxFileSize: 5,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Marks)
	assert.EqualValues(t, 1, result.Stats.SkipMaxFileSizeCount)
}

func TestRunHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "ignored.go\n")
	writeFile(t, filepath.Join(dir, "ignored.go"), "package main\n// TODO: skip me\n")
	writeFile(t, filepath.Join(dir, "kept.go"), "package main\n// TODO: keep me\n")

	result, err := walkscan.Run(walkscan.Options{
		Roots:           []string{dir},
		Regex:           markkind.DefaultRegex,
		FollowGitignore: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Marks, 1)
	assert.Equal(t, filepath.Join(dir, "kept.go"), *result.Marks[0].Path)
}
