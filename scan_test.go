package doto_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utakotoba/doto"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanScenarioA(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.rs", "fn main() {\n// TODO: one\n// FIXME: two\n}\n")

	config, err := doto.NewScanConfigBuilder().Root(dir).Build()
	require.NoError(t, err)

	result, err := doto.Scan(config)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Stats.FilesScanned)
	assert.EqualValues(t, 2, result.Stats.Matches)
	require.Len(t, result.Marks, 2)
}

func TestScanEmptyRootsErrors(t *testing.T) {
	_, err := doto.NewScanConfigBuilder().Build()
	assert.ErrorIs(t, err, doto.ErrEmptyRoots)
}

func TestScanInvalidRegexErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := doto.NewScanConfigBuilder().Root(dir).Regex("(unterminated").Build()
	require.Error(t, err)
	var target *doto.InvalidRegexError
	assert.ErrorAs(t, err, &target)
}

func TestScanGroupedDefaultPipeline(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package a\n// TODO: one\n")
	writeFile(t, dir, "b.rs", "fn f() {}\n// FIXME: two\n")

	config, err := doto.NewScanConfigBuilder().Root(dir).Build()
	require.NoError(t, err)

	grouped, err := doto.ScanGrouped(config)
	require.NoError(t, err)
	assert.EqualValues(t, 2, grouped.Tree.Total())
	require.NotEmpty(t, grouped.Tree.Groups)
	assert.Equal(t, "FIXME", grouped.Tree.Groups[0].Key)
}

func TestScanReadBufferSizeClamped(t *testing.T) {
	dir := t.TempDir()
	config, err := doto.NewScanConfigBuilder().Root(dir).ReadBufferSize(1).Build()
	require.NoError(t, err)
	assert.Equal(t, 8*1024, config.ReadBufferSize())
}

func TestScanMaxFileSizeStrictlyGreaterThan(t *testing.T) {
	dir := t.TempDir()
	content := "package a\n// TODO: one\n"
	writeFile(t, dir, "a.go", content)

	config, err := doto.NewScanConfigBuilder().Root(dir).MaxFileSize(int64(len(content))).Build()
	require.NoError(t, err)

	result, err := doto.Scan(config)
	require.NoError(t, err)
	assert.Len(t, result.Marks, 1, "a file exactly at the limit must still be scanned")
}
