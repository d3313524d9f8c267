package filescan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/filescan"
	"github.com/utakotoba/doto/internal/markkind"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanFileScenarioA(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.rs", "fn main() {\n// TODO: one\n// FIXME: two\n}\n")
	sharedPath := &path

	var marks []domain.Mark
	outcome, err := filescan.ScanFile(sharedPath, "rs", 0, markkind.DefaultRegex, func() bool { return false }, nil, func(m domain.Mark) {
		marks = append(marks, m)
	})
	require.NoError(t, err)
	assert.Equal(t, filescan.Completed, outcome.Kind)
	require.Len(t, marks, 2)
	assert.Equal(t, uint32(2), marks[0].Line)
	assert.Equal(t, uint32(4), marks[0].Column)
	assert.Equal(t, markkind.Todo, marks[0].MarkKind)
	assert.Equal(t, uint32(3), marks[1].Line)
	assert.Equal(t, markkind.Fixme, marks[1].MarkKind)
}

func TestScanFileSkipsBinary(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.py", "x = 1\x00\x01\x02binary")
	sharedPath := &path

	outcome, err := filescan.ScanFile(sharedPath, "py", 0, markkind.DefaultRegex, func() bool { return false }, nil, func(domain.Mark) {})
	require.NoError(t, err)
	assert.Equal(t, filescan.Skipped, outcome.Kind)
	assert.Equal(t, domain.SkipBinary, outcome.Reason)
}

func TestScanFileUnsupportedSyntax(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "image.png", "not really an image")
	sharedPath := &path

	outcome, err := filescan.ScanFile(sharedPath, "png", 0, markkind.DefaultRegex, func() bool { return false }, nil, func(domain.Mark) {})
	require.NoError(t, err)
	assert.Equal(t, filescan.Skipped, outcome.Kind)
	assert.Equal(t, domain.SkipUnsupportedSyntax, outcome.Reason)
}

func TestScanFileSampleFixture(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("..", "walkscan", "testdata", "sample.go.fixture"))
	require.NoError(t, err)

	dir := t.TempDir()
	path := writeFile(t, dir, "sample.go", string(fixture))
	sharedPath := &path

	var marks []domain.Mark
	outcome, err := filescan.ScanFile(sharedPath, "go", 0, markkind.DefaultRegex, func() bool { return false }, nil, func(m domain.Mark) {
		marks = append(marks, m)
	})
	require.NoError(t, err)
	assert.Equal(t, filescan.Completed, outcome.Kind)

	require.Len(t, marks, 6)
	wantKinds := []string{
		markkind.Todo,
		markkind.Fixme,
		markkind.Warn,
		markkind.Error,
		markkind.Note,
		markkind.Info,
	}
	for i, want := range wantKinds {
		assert.Equal(t, want, marks[i].MarkKind, "mark %d", i)
	}
}

func TestScanFileCancellation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n// TODO: one\n// TODO: two\n")
	sharedPath := &path

	calls := 0
	outcome, err := filescan.ScanFile(sharedPath, "go", 0, markkind.DefaultRegex, func() bool {
		calls++
		return calls > 1
	}, nil, func(domain.Mark) {})
	require.NoError(t, err)
	assert.Equal(t, filescan.Cancelled, outcome.Kind)
}
