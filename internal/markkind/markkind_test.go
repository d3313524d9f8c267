package markkind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/markkind"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"todo", markkind.Todo, true},
		{"TODO", markkind.Todo, true},
		{"FixMe", markkind.Fixme, true},
		{"WARN", markkind.Warn, true},
		{"bogus", "", false},
	}
	for _, c := range cases {
		got, ok := markkind.Normalize(c.raw)
		assert.Equal(t, c.ok, ok, c.raw)
		if c.ok {
			assert.Equal(t, c.want, got, c.raw)
		}
	}
}

func TestPriorityDefaultsAndOverrides(t *testing.T) {
	assert.Equal(t, 0, markkind.Priority(markkind.Error, nil))
	assert.Equal(t, 3, markkind.Priority(markkind.Todo, nil))
	assert.Equal(t, len(markkind.DefaultPriorities), markkind.Priority(markkind.Unranked, nil))

	overrides := map[string]int{"FIXME": 0}
	assert.Equal(t, 0, markkind.Priority("FIXME", overrides))
	assert.Equal(t, 0, markkind.Priority("fixme", overrides))
}
