package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}

	for _, demo := range Catalog() {
		assert.False(t, seen[demo.Name], "duplicate demo %q", demo.Name)
		seen[demo.Name] = true

		assert.NotEmpty(t, demo.Title)
		assert.NotEmpty(t, demo.Description)
		require.NotNil(t, demo.Run)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"empty selects all", nil, []string{"conversion", "jump"}},
		{"single", []string{"jump"}, []string{"jump"}},
		{"order kept", []string{"jump", "conversion"}, []string{"jump", "conversion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demos, err := Lookup(tt.names)
			require.NoError(t, err)

			got := make([]string, 0, len(demos))
			for _, d := range demos {
				got = append(got, d.Name)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup([]string{"conversion", "missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDemo))
	assert.Contains(t, err.Error(), "missing")
}
