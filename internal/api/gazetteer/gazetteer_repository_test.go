package gazetteer

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepositoryTest(t *testing.T) *EmbeddedRepository {
	t.Helper()
	repo, err := NewEmbeddedRepository(slog.Default())
	require.NoError(t, err)
	return repo
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "SIGIRIYA", "sigiriya"},
		{"punctuation to space", "nine-arch bridge!", "nine arch bridge"},
		{"collapses runs", "galle    fort", "galle fort"},
		{"trims edges", "  kandy  ", "kandy"},
		{"keeps digits", "Route A9", "route a9"},
		{"empty", "!!!", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestEmbeddedRepository_Lookup(t *testing.T) {
	repo := setupRepositoryTest(t)

	t.Run("canonical name", func(t *testing.T) {
		entry, ok := repo.Lookup("Sigiriya")
		require.True(t, ok)
		assert.Equal(t, "Sigiriya", entry.Name)
		assert.NotEmpty(t, entry.Facts)
		assert.NotEmpty(t, entry.Stops)
	})

	t.Run("case and punctuation insensitive", func(t *testing.T) {
		entry, ok := repo.Lookup("  NUWARA ELIYA!!")
		require.True(t, ok)
		assert.Equal(t, "Nuwara Eliya", entry.Name)
	})

	t.Run("unknown place", func(t *testing.T) {
		_, ok := repo.Lookup("atlantis")
		assert.False(t, ok)
	})
}

func TestEmbeddedRepository_Match(t *testing.T) {
	repo := setupRepositoryTest(t)

	tests := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{"exact canonical", "galle", "Galle", true},
		{"alias", "lion rock", "Sigiriya", true},
		{"query contains surface", "the famous galle fort area", "Galle", true},
		{"surface contains query", "trinco", "Trincomalee", true},
		{"no match", "paris", "", false},
		{"empty", "   ", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := repo.Match(tc.query)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEmbeddedRepository_MatchIsDeterministic(t *testing.T) {
	repo := setupRepositoryTest(t)

	first, ok := repo.Match("temple")
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		got, ok := repo.Match("temple")
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}

func TestEmbeddedRepository_Names(t *testing.T) {
	repo := setupRepositoryTest(t)

	names := repo.Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "Colombo")
	assert.Contains(t, names, "Jaffna")

	// Callers must not be able to mutate internal state.
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", repo.Names()[0])
}

func TestEmbeddedRepository_Search(t *testing.T) {
	repo := setupRepositoryTest(t)

	t.Run("ranks name hits above fact hits", func(t *testing.T) {
		results := repo.Search("kandy")
		require.NotEmpty(t, results)
		assert.Equal(t, "Kandy", results[0].Name)
	})

	t.Run("tag search", func(t *testing.T) {
		results := repo.Search("beach")
		require.NotEmpty(t, results)
		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, r.Name)
		}
		assert.Contains(t, names, "Mirissa")
		assert.Contains(t, names, "Negombo")
	})

	t.Run("no hits", func(t *testing.T) {
		assert.Empty(t, repo.Search("zzzznothing"))
	})
}
