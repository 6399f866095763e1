/* pkg/history/store_test.go */

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T, limit int) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password_history.json")
	s, err := Open(context.Background(), path, limit)
	require.NoError(t, err)
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "", 10)
	assert.Error(t, err)
}

func TestAddAndDuplicates(t *testing.T) {
	ctx := context.Background()
	s, _ := tempStore(t, 10)

	assert.True(t, s.IsEmpty())
	assert.True(t, s.AddWithStrength(ctx, "Ab1!Ab1!", "strong"))
	assert.Equal(t, 1, s.Count())

	// Exact duplicates are rejected and the store size does not change.
	assert.False(t, s.AddWithStrength(ctx, "Ab1!Ab1!", "strong"))
	assert.Equal(t, 1, s.Count())

	// Empty passwords are rejected.
	assert.False(t, s.Add(ctx, ""))
	assert.Equal(t, 1, s.Count())
}

func TestAddDefaultsToUnknownStrength(t *testing.T) {
	ctx := context.Background()
	s, _ := tempStore(t, 10)

	require.True(t, s.Add(ctx, "Xk9!mQ2@"))
	entries := s.AllWithMetadata()
	require.Len(t, entries, 1)
	assert.Equal(t, StrengthUnknown, entries[0].Strength)
	assert.NotEmpty(t, entries[0].Timestamp)
}

func TestFIFOEviction(t *testing.T) {
	ctx := context.Background()
	s, _ := tempStore(t, 10)

	for i := 0; i < 11; i++ {
		require.True(t, s.AddWithStrength(ctx, fmt.Sprintf("Password-%02d!", i), "strong"))
	}

	assert.Equal(t, 10, s.Count())
	all := s.All()
	assert.Equal(t, "Password-01!", all[0], "oldest entry must be evicted first")
	assert.Equal(t, "Password-10!", all[len(all)-1])
}

func TestLoweredLimitShrinksOversizedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "password_history.json")

	s, err := Open(ctx, path, 10)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.True(t, s.AddWithStrength(ctx, fmt.Sprintf("Password-%02d!", i), "strong"))
	}

	// Reopening with a lower limit keeps only the newest entries.
	shrunk, err := Open(ctx, path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, shrunk.Count())
	assert.Equal(t, []string{"Password-03!", "Password-04!", "Password-05!"}, shrunk.All())

	require.True(t, shrunk.AddWithStrength(ctx, "Password-06!", "strong"))
	assert.Equal(t, 3, shrunk.Count())
	assert.Equal(t, "Password-06!", shrunk.All()[2])
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := tempStore(t, 10)

	require.True(t, s.AddWithStrength(ctx, "Ab1!Ab1!", "strong"))
	require.True(t, s.AddWithStrength(ctx, "Xk9!mQ2@", "strong"))

	reopened, err := Open(ctx, path, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Count())
	assert.Equal(t, []string{"Ab1!Ab1!", "Xk9!mQ2@"}, reopened.All())

	entries := reopened.AllWithMetadata()
	assert.Equal(t, "strong", entries[0].Strength)
}

func TestPersistedLayout(t *testing.T) {
	ctx := context.Background()
	s, path := tempStore(t, 10)
	require.True(t, s.AddWithStrength(ctx, "Ab1!Ab1!", "strong"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Contains(t, raw[0], "password")
	assert.Contains(t, raw[0], "timestamp")
	assert.Contains(t, raw[0], "strength")
}

func TestCorruptFileResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "password_history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(ctx, path, 10)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	// The store stays usable after the reset.
	assert.True(t, s.Add(ctx, "Ab1!Ab1!"))
	assert.Equal(t, 1, s.Count())
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	s, _ := tempStore(t, 10)

	for i := 0; i < 7; i++ {
		require.True(t, s.Add(ctx, fmt.Sprintf("Password-%02d!", i)))
	}

	recent := s.Recent(5)
	require.Len(t, recent, 5)
	assert.Equal(t, "Password-02!", recent[0])
	assert.Equal(t, "Password-06!", recent[4])

	// Non-positive counts return everything.
	assert.Len(t, s.Recent(0), 7)
	assert.Len(t, s.RecentWithMetadata(100), 7)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := tempStore(t, 10)

	require.True(t, s.Add(ctx, "Ab1!Ab1!"))
	require.True(t, s.Add(ctx, "Xk9!mQ2@"))

	assert.True(t, s.Remove(ctx, "Ab1!Ab1!"))
	assert.False(t, s.Remove(ctx, "Ab1!Ab1!"))
	assert.Equal(t, []string{"Xk9!mQ2@"}, s.All())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s, path := tempStore(t, 10)

	require.True(t, s.Add(ctx, "Ab1!Ab1!"))
	s.Clear(ctx)
	assert.True(t, s.IsEmpty())

	reopened, err := Open(ctx, path, 10)
	require.NoError(t, err)
	assert.True(t, reopened.IsEmpty())
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "password_history.json")

	s, err := Open(ctx, path, 10)
	require.NoError(t, err)

	// Make the directory read-only so the rewrite fails.
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	assert.True(t, s.AddWithStrength(ctx, "Ab1!Ab1!", "strong"))
	assert.Equal(t, 1, s.Count())
}

func TestLimitDefaults(t *testing.T) {
	s, _ := tempStore(t, 0)
	assert.Equal(t, DefaultLimit, s.Limit())
}
