package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-chatter/internal/llm"
)

func TestJSONFile_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "user_data.json")
	f, err := NewJSONFile(p)
	require.NoError(t, err)

	s := New(f, 20)
	s.AppendGoal(42, "хочу выучить Go")
	s.AppendHistory(42, llm.RoleUser, "hi")
	s.SetDialogMode(42, true)

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"42"`)
	assert.Contains(t, string(raw), `"dialog_mode": true`)

	reloaded := New(f, 20).Get(42)
	assert.Equal(t, []string{"хочу выучить Go"}, reloaded.Goals)
	assert.True(t, reloaded.DialogMode)
	require.Len(t, reloaded.ChatHistory, 1)
	assert.Equal(t, "hi", reloaded.ChatHistory[0].Content)
}

func TestJSONFile_MissingFileIsEmpty(t *testing.T) {
	f, err := NewJSONFile(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	records, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJSONFile_CorruptFileYieldsEmptyStore(t *testing.T) {
	p := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o644))
	f, err := NewJSONFile(p)
	require.NoError(t, err)

	_, err = f.Load()
	assert.Error(t, err)

	s := New(f, 20)
	assert.Equal(t, 0, s.Len())
}

func TestJSONFile_EmptyFileIsEmpty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	f, err := NewJSONFile(p)
	require.NoError(t, err)

	records, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}
