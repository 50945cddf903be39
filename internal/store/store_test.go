package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("upload then download", func(t *testing.T) {
		require.NoError(t, s.Upload(ctx, "replay.html", []byte("<html></html>")))

		content, err := s.Download(ctx, "replay.html")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(content))

		ok, err := s.Exists(ctx, "replay.html")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing key is ErrNotFound", func(t *testing.T) {
		_, err := s.Download(ctx, "nope.json")
		assert.ErrorIs(t, err, ErrNotFound)

		ok, err := s.Exists(ctx, "nope.json")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nested keys create directories", func(t *testing.T) {
		require.NoError(t, s.Upload(ctx, "runs/2026-08-31/image.png", []byte{1, 2, 3}))
		content, err := s.Download(ctx, "runs/2026-08-31/image.png")
		require.NoError(t, err)
		assert.Len(t, content, 3)
	})

	t.Run("overwrite wins", func(t *testing.T) {
		require.NoError(t, s.Upload(ctx, "k.txt", []byte("old")))
		require.NoError(t, s.Upload(ctx, "k.txt", []byte("new")))
		content, err := s.Download(ctx, "k.txt")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"replay.html":     "text/html",
		"game_state.json": "application/json",
		"art.png":         "image/png",
		"art.jpg":         "image/jpeg",
		"notes.txt":       "text/plain",
		"blob":            "application/octet-stream",
	}
	for key, want := range cases {
		assert.Equal(t, want, contentTypeFor(key), key)
	}
}

func TestGameRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	blob, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	repo := NewGameRepository(blob)

	state := game.State{Boards: []game.BoardState{
		{Attempts: []game.Attempt{{
			Word: "CRANE",
			Feedback: []game.TileState{
				game.TileCorrect, game.TileAbsent, game.TileAbsent, game.TilePresent, game.TileAbsent,
			},
		}}},
		{}, {}, {},
	}}
	messages := []ledger.Message{
		{Role: ledger.RoleSystem, Content: "sys"},
		{Role: ledger.RoleUser, Content: "state"},
		{Role: ledger.RoleAssistant, Content: `{"reasoning":"r","final_answer":"CRANE"}`},
	}

	require.NoError(t, repo.SaveGame(ctx, state, messages))

	gotState, gotMessages, err := repo.LoadGame(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(state, gotState); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(messages, gotMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestGameRepository_LoadMissing(t *testing.T) {
	blob, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	repo := NewGameRepository(blob)

	_, _, err = repo.LoadGame(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
