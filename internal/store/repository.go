package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

// Artifact keys within the blob store.
const (
	GameStateKey = "game_state.json"
	MessagesKey  = "chat_messages.json"
	ReplayKey    = "replay.html"
	StatsKey     = "llm_guesser_stats.json"
)

// GameRepository saves and loads a finished game: the final state plus the
// full conversation transcript, each as its own JSON artifact.
type GameRepository struct {
	blob Blob
}

// NewGameRepository wraps a blob store.
func NewGameRepository(blob Blob) *GameRepository {
	return &GameRepository{blob: blob}
}

// SaveGame persists state and transcript. The state is written first; if the
// transcript write fails the caller sees the error and nothing pretends the
// save succeeded.
func (r *GameRepository) SaveGame(ctx context.Context, state game.State, messages []ledger.Message) error {
	stateJSON, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode game state: %w", err)
	}
	if err := r.blob.Upload(ctx, GameStateKey, stateJSON); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}

	msgJSON, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := r.blob.Upload(ctx, MessagesKey, msgJSON); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	return nil
}

// LoadGame reads back a previously saved game. ErrNotFound when either
// artifact is missing.
func (r *GameRepository) LoadGame(ctx context.Context) (game.State, []ledger.Message, error) {
	stateJSON, err := r.blob.Download(ctx, GameStateKey)
	if err != nil {
		return game.State{}, nil, fmt.Errorf("load game state: %w", err)
	}
	var state game.State
	if err := json.Unmarshal(stateJSON, &state); err != nil {
		return game.State{}, nil, fmt.Errorf("decode game state: %w", err)
	}

	msgJSON, err := r.blob.Download(ctx, MessagesKey)
	if err != nil {
		return game.State{}, nil, fmt.Errorf("load messages: %w", err)
	}
	var messages []ledger.Message
	if err := json.Unmarshal(msgJSON, &messages); err != nil {
		return game.State{}, nil, fmt.Errorf("decode messages: %w", err)
	}
	return state, messages, nil
}
