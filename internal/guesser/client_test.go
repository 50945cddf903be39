package guesser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: ts.URL, Model: "test-model"}, zap.NewNop())
}

func completionBody(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestRequestGuess(t *testing.T) {
	messages := []ledger.Message{
		{Role: ledger.RoleSystem, Content: "sys"},
		{Role: ledger.RoleUser, Content: "state"},
	}

	t.Run("decodes structured response", func(t *testing.T) {
		var captured chatRequest
		client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			fmt.Fprint(w, completionBody(`{"reasoning":"vowel coverage","final_answer":"ADIEU"}`))
		})

		guess, err := client.RequestGuess(context.Background(), messages)
		require.NoError(t, err)
		assert.Equal(t, "ADIEU", guess.FinalAnswer)
		assert.Equal(t, "vowel coverage", guess.Reasoning)
	})

	t.Run("sends full conversation and strict schema", func(t *testing.T) {
		var captured chatRequest
		client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			fmt.Fprint(w, completionBody(`{"reasoning":"r","final_answer":"STARE"}`))
		})

		_, err := client.RequestGuess(context.Background(), messages)
		require.NoError(t, err)

		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "user", captured.Messages[1].Role)
		require.NotNil(t, captured.ResponseFormat)
		assert.Equal(t, "json_schema", captured.ResponseFormat.Type)
		require.NotNil(t, captured.ResponseFormat.JSONSchema)
		assert.Equal(t, "quordle_guess_response", captured.ResponseFormat.JSONSchema.Name)
		assert.True(t, captured.ResponseFormat.JSONSchema.Strict)
	})

	t.Run("non-200 is a transport error", func(t *testing.T) {
		client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream sad", http.StatusBadGateway)
		})

		_, err := client.RequestGuess(context.Background(), messages)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unparseable content is an error", func(t *testing.T) {
		client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, completionBody("I think the word is STARE"))
		})

		_, err := client.RequestGuess(context.Background(), messages)
		assert.Error(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://unused"}, zap.NewNop())
		_, err := client.RequestGuess(context.Background(), messages)
		assert.Error(t, err)
	})
}

func TestGuessResponseFormat_SchemaParses(t *testing.T) {
	rf := guessResponseFormat()
	require.Equal(t, "json_schema", rf.Type)
	require.NotNil(t, rf.JSONSchema)

	props, ok := rf.JSONSchema.Schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "reasoning")
	assert.Contains(t, props, "final_answer")
}
