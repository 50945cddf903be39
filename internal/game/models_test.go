package game

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attempt(word string, feedback ...TileState) Attempt {
	return Attempt{Word: word, Feedback: feedback}
}

func solvedBoard(word string) BoardState {
	return BoardState{Attempts: []Attempt{
		attempt(word, TileCorrect, TileCorrect, TileCorrect, TileCorrect, TileCorrect),
	}}
}

func missedBoard(n int) BoardState {
	b := BoardState{}
	for i := 0; i < n; i++ {
		b.Attempts = append(b.Attempts,
			attempt("CRANE", TileAbsent, TileAbsent, TileAbsent, TileAbsent, TileAbsent))
	}
	return b
}

func TestAttempt_IsCorrect(t *testing.T) {
	t.Run("all correct", func(t *testing.T) {
		a := attempt("STARE", TileCorrect, TileCorrect, TileCorrect, TileCorrect, TileCorrect)
		assert.True(t, a.IsCorrect())
	})

	t.Run("one present", func(t *testing.T) {
		a := attempt("STARE", TileCorrect, TilePresent, TileCorrect, TileCorrect, TileCorrect)
		assert.False(t, a.IsCorrect())
	})

	t.Run("no feedback", func(t *testing.T) {
		assert.False(t, Attempt{Word: "STARE"}.IsCorrect())
	})
}

func TestState_Status(t *testing.T) {
	t.Run("all boards solved", func(t *testing.T) {
		s := State{Boards: []BoardState{
			solvedBoard("STARE"), solvedBoard("CLOUD"), solvedBoard("PRISM"), solvedBoard("THING"),
		}}
		assert.True(t, s.IsSolved())
		assert.False(t, s.IsFailed())
		assert.False(t, s.InProgress())
	})

	t.Run("nine attempts unsolved is failed", func(t *testing.T) {
		s := State{Boards: []BoardState{
			missedBoard(9), missedBoard(9), missedBoard(9), missedBoard(9),
		}}
		assert.Equal(t, 9, s.NumAttempts())
		assert.False(t, s.IsSolved())
		assert.True(t, s.IsFailed())
		assert.False(t, s.InProgress())
	})

	t.Run("partial progress", func(t *testing.T) {
		s := State{Boards: []BoardState{
			solvedBoard("STARE"), missedBoard(3), missedBoard(3), missedBoard(3),
		}}
		assert.False(t, s.IsSolved())
		assert.False(t, s.IsFailed())
		assert.True(t, s.InProgress())
	})

	t.Run("statuses are exclusive and exhaustive", func(t *testing.T) {
		states := []State{
			{Boards: []BoardState{missedBoard(0), missedBoard(0), missedBoard(0), missedBoard(0)}},
			{Boards: []BoardState{solvedBoard("A"), missedBoard(5), missedBoard(5), missedBoard(5)}},
			{Boards: []BoardState{solvedBoard("A"), solvedBoard("B"), solvedBoard("C"), solvedBoard("D")}},
			{Boards: []BoardState{missedBoard(9), missedBoard(9), missedBoard(9), missedBoard(9)}},
		}
		for _, s := range states {
			count := 0
			for _, v := range []bool{s.IsSolved(), s.IsFailed(), s.InProgress()} {
				if v {
					count++
				}
			}
			assert.Equal(t, 1, count)
			assert.Equal(t, s.InProgress(), !s.IsSolved() && !s.IsFailed())
		}
	})
}

func TestState_NumAttempts_TakesMax(t *testing.T) {
	// Boards can diverge transiently mid-observation; the max wins.
	s := State{Boards: []BoardState{
		missedBoard(3), missedBoard(4), missedBoard(3), missedBoard(3),
	}}
	assert.Equal(t, 4, s.NumAttempts())
}

func TestState_SolvedWords(t *testing.T) {
	s := State{Boards: []BoardState{
		solvedBoard("STARE"), missedBoard(2), solvedBoard("CLOUD"), missedBoard(2),
	}}
	assert.Equal(t, []string{"STARE", "", "CLOUD", ""}, s.SolvedWords())
}

func TestState_JSONRoundTrip(t *testing.T) {
	s := State{Boards: []BoardState{
		{Attempts: []Attempt{
			attempt("CRANE", TileCorrect, TileAbsent, TileAbsent, TilePresent, TileAbsent),
			attempt("STOIC", TileCorrect, TileCorrect, TileCorrect, TileCorrect, TileCorrect),
		}},
		missedBoard(2), missedBoard(2), missedBoard(2),
	}}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(raw, &back))
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivations_Idempotent(t *testing.T) {
	s := State{Boards: []BoardState{
		{Attempts: []Attempt{attempt("CRANE", TileCorrect, TileAbsent, TileAbsent, TilePresent, TileAbsent)}},
		missedBoard(1), missedBoard(1), missedBoard(1),
	}}

	assert.Equal(t, s.IsSolved(), s.IsSolved())
	assert.Equal(t, s.NumAttempts(), s.NumAttempts())
	assert.Equal(t, s.UsedLetters().Letters(), s.UsedLetters().Letters())
	assert.Equal(t, s.PromptText(), s.PromptText())
}
