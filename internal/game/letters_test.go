package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterClassification(t *testing.T) {
	// One board, CRANE with C correct and N present.
	s := State{Boards: []BoardState{
		{Attempts: []Attempt{
			attempt("CRANE", TileCorrect, TileAbsent, TileAbsent, TilePresent, TileAbsent),
		}},
		{}, {}, {},
	}}

	t.Run("present includes correct and present tiles", func(t *testing.T) {
		present := s.UsedAndPresentLetters()
		assert.Equal(t, []string{"C", "N"}, present.Letters())
	})

	t.Run("absent is used minus present", func(t *testing.T) {
		absent := s.UsedAndAbsentLetters()
		assert.Equal(t, []string{"A", "E", "R"}, absent.Letters())
	})

	t.Run("unused excludes every guessed letter", func(t *testing.T) {
		unused := s.UnusedLetters()
		for _, l := range []rune("CRANE") {
			assert.False(t, unused.Contains(l), "letter %c should not be unused", l)
		}
		assert.Len(t, unused.Letters(), 21)
	})
}

func TestLetterClassification_PresentBeatsAbsent(t *testing.T) {
	// E is absent on board 1 but present on board 2. The global
	// classification gives present priority.
	s := State{Boards: []BoardState{
		{Attempts: []Attempt{
			attempt("CRANE", TileAbsent, TileAbsent, TileAbsent, TileAbsent, TileAbsent),
		}},
		{Attempts: []Attempt{
			attempt("CRANE", TileAbsent, TileAbsent, TileAbsent, TileAbsent, TilePresent),
		}},
		{}, {},
	}}

	assert.True(t, s.UsedAndPresentLetters().Contains('E'))
	assert.False(t, s.UsedAndAbsentLetters().Contains('E'))
	assert.True(t, s.UsedAndAbsentLetters().Contains('C'))
}

func TestPromptText_IncludesLetterSets(t *testing.T) {
	s := State{Boards: []BoardState{
		{Attempts: []Attempt{
			attempt("CRANE", TileCorrect, TileAbsent, TileAbsent, TilePresent, TileAbsent),
		}},
		{}, {}, {},
	}}

	text := s.PromptText()
	assert.Contains(t, text, "Attempts: 1 / 9")
	assert.Contains(t, text, "C, N")
	assert.Contains(t, text, "A, E, R")
	assert.True(t, strings.Contains(text, "Board 1"))
	assert.True(t, strings.Contains(text, "Board 4"))
}
