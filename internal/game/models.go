// Package game models the state of a Quordle puzzle: four independent boards
// sharing one guess sequence, tile-level feedback per guess, and the derived
// solved/failed/in-progress classification the turn loop branches on.
//
// Everything here is immutable value data. A fresh State is built on every
// observation of the live page; derivations are pure functions over the full
// attempt history.
package game

// NumBoards is the number of simultaneous puzzles in a Quordle game.
const NumBoards = 4

// MaxAttempts is the shared guess budget across all four boards.
const MaxAttempts = 9

// WordLength is the length of every guess and secret word.
const WordLength = 5

// TileState is the feedback colour for a single letter cell.
type TileState string

const (
	TileCorrect TileState = "CORRECT" // right letter, right position (green)
	TilePresent TileState = "PRESENT" // right letter, wrong position (yellow)
	TileAbsent  TileState = "ABSENT"  // letter not in the word (grey)
	TileEmpty   TileState = "EMPTY"   // unplayed cell
)

// Glyph returns the single-character rendering used in prompt text.
func (t TileState) Glyph() string {
	switch t {
	case TileCorrect:
		return "✓"
	case TilePresent:
		return "↔"
	case TileAbsent:
		return "✕"
	default:
		return " "
	}
}

// Attempt is one submitted guess row on one board. Word is exactly five
// uppercase letters; Feedback is positionally aligned with Word. Producers
// enforce the word constraint, the type does not.
type Attempt struct {
	Word     string      `json:"word"`
	Feedback []TileState `json:"feedback"`
}

// IsCorrect reports whether every position came back green.
func (a Attempt) IsCorrect() bool {
	if len(a.Feedback) == 0 {
		return false
	}
	for _, f := range a.Feedback {
		if f != TileCorrect {
			return false
		}
	}
	return true
}

// BoardState is the chronological attempt history for one of the four boards.
type BoardState struct {
	Attempts []Attempt `json:"attempts"`
}

// IsSolved reports whether any attempt hit the secret word.
func (b BoardState) IsSolved() bool {
	for _, a := range b.Attempts {
		if a.IsCorrect() {
			return true
		}
	}
	return false
}

// State aggregates the four board states produced by one observation of the
// game page. The same typed word lands on every board each turn, so at rest
// all boards hold the same number of attempts; NumAttempts takes the max to
// tolerate a transiently inconsistent observation.
type State struct {
	Boards []BoardState `json:"boardStates"`
}

// NumAttempts returns the number of guesses consumed so far.
func (s State) NumAttempts() int {
	max := 0
	for _, b := range s.Boards {
		if n := len(b.Attempts); n > max {
			max = n
		}
	}
	return max
}

// IsSolved reports whether all four boards are solved.
func (s State) IsSolved() bool {
	if len(s.Boards) == 0 {
		return false
	}
	for _, b := range s.Boards {
		if !b.IsSolved() {
			return false
		}
	}
	return true
}

// IsFailed reports whether the guess budget is spent without a full solve.
func (s State) IsFailed() bool {
	return s.NumAttempts() >= MaxAttempts && !s.IsSolved()
}

// InProgress reports whether the game still accepts guesses. IsSolved,
// IsFailed and InProgress are mutually exclusive and exhaustive.
func (s State) InProgress() bool {
	return !s.IsSolved() && !s.IsFailed()
}

// SolvedWords returns the secret word for each solved board, empty string for
// boards that were never cracked.
func (s State) SolvedWords() []string {
	words := make([]string, len(s.Boards))
	for i, b := range s.Boards {
		for _, a := range b.Attempts {
			if a.IsCorrect() {
				words[i] = a.Word
				break
			}
		}
	}
	return words
}
