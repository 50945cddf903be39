package game

// LetterSet is an A-Z membership set. Letters() walks the alphabet in order
// so prompt rendering stays deterministic.
type LetterSet map[rune]bool

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Contains reports membership for an uppercase letter.
func (ls LetterSet) Contains(r rune) bool { return ls[r] }

// Letters returns the members in alphabetical order.
func (ls LetterSet) Letters() []string {
	out := make([]string, 0, len(ls))
	for _, r := range alphabet {
		if ls[r] {
			out = append(out, string(r))
		}
	}
	return out
}

// UsedLetters returns every letter that appeared in any attempt word on any
// board. Recomputed in full on each call; the attempt volume is bounded at
// four boards times nine rows, so caching buys nothing.
func (s State) UsedLetters() LetterSet {
	used := LetterSet{}
	for _, b := range s.Boards {
		for _, a := range b.Attempts {
			for _, r := range a.Word {
				used[r] = true
			}
		}
	}
	return used
}

// UsedAndPresentLetters returns the letters confirmed to be in at least one
// secret word: any PRESENT or CORRECT tile, on any board, counts.
func (s State) UsedAndPresentLetters() LetterSet {
	present := LetterSet{}
	for _, b := range s.Boards {
		for _, a := range b.Attempts {
			for i, f := range a.Feedback {
				if i >= len(a.Word) {
					break
				}
				if f == TileCorrect || f == TilePresent {
					present[rune(a.Word[i])] = true
				}
			}
		}
	}
	return present
}

// UsedAndAbsentLetters returns used letters that never showed up PRESENT or
// CORRECT anywhere. This is a global per-letter classification, not a
// per-board truth: a letter absent on one board but present on another is
// classified present. The prompt text and replay both rely on this exact
// precedence.
func (s State) UsedAndAbsentLetters() LetterSet {
	used := s.UsedLetters()
	present := s.UsedAndPresentLetters()
	absent := LetterSet{}
	for r := range used {
		if !present[r] {
			absent[r] = true
		}
	}
	return absent
}

// UnusedLetters returns the letters never tried in any guess.
func (s State) UnusedLetters() LetterSet {
	used := s.UsedLetters()
	unused := LetterSet{}
	for _, r := range alphabet {
		if !used[r] {
			unused[r] = true
		}
	}
	return unused
}
