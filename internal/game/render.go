package game

import (
	"fmt"
	"strings"
)

// String renders one attempt as the letter-by-letter feedback line shown to
// the guessing agent, e.g. "CRANE => C ✓, R ✕, A ✕, N ↔, E ✕".
func (a Attempt) String() string {
	parts := make([]string, 0, len(a.Word))
	for i, r := range a.Word {
		glyph := " "
		if i < len(a.Feedback) {
			glyph = a.Feedback[i].Glyph()
		}
		parts = append(parts, fmt.Sprintf("%c %s", r, glyph))
	}
	return fmt.Sprintf("%s => %s", a.Word, strings.Join(parts, ", "))
}

// String renders a board as one attempt line per row.
func (b BoardState) String() string {
	lines := make([]string, len(b.Attempts))
	for i, a := range b.Attempts {
		lines[i] = a.String()
	}
	return strings.Join(lines, "\n")
}

// String renders the full game state in the layout the agent prompt embeds:
// an attempt-count header followed by each board's solved flag and feedback.
func (s State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Attempts: %d / %d \n", s.NumAttempts(), MaxAttempts)
	for i, b := range s.Boards {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Board %d, Solved: %t, Guess Results:\n%s", i+1, b.IsSolved(), b.String())
	}
	return sb.String()
}

// PromptText renders the state plus the derived letter classifications. This
// is the exact user-turn payload handed to the guessing agent.
func (s State) PromptText() string {
	var sb strings.Builder
	sb.WriteString(s.String())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Letters confirmed in a word (present or correct): %s\n", joinSet(s.UsedAndPresentLetters()))
	fmt.Fprintf(&sb, "Letters confirmed absent: %s\n", joinSet(s.UsedAndAbsentLetters()))
	fmt.Fprintf(&sb, "Letters not yet tried: %s\n", joinSet(s.UnusedLetters()))
	return sb.String()
}

func joinSet(ls LetterSet) string {
	letters := ls.Letters()
	if len(letters) == 0 {
		return "(none)"
	}
	return strings.Join(letters, ", ")
}
