package solver

import (
	"fmt"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

// ClosingMessages builds the outcome banter appended to the replay after the
// final exchange. This lives outside the turn loop: the state machine ends at
// the terminal decision, and the orchestration layer decorates the result.
func ClosingMessages(result *Result) []ledger.Message {
	if result.Outcome == OutcomeSolved {
		return []ledger.Message{
			{Role: ledger.RoleUser, Content: fmt.Sprintf(
				"You solved all four words in %d attempts. Incredible work!", result.State.NumAttempts())},
			{Role: ledger.RoleAssistant, Content: "What a game! Four boards, one set of guesses, and every word " +
				"fell into place. Let me paint something to celebrate the winning words."},
		}
	}
	return []ledger.Message{
		{Role: ledger.RoleUser, Content: fmt.Sprintf(
			"All %d attempts used and the boards held out. Better luck tomorrow.", game.MaxAttempts)},
		{Role: ledger.RoleAssistant, Content: "A tough set today. Some words just refuse to be found. " +
			"I'll be back for the next puzzle."},
	}
}
