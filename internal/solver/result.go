package solver

import (
	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

// ResultFromTranscript rebuilds a terminal Result from persisted state and
// chat transcript, for regenerating a replay without re-running the game.
func ResultFromTranscript(state game.State, messages []ledger.Message) (*Result, error) {
	l := ledger.FromMessages(messages)
	sys, err := l.SystemMessage()
	if err != nil {
		return nil, err
	}

	outcome := OutcomeFailed
	if state.IsSolved() {
		outcome = OutcomeSolved
	}

	return &Result{
		State:         state,
		Outcome:       outcome,
		SystemMessage: sys,
		Exchanges:     l.Exchanges(),
	}, nil
}
