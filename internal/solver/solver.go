// Package solver drives one Quordle game end to end: observe the page, decide
// whether the game is over, prompt the guessing agent, validate its answer,
// submit it, and reconcile the conversation ledger against what the page
// actually accepted.
package solver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
)

// DefaultGuessRetries is the total number of agent requests allowed per turn
// before the run is abandoned.
const DefaultGuessRetries = 3

var (
	// ErrInconsistentObservation is returned when the re-observed attempt
	// count moved by anything other than 0 or +1. The page model and reality
	// have diverged; the run cannot continue.
	ErrInconsistentObservation = errors.New("solver: inconsistent observation")

	// ErrGuessRetriesExhausted is returned when the agent failed to produce a
	// valid five-letter word within the retry budget.
	ErrGuessRetriesExhausted = errors.New("solver: guess retries exhausted")
)

// GuessResponse is the structured agent output. The same struct defines both
// the response schema sent to the chat API and the decode target, so the two
// cannot drift.
type GuessResponse struct {
	Reasoning   string `json:"reasoning"`
	FinalAnswer string `json:"final_answer"`
}

// PageAutomation abstracts the live game page.
type PageAutomation interface {
	// Observe parses the current tile grid into a game state.
	Observe(ctx context.Context) (game.State, error)
	// SubmitGuess types the word into the page and confirms it.
	SubmitGuess(ctx context.Context, word string) error
	// FinalAnswers returns the four secret words. Only valid once the game
	// has ended.
	FinalAnswers(ctx context.Context) ([]string, error)
}

// GuessAgent abstracts the language-model collaborator.
type GuessAgent interface {
	RequestGuess(ctx context.Context, messages []ledger.Message) (GuessResponse, error)
}

// Outcome is the terminal classification of a run.
type Outcome string

const (
	OutcomeSolved Outcome = "solved"
	OutcomeFailed Outcome = "failed"
)

// Result is the termination handoff for the persistence and rendering
// collaborators.
type Result struct {
	State         game.State
	Outcome       Outcome
	SystemMessage ledger.Message
	Exchanges     []ledger.Exchange
}

// Controller runs the turn loop. Single-threaded: every
// collaborator call blocks, and nothing else runs concurrently.
type Controller struct {
	page    PageAutomation
	agent   GuessAgent
	log     *zap.Logger
	ledger  *ledger.Ledger
	retries int
}

// Option customises a Controller.
type Option func(*Controller)

// WithRetries overrides the per-turn agent request budget.
func WithRetries(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.retries = n
		}
	}
}

// New builds a controller with a fresh ledger seeded by systemPrompt.
func New(page PageAutomation, agent GuessAgent, systemPrompt string, log *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		page:    page,
		agent:   agent,
		log:     log,
		ledger:  ledger.New(systemPrompt),
		retries: DefaultGuessRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the game to termination and returns the handoff result. Errors
// from Run are unrecoverable for this game: either an observation
// inconsistency or an exhausted guess retry budget.
func (c *Controller) Run(ctx context.Context) (*Result, error) {
	state, err := c.page.Observe(ctx)
	if err != nil {
		return nil, fmt.Errorf("initial observation: %w", err)
	}

	for state.InProgress() {
		c.log.Info("turn",
			zap.Int("attempts", state.NumAttempts()),
			zap.Bools("solved", boardFlags(state)))

		word, err := c.nextGuess(ctx, state)
		if err != nil {
			return nil, err
		}

		if err := c.page.SubmitGuess(ctx, word); err != nil {
			return nil, fmt.Errorf("submit guess %q: %w", word, err)
		}

		next, err := c.page.Observe(ctx)
		if err != nil {
			return nil, fmt.Errorf("re-observation: %w", err)
		}

		switch delta := next.NumAttempts() - state.NumAttempts(); delta {
		case 0:
			// The page refused the word. Erase the poisoned
			// (prompt, guess) pair so the agent never sees it.
			c.log.Warn("guess rejected by page", zap.String("word", word))
			if err := c.ledger.Rollback(2); err != nil {
				return nil, fmt.Errorf("rollback rejected guess: %w", err)
			}
		case 1:
			state = next
		default:
			return nil, fmt.Errorf("%w: attempt count moved by %d", ErrInconsistentObservation, delta)
		}
	}

	return c.buildResult(state)
}

// nextGuess appends the turn prompt, then requests a guess within the retry
// budget. The assistant message is appended only once a response validates,
// so failed attempts leave no trace in the ledger. On exhaustion the dangling
// turn prompt is rolled back as well.
func (c *Controller) nextGuess(ctx context.Context, state game.State) (string, error) {
	c.ledger.Append(ledger.RoleUser, state.PromptText())

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		resp, err := c.agent.RequestGuess(ctx, c.ledger.Messages())
		if err != nil {
			lastErr = err
			c.log.Warn("guess request failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		word, err := ValidateWord(resp.FinalAnswer)
		if err != nil {
			lastErr = err
			c.log.Warn("invalid guess from agent",
				zap.Int("attempt", attempt),
				zap.String("answer", resp.FinalAnswer))
			continue
		}

		raw, err := json.Marshal(resp)
		if err != nil {
			return "", fmt.Errorf("encode guess response: %w", err)
		}
		c.ledger.Append(ledger.RoleAssistant, string(raw))
		c.log.Info("agent guessed", zap.String("word", word), zap.Int("attempt", attempt))
		return word, nil
	}

	if err := c.ledger.Rollback(1); err != nil {
		c.log.Error("rollback dangling prompt", zap.Error(err))
	}
	return "", fmt.Errorf("%w after %d attempts: %v", ErrGuessRetriesExhausted, c.retries, lastErr)
}

func (c *Controller) buildResult(state game.State) (*Result, error) {
	sys, err := c.ledger.SystemMessage()
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
		Exchanges:     c.ledger.Exchanges(),
	}, nil
}

// Ledger exposes the conversation for persistence after the run.
func (c *Controller) Ledger() *ledger.Ledger {
	return c.ledger
}

// ValidateWord normalises a raw agent answer and accepts it iff it is exactly
// five characters after trimming and uppercasing. Dictionary membership is
// the game page's call, not ours.
func ValidateWord(raw string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if len([]rune(word)) != game.WordLength {
		return "", fmt.Errorf("guess %q is not %d letters", word, game.WordLength)
	}
	return word, nil
}

func boardFlags(state game.State) []bool {
	flags := make([]bool, len(state.Boards))
	for i, b := range state.Boards {
		flags[i] = b.IsSolved()
	}
	return flags
}
