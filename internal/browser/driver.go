// Package browser automates the live Quordle page with a headless Chrome:
// parsing the tile grid into a game state and injecting guesses as
// keystrokes. It owns the browser exclusively for the lifetime of one game
// run; Close releases it on every exit path.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
)

// DefaultURL is the daily Quordle puzzle.
const DefaultURL = "https://www.merriam-webster.com/games/quordle"

// userAgent masks the headless runtime; the site serves a degraded page to
// obvious bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Selectors for the Quordle DOM.
const (
	boardsSelector = "div[aria-label='Game Boards']"
	rowSelector    = "div.quordle-guess-row"
	tileSelector   = "div.quordle-box"
	letterSelector = "div.quordle-box-content"
	classCorrect   = "bg-box-correct"
	classPresent   = "bg-box-diff"
	classAbsent    = "bg-zinc-200"
)

var (
	// ErrPageState is returned when the board DOM cannot be parsed into a
	// well-formed game state.
	ErrPageState = errors.New("browser: unexpected page state")

	// ErrNotAvailable is returned by FinalAnswers while the game is still in
	// progress.
	ErrNotAvailable = errors.New("browser: final answers not available")
)

// Config holds browser settings.
type Config struct {
	URL               string
	Headless          bool
	NavigationTimeout time.Duration
	BoardWaitTimeout  time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		URL:               DefaultURL,
		Headless:          true,
		NavigationTimeout: 10 * time.Second,
		BoardWaitTimeout:  5 * time.Second,
	}
}

// Driver implements solver.PageAutomation over a rod-controlled Chrome.
type Driver struct {
	cfg      Config
	log      *zap.Logger
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// NewDriver builds an unstarted driver.
func NewDriver(cfg Config, log *zap.Logger) *Driver {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.NavigationTimeout == 0 {
		cfg.NavigationTimeout = 10 * time.Second
	}
	if cfg.BoardWaitTimeout == 0 {
		cfg.BoardWaitTimeout = 5 * time.Second
	}
	return &Driver{cfg: cfg, log: log}
}

// Start launches Chrome, navigates to the puzzle and waits for the boards to
// appear. On any failure it releases whatever was acquired.
func (d *Driver) Start(ctx context.Context) error {
	d.launcher = launcher.New().
		Headless(d.cfg.Headless).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-extensions").
		Set("blink-settings", "imagesEnabled=false").
		Set("user-agent", userAgent)

	controlURL, err := d.launcher.Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		d.launcher.Cleanup()
		return fmt.Errorf("connect to chrome: %w", err)
	}
	d.browser = browser

	page, err := browser.Page(proto.TargetCreateTarget{URL: d.cfg.URL})
	if err != nil {
		d.Close()
		return fmt.Errorf("open page: %w", err)
	}
	d.page = page

	// The page keeps loading ad iframes long after the game is usable, so a
	// navigation timeout is not fatal; the board wait below is the real gate.
	if err := page.Timeout(d.cfg.NavigationTimeout).WaitLoad(); err != nil {
		d.log.Warn("page load timed out, continuing", zap.Error(err))
	}

	if _, err := page.Timeout(d.cfg.BoardWaitTimeout).Element(boardsSelector); err != nil {
		d.Close()
		return fmt.Errorf("wait for game boards: %w", err)
	}

	d.log.Info("game page ready", zap.String("url", d.cfg.URL))
	return nil
}

// Observe parses the current tile grid into a game state.
func (d *Driver) Observe(ctx context.Context) (game.State, error) {
	if d.page == nil {
		return game.State{}, fmt.Errorf("%w: driver not started", ErrPageState)
	}
	page := d.page.Context(ctx)

	container, err := page.Element(boardsSelector)
	if err != nil {
		return game.State{}, fmt.Errorf("%w: boards container missing: %v", ErrPageState, err)
	}

	boardEls, err := boardElements(container)
	if err != nil {
		return game.State{}, err
	}

	boards := make([]game.BoardState, 0, game.NumBoards)
	for i, boardEl := range boardEls {
		board, err := parseBoard(boardEl)
		if err != nil {
			return game.State{}, fmt.Errorf("%w: board %d: %v", ErrPageState, i+1, err)
		}
		boards = append(boards, board)
	}
	return game.State{Boards: boards}, nil
}

// boardElements finds the four game boards inside the container. The page
// lays them out as two rows of two.
func boardElements(container *rod.Element) ([]*rod.Element, error) {
	rows := []string{"Game Boards Row 1", "Game Boards Row 1", "Game Boards Row 2", "Game Boards Row 2"}
	boards := make([]*rod.Element, 0, game.NumBoards)
	for i, row := range rows {
		sel := fmt.Sprintf("div[aria-label='%s'] > div[aria-label='Game Board %d']", row, i+1)
		el, err := container.Element(sel)
		if err != nil {
			return nil, fmt.Errorf("%w: game board %d missing: %v", ErrPageState, i+1, err)
		}
		boards = append(boards, el)
	}
	return boards, nil
}

func parseBoard(boardEl *rod.Element) (game.BoardState, error) {
	rows, err := boardEl.Elements(rowSelector)
	if err != nil {
		return game.BoardState{}, fmt.Errorf("guess rows: %w", err)
	}

	var board game.BoardState
	for _, row := range rows {
		attempt, err := parseAttempt(row)
		if err != nil {
			return game.BoardState{}, err
		}
		if attempt.Word == "" {
			continue // unplayed row
		}
		board.Attempts = append(board.Attempts, attempt)
	}
	return board, nil
}

func parseAttempt(row *rod.Element) (game.Attempt, error) {
	tiles, err := row.Elements(tileSelector)
	if err != nil {
		return game.Attempt{}, fmt.Errorf("tiles: %w", err)
	}

	var word strings.Builder
	feedback := make([]game.TileState, 0, len(tiles))
	for _, tile := range tiles {
		letterEl, err := tile.Element(letterSelector)
		if err != nil {
			return game.Attempt{}, fmt.Errorf("tile content: %w", err)
		}
		letter, err := letterEl.Text()
		if err != nil {
			return game.Attempt{}, fmt.Errorf("tile text: %w", err)
		}
		word.WriteString(strings.ToUpper(strings.TrimSpace(letter)))

		classAttr, err := tile.Attribute("class")
		if err != nil {
			return game.Attempt{}, fmt.Errorf("tile class: %w", err)
		}
		feedback = append(feedback, tileStateFor(classAttr))
	}

	return game.Attempt{Word: strings.TrimSpace(word.String()), Feedback: feedback}, nil
}

func tileStateFor(classAttr *string) game.TileState {
	if classAttr == nil {
		return game.TileEmpty
	}
	switch {
	case strings.Contains(*classAttr, classCorrect):
		return game.TileCorrect
	case strings.Contains(*classAttr, classPresent):
		return game.TilePresent
	case strings.Contains(*classAttr, classAbsent):
		return game.TileAbsent
	default:
		return game.TileEmpty
	}
}

// SubmitGuess types the word one letter at a time and confirms with Enter.
func (d *Driver) SubmitGuess(ctx context.Context, word string) error {
	if d.page == nil {
		return fmt.Errorf("%w: driver not started", ErrPageState)
	}
	page := d.page.Context(ctx)

	for _, r := range word {
		if err := page.InsertText(string(r)); err != nil {
			return fmt.Errorf("type letter %q: %w", r, err)
		}
	}
	if err := page.Keyboard.Press(input.Enter); err != nil {
		return fmt.Errorf("press enter: %w", err)
	}

	// Give the tile flip animation a beat before the next observation.
	time.Sleep(500 * time.Millisecond)
	return nil
}

// FinalAnswers returns the four secret words once the game has ended. Words
// for solved boards come from the winning attempt; an unsolved board's word
// is unknown to the DOM we parse and is returned empty.
func (d *Driver) FinalAnswers(ctx context.Context) ([]string, error) {
	state, err := d.Observe(ctx)
	if err != nil {
		return nil, err
	}
	if state.InProgress() {
		return nil, ErrNotAvailable
	}
	return state.SolvedWords(), nil
}

// Close shuts down the page, the browser and the launched Chrome process.
// Safe to call multiple times and on a partially started driver.
func (d *Driver) Close() {
	if d.page != nil {
		_ = d.page.Close()
		d.page = nil
	}
	if d.browser != nil {
		_ = d.browser.Close()
		d.browser = nil
	}
	if d.launcher != nil {
		d.launcher.Cleanup()
		d.launcher = nil
	}
}
