// Package replay renders a finished game into a single self-contained HTML
// document: the four boards on the left replaying guess by guess, the
// conversation with the agent typing itself out on the right.
package replay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/joe-boudreau/llm-quordle-solver/internal/artist"
	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
	"github.com/joe-boudreau/llm-quordle-solver/internal/solver"
	"github.com/joe-boudreau/llm-quordle-solver/internal/stats"
)

type rowView struct {
	Index    int
	Word     string
	Feedback string // comma-joined tile state names
}

type boardView struct {
	Rows []rowView
}

type messageView struct {
	Index   int
	Role    string
	Label   string
	Content string
}

type pageView struct {
	Boards   []boardView
	Messages []messageView
	Stats    *stats.GuesserStats
	ImageURI template.URL
	ImageAlt string
}

// Render produces the replay document. Closing messages follow the game
// exchanges in the chat pane; artwork and stats are optional decorations.
func Render(result *solver.Result, closing []ledger.Message, st *stats.GuesserStats, art *artist.Artwork) ([]byte, error) {
	view := pageView{
		Boards:   buildBoards(result.State),
		Messages: buildMessages(result, closing),
		Stats:    st,
	}
	if art != nil && len(art.PNG) > 0 {
		view.ImageURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(art.PNG))
		view.ImageAlt = art.Prompt
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render replay: %w", err)
	}
	return buf.Bytes(), nil
}

func buildBoards(state game.State) []boardView {
	boards := make([]boardView, len(state.Boards))
	for bi, b := range state.Boards {
		rows := make([]rowView, game.MaxAttempts)
		for ri := 0; ri < game.MaxAttempts; ri++ {
			row := rowView{Index: ri}
			if ri < len(b.Attempts) {
				a := b.Attempts[ri]
				names := make([]string, len(a.Feedback))
				for i, f := range a.Feedback {
					names[i] = string(f)
				}
				row.Word = a.Word
				row.Feedback = strings.Join(names, ",")
			}
			rows[ri] = row
		}
		boards[bi] = boardView{Rows: rows}
	}
	return boards
}

func buildMessages(result *solver.Result, closing []ledger.Message) []messageView {
	var msgs []ledger.Message
	for _, ex := range result.Exchanges {
		msgs = append(msgs, ex.Prompt, ex.Guess)
	}
	msgs = append(msgs, closing...)

	views := make([]messageView, 0, len(msgs))
	for i, m := range msgs {
		label := "user"
		if m.Role == ledger.RoleAssistant {
			label = "LLM"
		}
		views = append(views, messageView{
			Index:   i,
			Role:    string(m.Role),
			Label:   label,
			Content: formatContent(m),
		})
	}
	return views
}

// formatContent unwraps structured assistant messages into readable text.
func formatContent(m ledger.Message) string {
	if m.Role != ledger.RoleAssistant {
		return m.Content
	}
	var guess solver.GuessResponse
	if err := jsonUnmarshal(m.Content, &guess); err != nil || guess.FinalAnswer == "" {
		return m.Content
	}
	return fmt.Sprintf("%s\n\nFinal answer: %s", guess.Reasoning, guess.FinalAnswer)
}
