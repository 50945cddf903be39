package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/joe-boudreau/llm-quordle-solver/internal/artist"
	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/ledger"
	"github.com/joe-boudreau/llm-quordle-solver/internal/solver"
	"github.com/joe-boudreau/llm-quordle-solver/internal/stats"
)

func sampleResult() *solver.Result {
	correct := []game.TileState{
		game.TileCorrect, game.TileCorrect, game.TileCorrect, game.TileCorrect, game.TileCorrect,
	}
	b := game.BoardState{Attempts: []game.Attempt{{Word: "STARE", Feedback: correct}}}
	return &solver.Result{
		State:         game.State{Boards: []game.BoardState{b, b, b, b}},
		Outcome:       solver.OutcomeSolved,
		SystemMessage: ledger.Message{Role: ledger.RoleSystem, Content: "sys"},
		Exchanges: []ledger.Exchange{{
			Prompt: ledger.Message{Role: ledger.RoleUser, Content: "board state here"},
			Guess:  ledger.Message{Role: ledger.RoleAssistant, Content: `{"reasoning":"good opener","final_answer":"STARE"}`},
		}},
	}
}

// collect walks the parsed document and returns nodes with the given class.
func collect(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, a := range node.Attr {
				if a.Key == "class" && strings.Contains(a.Val, class) {
					out = append(out, node)
					break
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestRender_Structure(t *testing.T) {
	closing := solver.ClosingMessages(sampleResult())
	doc, err := Render(sampleResult(), closing, nil, nil)
	require.NoError(t, err)

	root, err := html.Parse(bytes.NewReader(doc))
	require.NoError(t, err)

	t.Run("four boards of nine rows", func(t *testing.T) {
		boards := collect(root, "board-container")
		require.Len(t, boards, 4)
		rows := collect(root, "board-row")
		assert.Len(t, rows, 4*game.MaxAttempts)
	})

	t.Run("played rows carry reveal data", func(t *testing.T) {
		rows := collect(root, "board-row")
		first := rows[0]
		assert.Equal(t, "STARE", attr(first, "data-word"))
		assert.Equal(t, "CORRECT,CORRECT,CORRECT,CORRECT,CORRECT", attr(first, "data-feedback"))
		// Unplayed row has no word.
		assert.Empty(t, attr(rows[1], "data-word"))
	})

	t.Run("chat pane holds exchanges plus closing, no system", func(t *testing.T) {
		msgs := collect(root, "message")
		assert.Len(t, msgs, 2+len(closing))
		for _, m := range msgs {
			assert.NotEqual(t, "system", attr(m, "data-role"))
		}
	})

	t.Run("assistant content is unwrapped", func(t *testing.T) {
		text := string(doc)
		assert.Contains(t, text, "good opener")
		assert.Contains(t, text, "Final answer: STARE")
		assert.NotContains(t, text, "final_answer")
	})
}

func TestRender_Decorations(t *testing.T) {
	st := stats.NewGuesserStats()
	st.WinCount = 3
	st.CurrentStreak = 2
	art := &artist.Artwork{Prompt: "four words in pixel art", PNG: []byte{0x89, 0x50, 0x4e, 0x47}}

	doc, err := Render(sampleResult(), nil, &st, art)
	require.NoError(t, err)
	text := string(doc)

	assert.Contains(t, text, "Wins: 3")
	assert.Contains(t, text, "data:image/png;base64,")
	assert.Contains(t, text, "four words in pixel art")
}

func TestRender_NoDecorations(t *testing.T) {
	doc, err := Render(sampleResult(), nil, nil, nil)
	require.NoError(t, err)
	text := string(doc)

	assert.NotContains(t, text, "class=\"stats\"")
	assert.NotContains(t, text, "class=\"artwork\"")
}
