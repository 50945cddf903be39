package replay

import (
	"encoding/json"
	"html/template"
)

func jsonUnmarshal(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

var pageTemplate = template.Must(template.New("replay").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Quordle Replay</title>
<style>
    body { margin: 0; padding: 0; font-family: 'Clear Sans', 'Helvetica Neue', Arial, sans-serif; }
    .container { display: flex; height: 100vh; }
    .left { flex: 1; padding: 20px; background: #f0f0f0; overflow: auto; }
    .right { flex: 1; padding: 10px; background: #ffffff; position: relative; display: flex; flex-direction: column; overflow: auto; }
    .boards-grid { display: grid; grid-template-columns: repeat(2, 1fr); grid-template-rows: repeat(2, 1fr); gap: 12px; width: 320px; margin-bottom: 20px; }
    .board-container { background: #ffffff; border: 1px solid #d3d6da; border-radius: 4px; padding: 8px; }
    .board-row { display: flex; gap: 4px; margin-bottom: 4px; }
    .board-row:last-child { margin-bottom: 0; }
    .tile { width: 28px; height: 28px; display: flex; justify-content: center; align-items: center; font-weight: bold; font-size: 14px; text-transform: uppercase; border: 2px solid #d3d6da; }
    .tile.CORRECT { background-color: #6aaa64; border-color: #6aaa64; color: white; }
    .tile.PRESENT { background-color: #c9b458; border-color: #c9b458; color: white; }
    .tile.ABSENT { background-color: #787c7e; border-color: #787c7e; color: white; }
    .tile.placeholder { background-color: #ffffff; border-color: #d3d6da; color: transparent; }
    .message { margin: 5px; padding: 8px 12px; border-radius: 8px; white-space: pre-wrap; max-width: 70%; }
    .message[data-role="user"] { align-self: flex-end; background-color: #e1ffc7; }
    .message[data-role="assistant"] { align-self: flex-start; background-color: #ffffff; border: 1px solid #ddd; }
    .hidden { display: none; }
    .role-indicator { display: block; font-style: italic; font-size: 0.75em; margin-bottom: 4px; color: #666; }
    .stats { margin-top: 20px; font-size: 0.85em; color: #333; }
    .artwork { max-width: 320px; margin-top: 20px; border-radius: 4px; }
</style>
</head>
<body>
<div class="container">
    <div class="left">
        <div class="boards-grid">
{{- range .Boards}}
            <div class="board-container">
{{- range .Rows}}
                <div class="board-row" data-attempt-index="{{.Index}}"{{if .Word}} data-word="{{.Word}}" data-feedback="{{.Feedback}}"{{end}}>
                    <span class="tile placeholder"></span><span class="tile placeholder"></span><span class="tile placeholder"></span><span class="tile placeholder"></span><span class="tile placeholder"></span>
                </div>
{{- end}}
            </div>
{{- end}}
        </div>
{{- if .Stats}}
        <div class="stats">
            <p>Wins: {{.Stats.WinCount}} &middot; Losses: {{.Stats.LossCount}} &middot; Streak: {{.Stats.CurrentStreak}}</p>
        </div>
{{- end}}
{{- if .ImageURI}}
        <img class="artwork" src="{{.ImageURI}}" alt="{{.ImageAlt}}">
{{- end}}
    </div>
    <div class="right">
{{- range .Messages}}
        <div class="message hidden" data-index="{{.Index}}" data-role="{{.Role}}">
            <small class="role-indicator"><i>{{.Label}}</i></small>
            <p>{{.Content}}</p>
        </div>
{{- end}}
    </div>
</div>
<script>
    const messages = document.querySelectorAll('.message');
    let current = 0;
    let attemptCount = 0;
    function revealRowsForAttempt(idx) {
        document.querySelectorAll('[data-attempt-index="'+idx+'"]').forEach(row => {
            const word = row.getAttribute('data-word') || '';
            const feedback = (row.getAttribute('data-feedback') || '').split(',');
            row.querySelectorAll('.tile').forEach((tile, i) => {
                tile.classList.remove('placeholder');
                if (feedback[i]) {
                    tile.classList.add(feedback[i]);
                }
                tile.innerText = word.charAt(i) || '';
            });
        });
    }
    function showNext() {
        if (current >= messages.length) return;
        const el = messages[current];
        const role = el.getAttribute('data-role');
        el.classList.remove('hidden');
        const container = document.querySelector('.right');
        setTimeout(() => { container.scrollTop = container.scrollHeight; }, 100);
        const text = el.innerText;
        el.innerText = '';
        let i = 0;
        function typeChar() {
            if (i < text.length) {
                el.innerText += text.charAt(i);
                i++;
                setTimeout(typeChar, 0);
            } else {
                if (role === 'assistant') {
                    revealRowsForAttempt(attemptCount);
                    attemptCount++;
                }
                current++;
                setTimeout(showNext, 500);
            }
        }
        typeChar();
    }
    window.onload = showNext;
</script>
</body>
</html>
`))
