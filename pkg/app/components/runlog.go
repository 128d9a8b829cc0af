package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/app/styles"
)

// RunEntry is one finished generation attempt.
type RunEntry struct {
	Path    string
	Summary string
	Err     error
}

// RunLog renders the session's generation history, newest first.
type RunLog struct {
	Entries []RunEntry
	Limit   int
	Width   int
}

func NewRunLog() *RunLog {
	return &RunLog{Limit: 8, Width: 80}
}

func (r *RunLog) Add(entry RunEntry) {
	r.Entries = append([]RunEntry{entry}, r.Entries...)
	if r.Limit > 0 && len(r.Entries) > r.Limit {
		r.Entries = r.Entries[:r.Limit]
	}
}

func (r *RunLog) View() string {
	if len(r.Entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Previous runs"))
	b.WriteString("\n\n")

	for _, entry := range r.Entries {
		path := styles.TextStyle.Render(entry.Path)
		var status string
		if entry.Err != nil {
			status = styles.StatusError.Render(fmt.Sprintf("failed: %s", entry.Err))
		} else {
			status = styles.StatusCompleted.Render(entry.Summary)
		}
		card := lipgloss.JoinVertical(lipgloss.Left, path, status)
		b.WriteString(styles.CardStyle.Width(r.Width - 4).Render(card))
		b.WriteString("\n")
	}
	return b.String()
}
