package screens

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/app/components"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/app/styles"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/services"
)

// PromptScreen is the interactive loop: type (or drag in) a book folder path,
// get a reader generated, repeat. An empty entry quits.
type PromptScreen struct {
	input      textinput.Model
	runs       *components.RunLog
	generating bool
	activePath string

	threshold int
	workers   int
	indexPath string
	logger    *slog.Logger

	width  int
	height int
}

type generateDoneMsg struct {
	path   string
	result *services.Result
	err    error
}

func NewPromptScreen(threshold, workers int, indexPath string, logger *slog.Logger) *PromptScreen {
	ti := textinput.New()
	ti.Placeholder = "Path to a comic folder (empty to quit)..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return &PromptScreen{
		input:     ti,
		runs:      components.NewRunLog(),
		threshold: threshold,
		workers:   workers,
		indexPath: indexPath,
		logger:    logger,
	}
}

func (p *PromptScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (p *PromptScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.runs.Width = msg.Width

	case tea.KeyMsg:
		if p.generating {
			if msg.String() == "ctrl+c" {
				return p, tea.Quit
			}
			return p, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return p, tea.Quit
		case "enter":
			path := cleanPath(p.input.Value())
			if path == "" {
				return p, tea.Quit
			}
			p.generating = true
			p.activePath = path
			p.input.SetValue("")
			return p, p.generate(path)
		}

	case generateDoneMsg:
		p.generating = false
		p.activePath = ""
		entry := components.RunEntry{Path: msg.path, Err: msg.err}
		if msg.err == nil {
			entry.Summary = fmt.Sprintf("%s (%d pages, %d chapters, %s)",
				msg.result.OutputPath, msg.result.Book.TotalPages, len(msg.result.Book.Chapters), msg.result.Mode)
		}
		p.runs.Add(entry)
	}

	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PromptScreen) View() string {
	header := styles.TitleStyle.Render("📚 Comic Reader Generator")

	inputStyle := styles.FocusedInputStyle
	if p.generating {
		inputStyle = styles.InputStyle
	}
	inputView := inputStyle.Render(p.input.View())

	var status string
	if p.generating {
		status = styles.StatusWorking.Render(fmt.Sprintf("Generating reader for %s ...", p.activePath)) + "\n"
	}

	help := styles.HelpStyle.Render("enter: generate • empty entry or esc: quit")

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s", header, inputView, status, p.runs.View(), help)
}

func (p *PromptScreen) generate(path string) tea.Cmd {
	return func() tea.Msg {
		gen := services.NewGenerator(services.Config{
			Root:      path,
			Mode:      services.ModeAuto,
			Threshold: p.threshold,
			Workers:   p.workers,
			IndexPath: p.indexPath,
		}, p.logger)
		res, err := gen.GenerateReader(context.Background())
		return generateDoneMsg{path: path, result: res, err: err}
	}
}

// cleanPath strips whitespace and the quotes shells add around dragged-in
// paths.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
