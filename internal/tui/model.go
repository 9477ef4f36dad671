package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sdevries/fileshelf/pkg/classify"
	"github.com/sdevries/fileshelf/pkg/models"
	"github.com/sdevries/fileshelf/pkg/organize"
	"github.com/sdevries/fileshelf/pkg/output"
	"github.com/sdevries/fileshelf/pkg/storage"
)

type state int

const (
	stateForm state = iota
	stateRunning
	stateDone
)

const (
	fieldSource = iota
	fieldDest
	fieldCount
)

// organizeDoneMsg carries the structured result of a finished run back
// into the render loop. The core returns data; the TUI formats it.
type organizeDoneMsg struct {
	summary *models.RunSummary
	err     error
}

// Model is the interactive front end over the organizer core
type Model struct {
	state          state
	source         textinput.Model
	dest           textinput.Model
	focus          int
	dryRun         bool
	showCategories bool
	spinner        spinner.Model
	results        viewport.Model
	summary        *models.RunSummary
	err            error
	width          int
}

// NewModel creates the TUI model with the source input focused.
// defaultSource seeds the source field.
func NewModel(defaultSource string) Model {
	source := textinput.New()
	source.Placeholder = "directory to organize"
	source.SetValue(defaultSource)
	source.CharLimit = 256
	source.Width = 48
	source.Focus()

	dest := textinput.New()
	dest.Placeholder = "destination (empty = same as source)"
	dest.CharLimit = 256
	dest.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	results := viewport.New(72, 16)

	return Model{
		state:   stateForm,
		source:  source,
		dest:    dest,
		spinner: sp,
		results: results,
		width:   76,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.results.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.state == stateDone {
				// Back to the form for another run
				m.state = stateForm
				m.summary = nil
				m.err = nil
				return m, nil
			}
			return m, tea.Quit
		case "q":
			if m.state == stateDone {
				return m, tea.Quit
			}
		case "tab", "shift+tab":
			if m.state == stateForm {
				return m.cycleFocus(msg.String() == "tab"), nil
			}
		case "ctrl+p":
			if m.state == stateForm {
				m.dryRun = !m.dryRun
				return m, nil
			}
		case "ctrl+t":
			m.showCategories = !m.showCategories
			return m, nil
		case "enter":
			if m.state == stateForm {
				return m.startRun()
			}
		}

	case organizeDoneMsg:
		m.state = stateDone
		m.summary = msg.summary
		m.err = msg.err
		m.results.SetContent(m.renderResults())
		m.results.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.state == stateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	switch m.state {
	case stateForm:
		var cmd tea.Cmd
		if m.focus == fieldSource {
			m.source, cmd = m.source.Update(msg)
		} else {
			m.dest, cmd = m.dest.Update(msg)
		}
		cmds = append(cmds, cmd)
	case stateDone:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) cycleFocus(forward bool) Model {
	if forward {
		m.focus = (m.focus + 1) % fieldCount
	} else {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	}
	if m.focus == fieldSource {
		m.source.Focus()
		m.dest.Blur()
	} else {
		m.dest.Focus()
		m.source.Blur()
	}
	return m
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	source := strings.TrimSpace(m.source.Value())
	if source == "" {
		m.err = fmt.Errorf("source directory is required")
		return m, nil
	}
	dest := strings.TrimSpace(m.dest.Value())
	if dest == "" {
		dest = source
	}

	m.state = stateRunning
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, organizeCmd(source, dest, m.dryRun))
}

// organizeCmd runs the organizer off the render loop and delivers the
// summary as a message once it completes.
func organizeCmd(source, dest string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		backend, err := storage.NewLocal(source)
		if err != nil {
			return organizeDoneMsg{err: fmt.Errorf("source not found: %w", err)}
		}
		defer backend.Close()

		run := &models.OrganizeRun{
			ID:         uuid.New().String(),
			SourcePath: backend.Root(),
			DestPath:   dest,
			DryRun:     dryRun,
			CreatedAt:  time.Now(),
		}
		organizer := organize.New(backend, classify.New(classify.DefaultTable), nil, nil, run)

		summary, err := organizer.Run(context.Background())
		return organizeDoneMsg{summary: summary, err: err}
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("fileshelf"))
	b.WriteString("\n")

	switch m.state {
	case stateForm:
		b.WriteString(m.renderField("Source", m.source, m.focus == fieldSource))
		b.WriteString(m.renderField("Destination", m.dest, m.focus == fieldDest))

		mode := "move files"
		if m.dryRun {
			mode = "preview only (dry run)"
		}
		b.WriteString(labelStyle.Render("Mode: ") + mode + "\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
		}
		b.WriteString(helpStyle.Render("tab: switch field • ctrl+p: toggle preview • ctrl+t: categories • enter: run • esc: quit"))

	case stateRunning:
		b.WriteString(m.spinner.View() + " Organizing...\n")

	case stateDone:
		b.WriteString(resultsStyle.Render(m.results.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: scroll • esc: new run • q: quit"))
	}

	if m.showCategories {
		b.WriteString("\n\n")
		b.WriteString(output.RenderCategoryTable(classify.DefaultTable))
	}

	return b.String()
}

func (m Model) renderField(label string, input textinput.Model, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	return style.Render(label+":") + " " + input.View() + "\n"
}

// renderResults formats the finished summary for the results viewport
func (m Model) renderResults() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if m.summary == nil {
		return ""
	}

	var b strings.Builder
	summary := m.summary

	if summary.Empty() {
		b.WriteString("No files found to organize.\n")
		return b.String()
	}

	if summary.DryRun {
		b.WriteString(fmt.Sprintf("Preview of %s (%d files):\n\n", summary.SourcePath, summary.FilesScanned))
		for _, preview := range summary.Previews {
			b.WriteString(fmt.Sprintf("  %s → %s/\n", preview.Name, preview.Category))
		}
		b.WriteString("\nNo files were moved.\n")
		return b.String()
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("Moved %d of %d files", len(summary.Successes), summary.FilesScanned)))
	b.WriteString("\n\n")
	for _, success := range summary.Successes {
		if success.FinalName != success.OriginalName {
			b.WriteString(fmt.Sprintf("  %s → %s/%s\n", success.OriginalName, success.Category, success.FinalName))
		} else {
			b.WriteString(fmt.Sprintf("  %s → %s/\n", success.OriginalName, success.Category))
		}
	}

	if len(summary.Failures) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d failures:", len(summary.Failures))))
		b.WriteString("\n")
		for _, failure := range summary.Failures {
			b.WriteString(fmt.Sprintf("  %s: %s\n", failure.OriginalName, failure.Error))
		}
	}

	if len(summary.CategoryCounts) > 0 {
		b.WriteString("\n")
		b.WriteString(output.RenderCountsTable(summary.CategoryCounts))
		b.WriteString("\n")
	}

	return b.String()
}
