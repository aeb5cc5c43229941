package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	currentFileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	counterStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// progressModel drives the audit progress view: a spinner, a progress bar
// and the most recently finished file.
type progressModel struct {
	spinner    spinner.Model
	bar        progress.Model
	total      int
	finished   int
	violations int
	current    string
	done       bool
	width      int
}

func newProgressModel(total int) progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return progressModel{
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   total,
		width:   60,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.bar.Width = msg.Width - 10

		return pm, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			pm.done = true

			return pm, tea.Quit
		}

		return pm, nil

	case fileAuditedMsg:
		pm.finished++
		pm.violations += msg.violations
		pm.current = msg.path

		if pm.total > 0 {
			return pm, pm.bar.SetPercent(float64(pm.finished) / float64(pm.total))
		}

		return pm, nil

	case auditDoneMsg:
		pm.done = true

		return pm, tea.Quit

	case progress.FrameMsg:
		bar, cmd := pm.bar.Update(msg)
		if updated, ok := bar.(progress.Model); ok {
			pm.bar = updated
		}

		return pm, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	default:
		return pm, nil
	}
}

func (pm progressModel) View() string {
	if pm.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s auditing %s of %s files\n",
		pm.spinner.View(),
		counterStyle.Render(fmt.Sprintf("%d", pm.finished)),
		counterStyle.Render(fmt.Sprintf("%d", pm.total))))

	b.WriteString(pm.bar.View())
	b.WriteString("\n")

	if pm.current != "" {
		b.WriteString(currentFileStyle.Render(pm.current))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d violation(s) so far, press q to abort", pm.violations)))
	b.WriteString("\n")

	return b.String()
}
