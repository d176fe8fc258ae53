package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/derin-layout/internal/render"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	// Without a document there is nothing to draw
	if m.cfg == nil && m.err != nil {
		return m.renderError()
	}

	// Show loading until the first solve
	if !m.ready {
		return m.renderLoading()
	}

	sections := []string{
		m.renderHeader(),
		m.renderCanvas(),
	}
	if m.showTracks {
		sections = append(sections, m.renderTracks())
	}
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.styles.Border.Render(content)
}

// renderHeader renders the title line
func (m Model) renderHeader() string {
	size := m.engine.DesiredSize
	info := fmt.Sprintf("%s  %dx%d", m.cfg.Name, size.Width, size.Height)
	if m.path != "" {
		info += "  " + m.path
	}
	width := max(m.width-chromeWidth-len("Derin Layout  "), 0)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("Derin Layout"), "  ",
		m.styles.Subtle.Render(render.Truncate(info, width)))
}

// renderCanvas draws every solved widget as a box
func (m Model) renderCanvas() string {
	size := m.engine.DesiredSize
	canvas := render.Draw(size.Width, size.Height, m.names, m.results)
	return m.styles.Canvas.Render(canvas.String())
}

// renderTracks renders the track table
func (m Model) renderTracks() string {
	lines := render.TrackTable(m.engine.Grid()).Render()
	return m.styles.Tracks.Render(strings.Join(lines, "\n"))
}

// renderFooter renders the status line with help text
func (m Model) renderFooter() string {
	var status string
	switch unsolved := m.unsolved(); {
	case m.err != nil:
		status = m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case len(unsolved) > 0:
		status = m.styles.Warning.Render(fmt.Sprintf("%d unsolved: %s", len(unsolved), strings.Join(unsolved, ", ")))
	default:
		status = m.styles.OK.Render(fmt.Sprintf("%d widgets placed", len(m.results)))
	}

	extra := []string{"q: quit", "r: re-solve", "t: tracks"}
	if m.watching {
		extra = append(extra, "watching")
	}
	if m.lastSaved > 0 {
		extra = append(extra, fmt.Sprintf("saved #%d", m.lastSaved))
	}
	return status + m.styles.Muted.Render(" | "+strings.Join(extra, " | "))
}

// unsolved returns the names of the widgets the last solve could not place
func (m Model) unsolved() []string {
	var names []string
	for i, res := range m.results {
		if res.Err != nil {
			names = append(names, m.names[i])
		}
	}
	return names
}

// renderLoading renders the loading screen
func (m Model) renderLoading() string {
	loadingText := m.styles.Title.Render("Waiting for layout and terminal size...")
	return m.styles.Border.Render(loadingText)
}

// renderError renders the error screen
func (m Model) renderError() string {
	errorText := m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	hintText := m.styles.Muted.Render("\n\nFix the layout document; it is reloaded when saved.")
	helpText := m.styles.Muted.Render("\n\nq: quit")

	content := lipgloss.JoinVertical(lipgloss.Left, errorText, hintText, helpText)
	return m.styles.Border.Render(content)
}
