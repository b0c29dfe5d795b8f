package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"erpx/internal/models"
	"erpx/internal/theme"
)

// RenderProjects renders the project list pane. cursor is the highlighted
// row, selectedID the project whose detail pane is open.
func RenderProjects(projects []models.Project, cursor int, selectedID int, width int, scheme theme.Scheme) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title)).
		Render("Projects")

	if len(projects) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Muted)).
			Render("No projects found.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}

	rows := []string{header, ""}
	for i, project := range projects {
		rows = append(rows, renderProjectRow(project, i == cursor, project.ID == selectedID, width, scheme))
	}

	return lipgloss.NewStyle().
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderProjectRow(project models.Project, atCursor, selected bool, width int, scheme theme.Scheme) string {
	nameStyle := lipgloss.NewStyle().Bold(atCursor)
	if selected {
		nameStyle = nameStyle.Foreground(lipgloss.Color(scheme.Selected))
	}

	marker := "  "
	if atCursor {
		marker = "> "
	}

	name := nameStyle.Render(project.Name)
	badge := StatusBadge(string(project.Status), scheme)

	line := fmt.Sprintf("%s%s %s", marker, name, badge)

	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Muted)).
		Render(fmt.Sprintf("    %s · due %s", truncate(project.Description, width-14), project.EndDate))

	return lipgloss.JoinVertical(lipgloss.Left, line, meta)
}

// StatusBadge renders a colored badge for a project or work order status
func StatusBadge(status string, scheme theme.Scheme) string {
	var fg string
	switch status {
	case string(models.ProjectInProgress):
		fg = scheme.Warning
	case string(models.ProjectCompleted):
		fg = scheme.Success
	case string(models.ProjectOnHold), string(models.WorkOrderCancelled):
		fg = scheme.Error
	default:
		fg = scheme.Info
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Render("[" + status + "]")
}

// truncate shortens s to max runes, never cutting inside a multibyte rune
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 3 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
