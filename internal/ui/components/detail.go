package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"erpx/internal/models"
	"erpx/internal/theme"
)

// RenderDetail renders the detail pane for the selected project, including
// metrics once they are loaded.
func RenderDetail(project *models.Project, metrics *models.ProjectMetrics, orders []models.WorkOrder, bar progress.Model, width int, scheme theme.Scheme) string {
	if project == nil {
		return lipgloss.NewStyle().
			Width(width).
			Foreground(lipgloss.Color(scheme.Muted)).
			Render("Select a project to see details.")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title)).
		Render(fmt.Sprintf("Project Details: %s", project.Name))

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Muted))

	sections := []string{
		header,
		"",
		fmt.Sprintf("%s %s", muted.Render("Status:"), StatusBadge(string(project.Status), scheme)),
		fmt.Sprintf("%s %s → %s", muted.Render("Schedule:"), project.StartDate, project.EndDate),
		fmt.Sprintf("%s $%.2f", muted.Render("Budget:"), project.Budget),
		fmt.Sprintf("%s $%.2f", muted.Render("Actual cost:"), project.ActualCost),
	}

	if project.Description != "" {
		sections = append(sections, "", project.Description)
	}

	if metrics != nil {
		sections = append(sections, "", renderMetrics(*metrics, bar, width, scheme))
	} else {
		sections = append(sections, "", muted.Render("Loading metrics..."))
	}

	if len(orders) > 0 {
		sections = append(sections, "", renderWorkOrders(orders, scheme))
	}

	return lipgloss.NewStyle().
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderMetrics(metrics models.ProjectMetrics, bar progress.Model, width int, scheme theme.Scheme) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title)).
		Render("Metrics")

	if width > 20 {
		bar.Width = width - 10
	}

	varianceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Success))
	if metrics.CostVariance < 0 {
		varianceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Error))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		fmt.Sprintf("Progress: %.1f%%", metrics.ProgressPercentage),
		bar.ViewAs(ClampPercent(metrics.ProgressPercentage)/100),
		fmt.Sprintf("Cost variance: %s", varianceStyle.Render(fmt.Sprintf("$%.2f", metrics.CostVariance))),
		fmt.Sprintf("Schedule variance: %d days", metrics.ScheduleVariance),
		fmt.Sprintf("Resource utilization: %.1f%%", metrics.ResourceUtilization),
	)
}

func renderWorkOrders(orders []models.WorkOrder, scheme theme.Scheme) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title)).
		Render(fmt.Sprintf("Work Orders (%d)", len(orders)))

	rows := []string{header}
	for _, order := range orders {
		rows = append(rows, fmt.Sprintf("  #%d qty %d %s %s → %s",
			order.ID,
			order.Quantity,
			StatusBadge(string(order.Status), scheme),
			order.StartDate,
			order.EndDate,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ClampPercent clamps a progress value to [0,100]. The backend is expected
// to stay in range; rendering must not break when it does not.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
