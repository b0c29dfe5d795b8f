package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"erpx/internal/ui/components"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics <project-id>",
	Short: "Show computed metrics for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		client, _, err := requireSession()
		if err != nil {
			return err
		}

		metrics, err := client.GetProjectMetrics(projectID)
		if err != nil {
			return fmt.Errorf("failed to get metrics: %w", err)
		}

		fmt.Printf("Progress:             %.1f%%  %s\n", metrics.ProgressPercentage, textBar(metrics.ProgressPercentage))
		if metrics.CostVariance < 0 {
			color.Red("Cost variance:        $%.2f\n", metrics.CostVariance)
		} else {
			color.Green("Cost variance:        $%.2f\n", metrics.CostVariance)
		}
		fmt.Printf("Schedule variance:    %d days\n", metrics.ScheduleVariance)
		fmt.Printf("Resource utilization: %.1f%%\n", metrics.ResourceUtilization)
		return nil
	},
}

// textBar renders a simple percentage-fill bar for plain CLI output
func textBar(percent float64) string {
	const width = 20
	filled := int(components.ClampPercent(percent) / 100 * width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
