package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"erpx/internal/models"
)

var (
	timelogProjectID   int
	timelogWorkOrderID int
	timelogStart       string
	timelogEnd         string
	timelogDescription string
)

var timelogCmd = &cobra.Command{
	Use:   "timelog",
	Short: "Log time against a project",
	Long:  "Record a time entry for the current user, optionally assigned to a work order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if timelogProjectID == 0 {
			return fmt.Errorf("--project is required")
		}
		if timelogStart == "" || timelogEnd == "" {
			return fmt.Errorf("--start and --end are required")
		}

		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		draft := models.TimeEntryDraft{
			UserID:      sess.CurrentUser().ID,
			ProjectID:   timelogProjectID,
			StartTime:   timelogStart,
			EndTime:     timelogEnd,
			Description: timelogDescription,
		}
		if timelogWorkOrderID != 0 {
			workOrderID := timelogWorkOrderID
			draft.WorkOrderID = &workOrderID
		}

		entry, err := client.LogTime(draft)
		if err != nil {
			return fmt.Errorf("failed to log time: %w", err)
		}

		fmt.Printf("Logged time entry %d on project %d\n", entry.ID, entry.ProjectID)
		return nil
	},
}

func init() {
	timelogCmd.Flags().IntVar(&timelogProjectID, "project", 0, "Project ID")
	timelogCmd.Flags().IntVar(&timelogWorkOrderID, "workorder", 0, "Work order ID (optional)")
	timelogCmd.Flags().StringVar(&timelogStart, "start", "", "Start time (RFC 3339)")
	timelogCmd.Flags().StringVar(&timelogEnd, "end", "", "End time (RFC 3339)")
	timelogCmd.Flags().StringVar(&timelogDescription, "description", "", "Description")
}
