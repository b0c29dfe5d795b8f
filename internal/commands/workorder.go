package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"erpx/internal/models"
)

var workordersCmd = &cobra.Command{
	Use:   "workorders",
	Short: "Manage work orders",
}

var workordersListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List the work orders of a project",
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

		orders, err := client.GetWorkOrders(projectID)
		if err != nil {
			return fmt.Errorf("failed to list work orders: %w", err)
		}

		if len(orders) == 0 {
			fmt.Println("No work orders found")
			return nil
		}

		for _, order := range orders {
			switch order.Status {
			case models.WorkOrderCompleted:
				color.Green("%d\tbom %d\tqty %d\t[%s]\t%s -> %s\n", order.ID, order.BomID, order.Quantity, order.Status, order.StartDate, order.EndDate)
			case models.WorkOrderInProgress:
				color.Yellow("%d\tbom %d\tqty %d\t[%s]\t%s -> %s\n", order.ID, order.BomID, order.Quantity, order.Status, order.StartDate, order.EndDate)
			case models.WorkOrderCancelled:
				color.Red("%d\tbom %d\tqty %d\t[%s]\t%s -> %s\n", order.ID, order.BomID, order.Quantity, order.Status, order.StartDate, order.EndDate)
			default:
				color.Cyan("%d\tbom %d\tqty %d\t[%s]\t%s -> %s\n", order.ID, order.BomID, order.Quantity, order.Status, order.StartDate, order.EndDate)
			}
		}
		return nil
	},
}

var (
	workOrderProjectID int
	workOrderBomID     int
	workOrderQuantity  int
	workOrderStatus    string
	workOrderStartDate string
	workOrderEndDate   string
)

var workordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new work order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workOrderProjectID == 0 {
			return fmt.Errorf("--project is required")
		}

		status := models.WorkOrderStatus(workOrderStatus)
		switch status {
		case models.WorkOrderPlanned, models.WorkOrderInProgress, models.WorkOrderCompleted, models.WorkOrderCancelled:
		default:
			return fmt.Errorf("invalid status %q", workOrderStatus)
		}

		client, _, err := requireSession()
		if err != nil {
			return err
		}

		order, err := client.CreateWorkOrder(models.WorkOrderDraft{
			ProjectID: workOrderProjectID,
			BomID:     workOrderBomID,
			Quantity:  workOrderQuantity,
			Status:    status,
			StartDate: workOrderStartDate,
			EndDate:   workOrderEndDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create work order: %w", err)
		}

		fmt.Printf("Created work order %d for project %d\n", order.ID, order.ProjectID)
		return nil
	},
}

func init() {
	workordersCreateCmd.Flags().IntVar(&workOrderProjectID, "project", 0, "Project ID")
	workordersCreateCmd.Flags().IntVar(&workOrderBomID, "bom", 0, "Bill of materials ID")
	workordersCreateCmd.Flags().IntVar(&workOrderQuantity, "quantity", 1, "Quantity")
	workordersCreateCmd.Flags().StringVar(&workOrderStatus, "status", string(models.WorkOrderPlanned), "Status (PLANNED, IN_PROGRESS, COMPLETED, CANCELLED)")
	workordersCreateCmd.Flags().StringVar(&workOrderStartDate, "start", "", "Start date (YYYY-MM-DD)")
	workordersCreateCmd.Flags().StringVar(&workOrderEndDate, "end", "", "End date (YYYY-MM-DD)")

	workordersCmd.AddCommand(workordersListCmd)
	workordersCmd.AddCommand(workordersCreateCmd)
}
