package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"erpx/internal/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := requireSession()
		if err != nil {
			return err
		}

		projects, err := client.GetProjects()
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		for _, project := range projects {
			printProjectLine(project)
		}
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		client, _, err := requireSession()
		if err != nil {
			return err
		}

		project, err := client.GetProject(id)
		if err != nil {
			return fmt.Errorf("failed to get project %d: %w", id, err)
		}

		printProjectLine(*project)
		fmt.Printf("\tDescription: %s\n", project.Description)
		fmt.Printf("\tSchedule:    %s -> %s\n", project.StartDate, project.EndDate)
		fmt.Printf("\tBudget:      $%.2f (actual $%.2f)\n", project.Budget, project.ActualCost)
		return nil
	},
}

var (
	projectName        string
	projectDescription string
	projectStartDate   string
	projectEndDate     string
	projectBudget      float64
	projectStatus      string
)

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectName == "" {
			return fmt.Errorf("--name is required")
		}

		status := models.ProjectStatus(projectStatus)
		switch status {
		case models.ProjectPlanned, models.ProjectInProgress, models.ProjectCompleted, models.ProjectOnHold:
		default:
			return fmt.Errorf("invalid status %q", projectStatus)
		}

		client, _, err := requireSession()
		if err != nil {
			return err
		}

		project, err := client.CreateProject(models.ProjectDraft{
			Name:        projectName,
			Description: projectDescription,
			StartDate:   projectStartDate,
			EndDate:     projectEndDate,
			Budget:      projectBudget,
			Status:      status,
		})
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("Created project %d: %s\n", project.ID, project.Name)
		return nil
	},
}

func printProjectLine(project models.Project) {
	switch project.Status {
	case models.ProjectCompleted:
		color.Green("%d\t%s\t[%s]\n", project.ID, project.Name, project.Status)
	case models.ProjectInProgress:
		color.Yellow("%d\t%s\t[%s]\n", project.ID, project.Name, project.Status)
	case models.ProjectOnHold:
		color.Red("%d\t%s\t[%s]\n", project.ID, project.Name, project.Status)
	default:
		color.Cyan("%d\t%s\t[%s]\n", project.ID, project.Name, project.Status)
	}
}

func init() {
	projectsCreateCmd.Flags().StringVar(&projectName, "name", "", "Project name")
	projectsCreateCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	projectsCreateCmd.Flags().StringVar(&projectStartDate, "start", "", "Start date (YYYY-MM-DD)")
	projectsCreateCmd.Flags().StringVar(&projectEndDate, "end", "", "End date (YYYY-MM-DD)")
	projectsCreateCmd.Flags().Float64Var(&projectBudget, "budget", 0, "Budget")
	projectsCreateCmd.Flags().StringVar(&projectStatus, "status", string(models.ProjectPlanned), "Status (PLANNED, IN_PROGRESS, COMPLETED, ON_HOLD)")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
}
