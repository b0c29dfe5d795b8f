package api

import (
	"fmt"

	"erpx/internal/models"
)

// GetProjects retrieves all projects visible to the current user
func (c *Client) GetProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := c.get("/projects", &projects); err != nil {
		return nil, err
	}

	for _, project := range projects {
		if project.ID == 0 {
			return nil, fmt.Errorf("%w: project missing id", models.ErrMalformedResponse)
		}
	}

	return projects, nil
}

// GetProject retrieves a project by ID
func (c *Client) GetProject(id int) (*models.Project, error) {
	var project models.Project
	if err := c.get(fmt.Sprintf("/projects/%d", id), &project); err != nil {
		return nil, err
	}

	if project.ID == 0 {
		return nil, fmt.Errorf("%w: project missing id", models.ErrMalformedResponse)
	}

	return &project, nil
}

// CreateProject submits a project draft and returns the server-assigned entity
func (c *Client) CreateProject(draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.post("/projects", draft, &project); err != nil {
		return nil, err
	}

	if project.ID == 0 {
		return nil, fmt.Errorf("%w: created project missing id", models.ErrMalformedResponse)
	}

	return &project, nil
}

// GetProjectMetrics retrieves computed analytics for a project. All four
// metric fields are required; zero values are legitimate, so presence is
// checked before defaulting.
func (c *Client) GetProjectMetrics(projectID int) (*models.ProjectMetrics, error) {
	var wire struct {
		ProgressPercentage  *float64 `json:"progressPercentage"`
		CostVariance        *float64 `json:"costVariance"`
		ScheduleVariance    *int     `json:"scheduleVariance"`
		ResourceUtilization *float64 `json:"resourceUtilization"`
	}
	if err := c.get(fmt.Sprintf("/analytics/project-metrics/%d", projectID), &wire); err != nil {
		return nil, err
	}

	if wire.ProgressPercentage == nil || wire.CostVariance == nil ||
		wire.ScheduleVariance == nil || wire.ResourceUtilization == nil {
		return nil, fmt.Errorf("%w: missing metrics fields", models.ErrMalformedResponse)
	}

	return &models.ProjectMetrics{
		ProgressPercentage:  *wire.ProgressPercentage,
		CostVariance:        *wire.CostVariance,
		ScheduleVariance:    *wire.ScheduleVariance,
		ResourceUtilization: *wire.ResourceUtilization,
	}, nil
}
