package models

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "PLANNED"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
)

// Project represents a project tracked by the backend
type Project struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Budget      float64       `json:"budget"`
	ActualCost  float64       `json:"actualCost"`
	Status      ProjectStatus `json:"status"`
}

// ProjectDraft is a client-constructed project payload without a
// server-assigned id, sent to the create endpoint
type ProjectDraft struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Budget      float64       `json:"budget"`
	ActualCost  float64       `json:"actualCost"`
	Status      ProjectStatus `json:"status"`
}
