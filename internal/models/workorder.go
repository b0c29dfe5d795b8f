package models

// WorkOrderStatus is the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderPlanned    WorkOrderStatus = "PLANNED"
	WorkOrderInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderCancelled  WorkOrderStatus = "CANCELLED"
)

// WorkOrder represents a work order belonging to a project
type WorkOrder struct {
	ID        int             `json:"id"`
	ProjectID int             `json:"projectId"`
	BomID     int             `json:"bomId"`
	Status    WorkOrderStatus `json:"status"`
	Quantity  int             `json:"quantity"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// WorkOrderDraft is a work order payload without a server-assigned id
type WorkOrderDraft struct {
	ProjectID int             `json:"projectId"`
	BomID     int             `json:"bomId"`
	Status    WorkOrderStatus `json:"status"`
	Quantity  int             `json:"quantity"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}
