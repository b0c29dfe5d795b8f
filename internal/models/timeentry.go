package models

// TimeEntry represents logged time against a project. WorkOrderID is nil
// when the entry is not assigned to a work order.
type TimeEntry struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	ProjectID   int    `json:"projectId"`
	WorkOrderID *int   `json:"workOrderId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// TimeEntryDraft is a time entry payload without a server-assigned id
type TimeEntryDraft struct {
	UserID      int    `json:"userId"`
	ProjectID   int    `json:"projectId"`
	WorkOrderID *int   `json:"workOrderId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}
