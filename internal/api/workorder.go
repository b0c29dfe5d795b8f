package api

import (
	"fmt"

	"erpx/internal/models"
)

// GetWorkOrders retrieves the work orders of a project
func (c *Client) GetWorkOrders(projectID int) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	if err := c.get(fmt.Sprintf("/projects/%d/work-orders", projectID), &orders); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == 0 {
			return nil, fmt.Errorf("%w: work order missing id", models.ErrMalformedResponse)
		}
	}

	return orders, nil
}

// CreateWorkOrder submits a work order draft and returns the server-assigned entity
func (c *Client) CreateWorkOrder(draft models.WorkOrderDraft) (*models.WorkOrder, error) {
	var order models.WorkOrder
	if err := c.post("/work-orders", draft, &order); err != nil {
		return nil, err
	}

	if order.ID == 0 {
		return nil, fmt.Errorf("%w: created work order missing id", models.ErrMalformedResponse)
	}

	return &order, nil
}
