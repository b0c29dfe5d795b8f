package api

import (
	"fmt"

	"erpx/internal/models"
)

// LogTime submits a time entry draft and returns the server-assigned entity
func (c *Client) LogTime(draft models.TimeEntryDraft) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := c.post("/time-entries", draft, &entry); err != nil {
		return nil, err
	}

	if entry.ID == 0 {
		return nil, fmt.Errorf("%w: created time entry missing id", models.ErrMalformedResponse)
	}

	return &entry, nil
}
