package models

import "github.com/mmynk/dealdesk/internal/allocation"

// CommissionSplit is the persisted draft of a transaction's commission table.
// Rows are stored in display order, blank row included, so a reload shows
// exactly what the user left.
type CommissionSplit struct {
	// TransactionID is the owning transaction; one split per transaction.
	TransactionID string

	// TotalCommission is the dollar amount being divided.
	TotalCommission float64

	// Rows are the recipients in display order.
	Rows []allocation.Row

	// SavedAt is the Unix timestamp of the last successful save of a balanced
	// split. Drafts that were never saved have 0.
	SavedAt int64

	UpdatedAt int64
}

// State converts the stored split into a reducer state.
func (c *CommissionSplit) State() allocation.State {
	return allocation.Restore(c.TotalCommission, c.Rows)
}

// Apply copies a reducer state back onto the split.
func (c *CommissionSplit) Apply(s allocation.State) {
	c.TotalCommission = s.Total
	c.Rows = s.Rows
}
