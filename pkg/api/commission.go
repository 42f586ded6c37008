package api

// AllocationRow is one recipient in a commission split.
type AllocationRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// CommissionTotals summarises the non-blank rows of a split.
type CommissionTotals struct {
	TotalPercentage float64 `json:"totalPercentage"`
	TotalAllocated  float64 `json:"totalAllocated"`
	IsBalanced      bool    `json:"isBalanced"`

	// Unallocated is the part of the total commission not yet assigned.
	Unallocated float64 `json:"unallocated"`

	// Status is "balanced", "under" or "over".
	Status string `json:"status"`

	// Display strings as the dashboard renders them, e.g. "25.0%" and "$2,500.00".
	TotalPercentageDisplay string `json:"totalPercentageDisplay"`
	TotalAllocatedDisplay  string `json:"totalAllocatedDisplay"`
}

// CommissionSplit is a transaction's commission table.
type CommissionSplit struct {
	TransactionID   string           `json:"transactionId"`
	TotalCommission float64          `json:"totalCommission"`
	Rows            []AllocationRow  `json:"rows"`
	Totals          CommissionTotals `json:"totals"`
	SavedAt         int64            `json:"savedAt,omitempty"`
	UpdatedAt       int64            `json:"updatedAt,omitempty"`
}

// SplitResponse is returned by every CommissionService call that works on a stored split.
type SplitResponse struct {
	Split *CommissionSplit `json:"split"`
}

type GetSplitRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// SetTotalRequest carries the total as typed, e.g. "$12,500".
type SetTotalRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Total         string `json:"total"`
}

// UpdateRowRequest edits one cell. Field is name, role, percentage or amount.
type UpdateRowRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	RowID         string `json:"rowId" validate:"required"`
	Field         string `json:"field" validate:"required,oneof=name role percentage amount"`
	Value         string `json:"value"`
}

type DeleteRowRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	RowID         string `json:"rowId" validate:"required"`
}

type SaveSplitRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// RowEdit is one queued change in a preview. Delete takes precedence over Field.
type RowEdit struct {
	RowID  string `json:"rowId" validate:"required"`
	Field  string `json:"field,omitempty" validate:"omitempty,oneof=name role percentage amount"`
	Value  string `json:"value,omitempty"`
	Delete bool   `json:"delete,omitempty"`
}

// PreviewSplitRequest recalculates a split without storing anything.
type PreviewSplitRequest struct {
	Total string          `json:"total"`
	Rows  []AllocationRow `json:"rows"`
	Edits []RowEdit       `json:"edits" validate:"dive"`
}

type PreviewSplitResponse struct {
	TotalCommission float64          `json:"totalCommission"`
	Rows            []AllocationRow  `json:"rows"`
	Totals          CommissionTotals `json:"totals"`
}
