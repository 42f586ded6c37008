package api

type ChecklistItem struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
	Title         string `json:"title"`
	Category      string `json:"category,omitempty"`
	Required      bool   `json:"required"`
	Completed     bool   `json:"completed"`
	CompletedAt   int64  `json:"completedAt,omitempty"`
	DueDate       int64  `json:"dueDate,omitempty"`
	Position      int    `json:"position"`
}

type ChecklistProgress struct {
	Completed         int     `json:"completed"`
	Total             int     `json:"total"`
	RequiredRemaining int     `json:"requiredRemaining"`
	Percent           float64 `json:"percent"`
}

type ListChecklistRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

type ListChecklistResponse struct {
	Items    []*ChecklistItem  `json:"items"`
	Progress ChecklistProgress `json:"progress"`
}

type AddChecklistItemRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Title         string `json:"title" validate:"required,max=200"`
	Category      string `json:"category,omitempty" validate:"max=100"`
	Required      bool   `json:"required,omitempty"`
	DueDate       int64  `json:"dueDate,omitempty" validate:"gte=0"`
}

type AddChecklistItemResponse struct {
	Item *ChecklistItem `json:"item"`
}

type SetItemCompletedRequest struct {
	ItemID    string `json:"itemId" validate:"required"`
	Completed bool   `json:"completed"`
}

type SetItemCompletedResponse struct {
	Item     *ChecklistItem    `json:"item"`
	Progress ChecklistProgress `json:"progress"`
}

type DeleteChecklistItemRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

type DeleteChecklistItemResponse struct {
	Progress ChecklistProgress `json:"progress"`
}
