package models

// ChecklistItem is one document or task required to close a transaction.
type ChecklistItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	TransactionID string

	// Title is what the item is, e.g. "Inspection report".
	Title string

	// Category groups items on the checklist page, e.g. "Contract", "Closing".
	Category string

	// Required items block closing until completed.
	Required bool

	Completed bool

	// CompletedAt is set when Completed flips to true and cleared when it flips back.
	CompletedAt int64

	// DueDate is a Unix timestamp, 0 if none.
	DueDate int64

	// Position orders items within a checklist.
	Position int
}

// ChecklistProgress summarises a transaction's checklist.
type ChecklistProgress struct {
	Completed         int
	Total             int
	RequiredRemaining int
}

// Percent returns completion as 0-100. An empty checklist is 0%.
func (p ChecklistProgress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// ComputeProgress counts completed and outstanding required items.
func ComputeProgress(items []*ChecklistItem) ChecklistProgress {
	var p ChecklistProgress
	for _, item := range items {
		p.Total++
		if item.Completed {
			p.Completed++
		} else if item.Required {
			p.RequiredRemaining++
		}
	}
	return p
}

// DefaultChecklist is the document checklist every new transaction starts with.
var DefaultChecklist = []ChecklistItem{
	{Title: "Purchase agreement", Category: "Contract", Required: true},
	{Title: "Seller disclosures", Category: "Contract", Required: true},
	{Title: "Inspection report", Category: "Due diligence", Required: false},
	{Title: "Appraisal", Category: "Financing", Required: true},
	{Title: "Title commitment", Category: "Title", Required: true},
	{Title: "Closing disclosure", Category: "Closing", Required: true},
}
