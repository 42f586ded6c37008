package models

import "fmt"

// TransactionStatus is the pipeline stage of a deal.
type TransactionStatus string

const (
	StatusActive    TransactionStatus = "active"
	StatusPending   TransactionStatus = "pending"
	StatusClosed    TransactionStatus = "closed"
	StatusCancelled TransactionStatus = "cancelled"
)

// TransactionType distinguishes which side of the deal the brokerage represents.
type TransactionType string

const (
	TypeSale     TransactionType = "sale"
	TypePurchase TransactionType = "purchase"
	TypeLease    TransactionType = "lease"
)

// Transaction represents a property deal.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// Address is the street address of the property.
	Address string

	City  string
	State string
	Zip   string

	// Price is the contract or list price in dollars.
	Price float64

	// Status is the current pipeline stage.
	Status TransactionStatus

	// Type is sale, purchase or lease.
	Type TransactionType

	// ClientName is the buyer, seller or tenant the brokerage represents.
	ClientName string

	// AgentID references the assigned agent's User ID. Empty when unassigned.
	AgentID string

	// ClosingDate is the Unix timestamp of the expected closing, 0 if unknown.
	ClosingDate int64

	CreatedAt int64
	UpdatedAt int64
}

// DisplayTitle returns the one-line label used in listings.
func (t *Transaction) DisplayTitle() string {
	if t.City == "" {
		return t.Address
	}
	return fmt.Sprintf("%s, %s", t.Address, t.City)
}

// TransactionFilter narrows and orders a transaction listing.
type TransactionFilter struct {
	Status  TransactionStatus
	AgentID string

	// Query matches address, city or client name, case-insensitively.
	Query string

	// SortBy is one of address, price, closing_date, created_at, status.
	// Empty sorts by created_at.
	SortBy     string
	Descending bool
}
