package api

// Transaction is a property deal as shown on the dashboard.
type Transaction struct {
	ID          string  `json:"id"`
	Address     string  `json:"address"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Zip         string  `json:"zip,omitempty"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	ClientName  string  `json:"clientName,omitempty"`
	AgentID     string  `json:"agentId,omitempty"`
	AgentName   string  `json:"agentName,omitempty"`
	ClosingDate int64   `json:"closingDate,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// TransactionFields are the editable fields shared by create and update.
type TransactionFields struct {
	Address     string  `json:"address" validate:"required,max=200"`
	City        string  `json:"city,omitempty" validate:"max=100"`
	State       string  `json:"state,omitempty" validate:"max=50"`
	Zip         string  `json:"zip,omitempty" validate:"max=20"`
	Price       float64 `json:"price" validate:"gte=0"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active pending closed cancelled"`
	Type        string  `json:"type" validate:"required,oneof=sale purchase lease"`
	ClientName  string  `json:"clientName,omitempty" validate:"max=200"`
	ClosingDate int64   `json:"closingDate,omitempty" validate:"gte=0"`
}

type CreateTransactionRequest struct {
	TransactionFields
	AgentID string `json:"agentId,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type GetTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

type GetTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

// ListTransactionsRequest filters and sorts the transaction table.
type ListTransactionsRequest struct {
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active pending closed cancelled"`
	AgentID    string `json:"agentId,omitempty"`
	Query      string `json:"query,omitempty"`
	SortBy     string `json:"sortBy,omitempty" validate:"omitempty,oneof=address price closing_date created_at status"`
	Descending bool   `json:"descending,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type UpdateTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	TransactionFields
}

type UpdateTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

// AssignAgentRequest assigns an agent; an empty AgentID unassigns.
type AssignAgentRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	AgentID       string `json:"agentId,omitempty"`
}

type AssignAgentResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type ListAgentsRequest struct{}

type ListAgentsResponse struct {
	Agents []*User `json:"agents"`
}
