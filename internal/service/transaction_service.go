package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
)

var _ apiconnect.TransactionServiceHandler = (*TransactionService)(nil)

// TransactionService implements the Connect TransactionService.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// requireAgent checks agentID names a user with the agent role.
func (s *TransactionService) requireAgent(ctx context.Context, agentID string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, agentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("agent %s does not exist", agentID))
	}
	if err != nil {
		return nil, connectError(err)
	}
	if user.Role != models.RoleAgent {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("user %s is not an agent", agentID))
	}
	return user, nil
}

// agentName looks up the display name of a transaction's agent. Lookup
// failures only cost the name, not the response.
func (s *TransactionService) agentName(ctx context.Context, agentID string) string {
	if agentID == "" {
		return ""
	}
	user, err := s.store.GetUserByID(ctx, agentID)
	if err != nil {
		slog.Warn("agentName: failed to get agent", "agent_id", agentID, "error", err)
		return ""
	}
	return user.DisplayName
}

// CreateTransaction records a new deal with the default document checklist.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var agentName string
	if req.Msg.AgentID != "" {
		agent, err := s.requireAgent(ctx, req.Msg.AgentID)
		if err != nil {
			return nil, err
		}
		agentName = agent.DisplayName
	}

	tx := &models.Transaction{AgentID: req.Msg.AgentID}
	applyTransactionFields(tx, req.Msg.TransactionFields)

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		slog.Error("CreateTransaction failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Transaction created",
		"transaction_id", tx.ID,
		"address", tx.Address,
		"status", tx.Status,
		"agent_id", tx.AgentID,
	)
	return connect.NewResponse(&api.CreateTransactionResponse{
		Transaction: toAPITransaction(tx, agentName),
	}), nil
}

// GetTransaction retrieves a deal by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	tx, err := s.store.GetTransaction(ctx, req.Msg.TransactionID)
	if err != nil {
		slog.Error("GetTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetTransactionResponse{
		Transaction: toAPITransaction(tx, s.agentName(ctx, tx.AgentID)),
	}), nil
}

// ListTransactions returns the filtered, sorted transaction table.
func (s *TransactionService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactions(ctx, models.TransactionFilter{
		Status:     models.TransactionStatus(req.Msg.Status),
		AgentID:    req.Msg.AgentID,
		Query:      req.Msg.Query,
		SortBy:     req.Msg.SortBy,
		Descending: req.Msg.Descending,
	})
	if err != nil {
		slog.Error("ListTransactions failed", "error", err)
		return nil, connectError(err)
	}

	// Resolve agent names in one query
	agentIDs := make([]string, 0, len(txs))
	seen := make(map[string]bool)
	for _, tx := range txs {
		if tx.AgentID != "" && !seen[tx.AgentID] {
			seen[tx.AgentID] = true
			agentIDs = append(agentIDs, tx.AgentID)
		}
	}
	agents, err := s.store.GetUsersByIDs(ctx, agentIDs)
	if err != nil {
		slog.Warn("ListTransactions: failed to resolve agents", "error", err)
		agents = nil
	}

	out := make([]*api.Transaction, len(txs))
	for i, tx := range txs {
		var name string
		if agent, ok := agents[tx.AgentID]; ok {
			name = agent.DisplayName
		}
		out[i] = toAPITransaction(tx, name)
	}

	slog.Debug("Transactions listed", "count", len(out), "status", req.Msg.Status, "sort_by", req.Msg.SortBy)
	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// UpdateTransaction edits a deal's details. The assigned agent is changed
// through AssignAgent only.
func (s *TransactionService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	tx, err := s.store.GetTransaction(ctx, req.Msg.TransactionID)
	if err != nil {
		slog.Error("UpdateTransaction: failed to get existing transaction", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	previous := tx.Status
	applyTransactionFields(tx, req.Msg.TransactionFields)
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		slog.Error("UpdateTransaction failed", "transaction_id", tx.ID, "error", err)
		return nil, connectError(err)
	}

	if previous != tx.Status {
		slog.Info("Transaction status changed", "transaction_id", tx.ID, "from", previous, "to", tx.Status)
	}

	// Pick up an agent assigned since the first read
	if fresh, err := s.store.GetTransaction(ctx, tx.ID); err == nil {
		tx = fresh
	}
	return connect.NewResponse(&api.UpdateTransactionResponse{
		Transaction: toAPITransaction(tx, s.agentName(ctx, tx.AgentID)),
	}), nil
}

// AssignAgent sets or clears the agent on a deal. Admins only.
func (s *TransactionService) AssignAgent(ctx context.Context, req *connect.Request[api.AssignAgentRequest]) (*connect.Response[api.AssignAgentResponse], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var agentName string
	if req.Msg.AgentID != "" {
		agent, err := s.requireAgent(ctx, req.Msg.AgentID)
		if err != nil {
			return nil, err
		}
		agentName = agent.DisplayName
	}

	tx, err := s.store.SetTransactionAgent(ctx, req.Msg.TransactionID, req.Msg.AgentID)
	if err != nil {
		slog.Error("AssignAgent failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Agent assigned", "transaction_id", tx.ID, "agent_id", tx.AgentID)
	return connect.NewResponse(&api.AssignAgentResponse{
		Transaction: toAPITransaction(tx, agentName),
	}), nil
}

// ListAgents returns every user who can be assigned to a deal.
func (s *TransactionService) ListAgents(ctx context.Context, req *connect.Request[api.ListAgentsRequest]) (*connect.Response[api.ListAgentsResponse], error) {
	agents, err := s.store.ListUsersByRole(ctx, models.RoleAgent)
	if err != nil {
		slog.Error("ListAgents failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.User, len(agents))
	for i, a := range agents {
		out[i] = toAPIUser(a)
	}
	return connect.NewResponse(&api.ListAgentsResponse{Agents: out}), nil
}
