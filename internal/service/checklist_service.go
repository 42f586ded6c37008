package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
)

var _ apiconnect.ChecklistServiceHandler = (*ChecklistService)(nil)

// ChecklistService implements the Connect ChecklistService.
type ChecklistService struct {
	store storage.Store
}

// NewChecklistService creates a new ChecklistService with the given storage backend.
func NewChecklistService(store storage.Store) *ChecklistService {
	return &ChecklistService{store: store}
}

func (s *ChecklistService) progress(ctx context.Context, transactionID string) (api.ChecklistProgress, error) {
	items, err := s.store.ListChecklist(ctx, transactionID)
	if err != nil {
		return api.ChecklistProgress{}, err
	}
	return toAPIProgress(models.ComputeProgress(items)), nil
}

// ListChecklist returns a transaction's checklist and its completion.
func (s *ChecklistService) ListChecklist(ctx context.Context, req *connect.Request[api.ListChecklistRequest]) (*connect.Response[api.ListChecklistResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if _, err := s.store.GetTransaction(ctx, req.Msg.TransactionID); err != nil {
		return nil, connectError(err)
	}
	items, err := s.store.ListChecklist(ctx, req.Msg.TransactionID)
	if err != nil {
		slog.Error("ListChecklist failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.ChecklistItem, len(items))
	for i, item := range items {
		out[i] = toAPIChecklistItem(item)
	}
	return connect.NewResponse(&api.ListChecklistResponse{
		Items:    out,
		Progress: toAPIProgress(models.ComputeProgress(items)),
	}), nil
}

// AddChecklistItem appends an item to a transaction's checklist.
func (s *ChecklistService) AddChecklistItem(ctx context.Context, req *connect.Request[api.AddChecklistItemRequest]) (*connect.Response[api.AddChecklistItemResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	item := &models.ChecklistItem{
		TransactionID: req.Msg.TransactionID,
		Title:         req.Msg.Title,
		Category:      req.Msg.Category,
		Required:      req.Msg.Required,
		DueDate:       req.Msg.DueDate,
	}
	if err := s.store.AddChecklistItem(ctx, item); err != nil {
		slog.Error("AddChecklistItem failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Checklist item added", "transaction_id", item.TransactionID, "item_id", item.ID, "title", item.Title)
	return connect.NewResponse(&api.AddChecklistItemResponse{Item: toAPIChecklistItem(item)}), nil
}

// SetItemCompleted ticks or unticks an item.
func (s *ChecklistService) SetItemCompleted(ctx context.Context, req *connect.Request[api.SetItemCompletedRequest]) (*connect.Response[api.SetItemCompletedResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	item, err := s.store.SetChecklistItemCompleted(ctx, req.Msg.ItemID, req.Msg.Completed)
	if err != nil {
		slog.Error("SetItemCompleted failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, connectError(err)
	}
	progress, err := s.progress(ctx, item.TransactionID)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Checklist item updated", "item_id", item.ID, "completed", item.Completed)
	return connect.NewResponse(&api.SetItemCompletedResponse{
		Item:     toAPIChecklistItem(item),
		Progress: progress,
	}), nil
}

// DeleteChecklistItem removes an item and returns the remaining progress.
func (s *ChecklistService) DeleteChecklistItem(ctx context.Context, req *connect.Request[api.DeleteChecklistItemRequest]) (*connect.Response[api.DeleteChecklistItemResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	item, err := s.store.GetChecklistItem(ctx, req.Msg.ItemID)
	if err != nil {
		return nil, connectError(err)
	}
	if err := s.store.DeleteChecklistItem(ctx, item.ID); err != nil {
		slog.Error("DeleteChecklistItem failed", "item_id", item.ID, "error", err)
		return nil, connectError(err)
	}
	progress, err := s.progress(ctx, item.TransactionID)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Checklist item deleted", "item_id", item.ID, "transaction_id", item.TransactionID)
	return connect.NewResponse(&api.DeleteChecklistItemResponse{Progress: progress}), nil
}
