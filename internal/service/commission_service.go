package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/middleware"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
	"github.com/mmynk/dealdesk/pkg/api"
	"github.com/mmynk/dealdesk/pkg/api/apiconnect"
)

var _ apiconnect.CommissionServiceHandler = (*CommissionService)(nil)

// CommissionService implements the Connect CommissionService.
// Each mutating call is one load-apply-store cycle on the transaction's
// stored split, so the blank row keeps a stable ID between calls.
type CommissionService struct {
	store   storage.CommissionStore
	metrics *middleware.Metrics
}

// NewCommissionService creates a CommissionService. metrics may be nil.
func NewCommissionService(store storage.CommissionStore, metrics *middleware.Metrics) *CommissionService {
	return &CommissionService{store: store, metrics: metrics}
}

// mutate applies fn to the transaction's split inside one storage transaction.
func (s *CommissionService) mutate(ctx context.Context, transactionID string, fn func(allocation.State) (allocation.State, error)) (*models.CommissionSplit, error) {
	return s.store.UpdateCommissionSplit(ctx, transactionID, func(split *models.CommissionSplit) error {
		next, err := fn(split.State())
		if err != nil {
			return err
		}
		split.Apply(next)
		return nil
	})
}

// GetSplit returns the transaction's split, creating an empty draft on first access.
func (s *CommissionService) GetSplit(ctx context.Context, req *connect.Request[api.GetSplitRequest]) (*connect.Response[api.SplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	split, err := s.store.GetCommissionSplit(ctx, req.Msg.TransactionID)
	if errors.Is(err, storage.ErrNotFound) {
		split, err = s.mutate(ctx, req.Msg.TransactionID, func(st allocation.State) (allocation.State, error) {
			return st, nil
		})
		if err == nil {
			slog.Info("Created commission split draft", "transaction_id", req.Msg.TransactionID)
		}
	}
	if err != nil {
		slog.Error("GetSplit failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.SplitResponse{Split: toAPISplit(split)}), nil
}

// SetTotal changes the commission being divided. Amounts follow percentages.
func (s *CommissionService) SetTotal(ctx context.Context, req *connect.Request[api.SetTotalRequest]) (*connect.Response[api.SplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	total := allocation.ParseAmount(req.Msg.Total)
	split, err := s.mutate(ctx, req.Msg.TransactionID, func(st allocation.State) (allocation.State, error) {
		return st.SetTotal(total), nil
	})
	if err != nil {
		slog.Error("SetTotal failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	slog.Debug("Commission total set", "transaction_id", req.Msg.TransactionID, "total", total)
	return connect.NewResponse(&api.SplitResponse{Split: toAPISplit(split)}), nil
}

// UpdateRow edits one cell of the table.
func (s *CommissionService) UpdateRow(ctx context.Context, req *connect.Request[api.UpdateRowRequest]) (*connect.Response[api.SplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	field, err := allocation.ParseField(req.Msg.Field)
	if err != nil {
		return nil, connectError(err)
	}

	split, err := s.mutate(ctx, req.Msg.TransactionID, func(st allocation.State) (allocation.State, error) {
		return st.Update(req.Msg.RowID, field, req.Msg.Value)
	})
	if err != nil {
		slog.Warn("UpdateRow failed",
			"transaction_id", req.Msg.TransactionID,
			"row_id", req.Msg.RowID,
			"field", req.Msg.Field,
			"error", err,
		)
		return nil, connectError(err)
	}

	slog.Debug("Commission row updated",
		"transaction_id", req.Msg.TransactionID,
		"row_id", req.Msg.RowID,
		"field", req.Msg.Field,
		"rows_count", len(split.Rows),
	)
	return connect.NewResponse(&api.SplitResponse{Split: toAPISplit(split)}), nil
}

// DeleteRow removes a recipient.
func (s *CommissionService) DeleteRow(ctx context.Context, req *connect.Request[api.DeleteRowRequest]) (*connect.Response[api.SplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	split, err := s.mutate(ctx, req.Msg.TransactionID, func(st allocation.State) (allocation.State, error) {
		return st.Delete(req.Msg.RowID)
	})
	if err != nil {
		slog.Warn("DeleteRow failed", "transaction_id", req.Msg.TransactionID, "row_id", req.Msg.RowID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Commission row deleted", "transaction_id", req.Msg.TransactionID, "row_id", req.Msg.RowID)
	return connect.NewResponse(&api.SplitResponse{Split: toAPISplit(split)}), nil
}

// SaveSplit commits the draft. Splits that do not total 100% are refused
// with FailedPrecondition and left untouched.
func (s *CommissionService) SaveSplit(ctx context.Context, req *connect.Request[api.SaveSplitRequest]) (*connect.Response[api.SplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var recipients int
	split, err := s.store.UpdateCommissionSplit(ctx, req.Msg.TransactionID, func(split *models.CommissionSplit) error {
		st := split.State()
		if err := st.Validate(); err != nil {
			return err
		}
		recipients = len(st.Filled())
		split.Apply(st)
		split.SavedAt = time.Now().Unix()
		return nil
	})
	if errors.Is(err, allocation.ErrUnbalanced) {
		s.metrics.SplitRejected()
		slog.Warn("SaveSplit rejected", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}
	if err != nil {
		slog.Error("SaveSplit failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	s.metrics.SplitSaved(recipients)
	slog.Info("Commission split saved",
		"transaction_id", req.Msg.TransactionID,
		"total", split.TotalCommission,
		"recipients", recipients,
	)
	return connect.NewResponse(&api.SplitResponse{Split: toAPISplit(split)}), nil
}

// PreviewSplit applies edits to client-supplied rows without touching storage.
func (s *CommissionService) PreviewSplit(ctx context.Context, req *connect.Request[api.PreviewSplitRequest]) (*connect.Response[api.PreviewSplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	edits := make([]allocation.Edit, len(req.Msg.Edits))
	for i, e := range req.Msg.Edits {
		edits[i] = allocation.Edit{
			RowID:  e.RowID,
			Field:  allocation.Field(e.Field),
			Value:  e.Value,
			Delete: e.Delete,
		}
	}

	st := allocation.Restore(allocation.ParseAmount(req.Msg.Total), fromAPIRows(req.Msg.Rows))
	st, err := st.Apply(edits...)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.PreviewSplitResponse{
		TotalCommission: st.Total,
		Rows:            toAPIRows(st.Rows),
		Totals:          toAPITotals(st.Total, st.Totals()),
	}), nil
}
