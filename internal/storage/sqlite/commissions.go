package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/models"
)

// GetCommissionSplit retrieves the stored split for a transaction.
func (s *SQLiteStore) GetCommissionSplit(ctx context.Context, transactionID string) (*models.CommissionSplit, error) {
	split, err := loadSplit(ctx, s.db, transactionID)
	if err != nil {
		return nil, err
	}
	if split == nil {
		return nil, notFound("commission split", transactionID)
	}
	return split, nil
}

// UpdateCommissionSplit runs a read-modify-write cycle on a transaction's
// split. A transaction without a split yet starts from an empty one.
func (s *SQLiteStore) UpdateCommissionSplit(ctx context.Context, transactionID string, fn func(*models.CommissionSplit) error) (*models.CommissionSplit, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM transactions WHERE id = ?", transactionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, notFound("transaction", transactionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction existence: %w", err)
	}

	split, err := loadSplit(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if split == nil {
		split = &models.CommissionSplit{TransactionID: transactionID}
	}

	if err := fn(split); err != nil {
		return nil, err
	}
	split.TransactionID = transactionID
	split.UpdatedAt = time.Now().Unix()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO commission_splits (transaction_id, total_commission, saved_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(transaction_id) DO UPDATE SET
		     total_commission = excluded.total_commission,
		     saved_at = excluded.saved_at,
		     updated_at = excluded.updated_at`,
		transactionID, split.TotalCommission, split.SavedAt, split.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert commission split: %w", err)
	}

	// Rows are rewritten wholesale; order is the slice order.
	if _, err := tx.ExecContext(ctx, "DELETE FROM commission_rows WHERE transaction_id = ?", transactionID); err != nil {
		return nil, fmt.Errorf("failed to clear commission rows: %w", err)
	}
	for i, r := range split.Rows {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO commission_rows (id, transaction_id, position, name, role, percentage, amount)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, transactionID, i, r.Name, r.Role, r.Percentage, r.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert commission row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return split, nil
}

// loadSplit returns nil, nil when the transaction has no stored split.
func loadSplit(ctx context.Context, q querier, transactionID string) (*models.CommissionSplit, error) {
	split := &models.CommissionSplit{TransactionID: transactionID}
	err := q.QueryRowContext(ctx,
		`SELECT total_commission, saved_at, updated_at FROM commission_splits WHERE transaction_id = ?`,
		transactionID,
	).Scan(&split.TotalCommission, &split.SavedAt, &split.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commission split: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, name, role, percentage, amount FROM commission_rows
		 WHERE transaction_id = ? ORDER BY position`,
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get commission rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r allocation.Row
		if err := rows.Scan(&r.ID, &r.Name, &r.Role, &r.Percentage, &r.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan commission row: %w", err)
		}
		split.Rows = append(split.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate commission rows: %w", err)
	}
	return split, nil
}
