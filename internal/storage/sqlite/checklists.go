package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dealdesk/internal/models"
)

const checklistColumns = `id, transaction_id, title, category, required, completed, completed_at, due_date, position`

// ListChecklist returns a transaction's checklist in display order.
func (s *SQLiteStore) ListChecklist(ctx context.Context, transactionID string) ([]*models.ChecklistItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+checklistColumns+` FROM checklist_items WHERE transaction_id = ? ORDER BY position, id`,
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []*models.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checklist items: %w", err)
	}
	return items, nil
}

// GetChecklistItem retrieves one checklist item by ID.
func (s *SQLiteStore) GetChecklistItem(ctx context.Context, id string) (*models.ChecklistItem, error) {
	item, err := scanChecklistItem(s.db.QueryRowContext(ctx,
		`SELECT `+checklistColumns+` FROM checklist_items WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("checklist item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}
	return item, nil
}

// AddChecklistItem appends an item to the end of its transaction's checklist.
func (s *SQLiteStore) AddChecklistItem(ctx context.Context, item *models.ChecklistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM transactions WHERE id = ?", item.TransactionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return notFound("transaction", item.TransactionID)
	}
	if err != nil {
		return fmt.Errorf("failed to check transaction existence: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM checklist_items WHERE transaction_id = ?",
		item.TransactionID,
	).Scan(&item.Position)
	if err != nil {
		return fmt.Errorf("failed to compute checklist position: %w", err)
	}

	if err := insertChecklistItem(ctx, tx, item); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetChecklistItemCompleted marks an item done or not done and returns the updated item.
func (s *SQLiteStore) SetChecklistItemCompleted(ctx context.Context, id string, completed bool) (*models.ChecklistItem, error) {
	var completedAt int64
	if completed {
		completedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE checklist_items SET completed = ?, completed_at = ? WHERE id = ?",
		boolToInt(completed), completedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	} else if n == 0 {
		return nil, notFound("checklist item", id)
	}

	return s.GetChecklistItem(ctx, id)
}

// DeleteChecklistItem removes a checklist item by ID.
func (s *SQLiteStore) DeleteChecklistItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return notFound("checklist item", id)
	}
	return nil
}

func insertChecklistItem(ctx context.Context, q querier, item *models.ChecklistItem) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO checklist_items (`+checklistColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.TransactionID, item.Title, item.Category, boolToInt(item.Required),
		boolToInt(item.Completed), item.CompletedAt, item.DueDate, item.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert checklist item: %w", err)
	}
	return nil
}

func scanChecklistItem(r rowScanner) (*models.ChecklistItem, error) {
	var (
		item                models.ChecklistItem
		required, completed int
	)
	err := r.Scan(&item.ID, &item.TransactionID, &item.Title, &item.Category, &required,
		&completed, &item.CompletedAt, &item.DueDate, &item.Position)
	if err != nil {
		return nil, err
	}
	item.Required = required != 0
	item.Completed = completed != 0
	return &item, nil
}
