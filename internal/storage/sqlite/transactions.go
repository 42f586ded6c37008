package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dealdesk/internal/models"
)

const transactionColumns = `id, address, city, state, zip, price, status, type, client_name, agent_id, closing_date, created_at, updated_at`

// sortColumns whitelists the listing sort keys accepted from callers.
// likeEscaper makes user text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var sortColumns = map[string]string{
	"":             "created_at",
	"address":      "address",
	"price":        "price",
	"closing_date": "closing_date",
	"created_at":   "created_at",
	"status":       "status",
}

// CreateTransaction persists a new transaction and seeds its document checklist.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	// Generate IDs if not set
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if t.CreatedAt == 0 {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = models.StatusActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Address, t.City, t.State, t.Zip, t.Price, string(t.Status), string(t.Type),
		t.ClientName, nullString(t.AgentID), t.ClosingDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for i, tmpl := range models.DefaultChecklist {
		item := tmpl
		item.ID = uuid.New().String()
		item.TransactionID = t.ID
		item.Position = i
		if err := insertChecklistItem(ctx, tx, &item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, notFound("transaction", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction overwrites the editable fields of an existing transaction.
// The assigned agent is left alone; see SetTransactionAgent.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	t.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions
		 SET address = ?, city = ?, state = ?, zip = ?, price = ?, status = ?, type = ?,
		     client_name = ?, closing_date = ?, updated_at = ?
		 WHERE id = ?`,
		t.Address, t.City, t.State, t.Zip, t.Price, string(t.Status), string(t.Type),
		t.ClientName, t.ClosingDate, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return notFound("transaction", t.ID)
	}
	return nil
}

// SetTransactionAgent assigns agentID to a transaction, or unassigns it when
// agentID is empty, and returns the updated transaction.
func (s *SQLiteStore) SetTransactionAgent(ctx context.Context, id, agentID string) (*models.Transaction, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET agent_id = ?, updated_at = ? WHERE id = ?",
		nullString(agentID), time.Now().Unix(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to assign agent: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	} else if n == 0 {
		return nil, notFound("transaction", id)
	}
	return s.GetTransaction(ctx, id)
}

// ListTransactions returns the transactions matching filter in the requested order.
func (s *SQLiteStore) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", filter.SortBy)
	}

	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.AgentID != "" {
		where = append(where, "agent_id = ?")
		args = append(args, filter.AgentID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		where = append(where, `(LOWER(address) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\' OR LOWER(client_name) LIKE ? ESCAPE '\')`)
		args = append(args, like, like, like)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id ASC", column, direction)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var out []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (*models.Transaction, error) {
	var (
		t       models.Transaction
		status  string
		typ     string
		agentID sql.NullString
	)
	err := r.Scan(&t.ID, &t.Address, &t.City, &t.State, &t.Zip, &t.Price, &status, &typ,
		&t.ClientName, &agentID, &t.ClosingDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Status = models.TransactionStatus(status)
	t.Type = models.TransactionType(typ)
	if agentID.Valid {
		t.AgentID = agentID.String
	}
	return &t, nil
}
