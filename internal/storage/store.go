// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dealdesk/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned (wrapped) when a write collides with a unique
// key, such as a second account for the same email.
var ErrAlreadyExists = errors.New("already exists")

// Store defines the interface for dashboard storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	TransactionStore
	CommissionStore
	ChecklistStore
	UserStore
	SettingsStore

	// Close releases any resources held by the store.
	Close() error
}

// TransactionStore persists property deals.
type TransactionStore interface {
	// CreateTransaction persists a new transaction together with the default
	// document checklist. ID and timestamps are populated by the store.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// UpdateTransaction overwrites an existing transaction's editable fields.
	// AgentID is ignored.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error

	// SetTransactionAgent changes only the assigned agent. An empty agentID
	// unassigns.
	SetTransactionAgent(ctx context.Context, id, agentID string) (*models.Transaction, error)

	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}

// CommissionStore persists commission split drafts.
type CommissionStore interface {
	// GetCommissionSplit returns the stored split, or ErrNotFound if the
	// transaction has none yet.
	GetCommissionSplit(ctx context.Context, transactionID string) (*models.CommissionSplit, error)

	// UpdateCommissionSplit loads the split (or an empty one), passes it to fn
	// and stores the result, all inside one database transaction. If fn
	// returns an error nothing is written.
	UpdateCommissionSplit(ctx context.Context, transactionID string, fn func(*models.CommissionSplit) error) (*models.CommissionSplit, error)
}

// ChecklistStore persists document checklist items.
type ChecklistStore interface {
	ListChecklist(ctx context.Context, transactionID string) ([]*models.ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id string) (*models.ChecklistItem, error)
	AddChecklistItem(ctx context.Context, item *models.ChecklistItem) error
	SetChecklistItemCompleted(ctx context.Context, id string, completed bool) (*models.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, id string) error
}

// UserStore persists dashboard accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)

	// GetUsersByIDs returns the users that exist among ids, keyed by ID.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
}

// SettingsStore is a small key-value table for JSON documents such as the
// branding config.
type SettingsStore interface {
	// GetSetting returns the stored value and whether the key exists.
	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
