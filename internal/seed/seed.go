// Package seed fills a fresh database with an admin account and the demo
// transactions the dashboard ships with.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/auth"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
)

// DemoPassword is the password of every demo agent.
const DemoPassword = "demo-password"

// EnsureAdmin registers an admin with email unless a user with that email
// already exists. It reports whether an account was created.
func EnsureAdmin(ctx context.Context, authenticator auth.Authenticator, email, password string) (bool, error) {
	_, err := authenticator.Register(ctx, email, "Administrator", models.RoleAdmin, password)
	if errors.Is(err, auth.ErrEmailExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	slog.Info("Admin account created", "email", email)
	return true, nil
}

type demoAgent struct {
	email string
	name  string
}

type recipient struct {
	name       string
	role       string
	percentage string
}

type demoDeal struct {
	tx         models.Transaction
	agent      int
	commission string
	recipients []recipient
	completed  int
}

var demoAgents = []demoAgent{
	{email: "sarah.johnson@example.com", name: "Sarah Johnson"},
	{email: "michael.chen@example.com", name: "Michael Chen"},
	{email: "emily.rodriguez@example.com", name: "Emily Rodriguez"},
}

func demoDeals(now time.Time) []demoDeal {
	days := func(n int) int64 { return now.AddDate(0, 0, n).Unix() }
	return []demoDeal{
		{
			tx: models.Transaction{
				Address: "123 Main Street", City: "Springfield", State: "IL", Zip: "62701",
				Price: 450000, Status: models.StatusActive, Type: models.TypeSale,
				ClientName: "John Smith", ClosingDate: days(30),
			},
			agent:      0,
			commission: "$13,500",
			recipients: []recipient{
				{"Sarah Johnson", "Listing Agent", "50"},
				{"Michael Chen", "Buyer's Agent", "30"},
				{"Brokerage", "Broker", "20"},
			},
			completed: 2,
		},
		{
			tx: models.Transaction{
				Address: "456 Oak Avenue", City: "Springfield", State: "IL", Zip: "62704",
				Price: 325000, Status: models.StatusPending, Type: models.TypePurchase,
				ClientName: "Lisa Park", ClosingDate: days(14),
			},
			agent:      1,
			commission: "$9,750",
			recipients: []recipient{
				{"Michael Chen", "Buyer's Agent", "70"},
				{"Brokerage", "Broker", "30"},
			},
			completed: 4,
		},
		{
			tx: models.Transaction{
				Address: "789 Pine Road", City: "Chatham", State: "IL", Zip: "62629",
				Price: 2400, Status: models.StatusActive, Type: models.TypeLease,
				ClientName: "David Miller",
			},
			agent:      2,
			commission: "$2,400",
		},
		{
			tx: models.Transaction{
				Address: "1010 Elm Court", City: "Springfield", State: "IL", Zip: "62702",
				Price: 610000, Status: models.StatusClosed, Type: models.TypeSale,
				ClientName: "Angela Brooks", ClosingDate: days(-10),
			},
			agent:      0,
			commission: "$18,300",
			recipients: []recipient{
				{"Sarah Johnson", "Listing Agent", "60"},
				{"Emily Rodriguez", "Co-Listing Agent", "25"},
				{"Brokerage", "Broker", "15"},
			},
			completed: len(models.DefaultChecklist),
		},
	}
}

// Demo loads the demo agents and transactions. It does nothing if the store
// already holds any transaction, and reports whether data was loaded.
func Demo(ctx context.Context, store storage.Store, authenticator auth.Authenticator) (bool, error) {
	existing, err := store.ListTransactions(ctx, models.TransactionFilter{})
	if err != nil {
		return false, fmt.Errorf("failed to check for existing transactions: %w", err)
	}
	if len(existing) > 0 {
		slog.Debug("Skipping demo seed, database not empty", "transactions", len(existing))
		return false, nil
	}

	agentIDs := make([]string, len(demoAgents))
	for i, a := range demoAgents {
		user, err := authenticator.Register(ctx, a.email, a.name, models.RoleAgent, DemoPassword)
		if errors.Is(err, auth.ErrEmailExists) {
			user, err = store.GetUserByEmail(ctx, a.email)
		}
		if err != nil {
			return false, fmt.Errorf("failed to create demo agent %s: %w", a.email, err)
		}
		agentIDs[i] = user.ID
	}

	deals := demoDeals(time.Now())
	for _, d := range deals {
		tx := d.tx
		tx.AgentID = agentIDs[d.agent]
		if err := store.CreateTransaction(ctx, &tx); err != nil {
			return false, fmt.Errorf("failed to create demo transaction %q: %w", tx.Address, err)
		}

		if err := seedSplit(ctx, store, tx.ID, d); err != nil {
			return false, err
		}

		items, err := store.ListChecklist(ctx, tx.ID)
		if err != nil {
			return false, fmt.Errorf("failed to list checklist: %w", err)
		}
		for i := 0; i < d.completed && i < len(items); i++ {
			if _, err := store.SetChecklistItemCompleted(ctx, items[i].ID, true); err != nil {
				return false, fmt.Errorf("failed to complete checklist item: %w", err)
			}
		}
	}

	slog.Info("Demo data loaded", "agents", len(demoAgents), "transactions", len(deals))
	return true, nil
}

// seedSplit fills the deal's commission table through the same edits a user
// would make, and saves it when it balances.
func seedSplit(ctx context.Context, store storage.CommissionStore, transactionID string, d demoDeal) error {
	_, err := store.UpdateCommissionSplit(ctx, transactionID, func(split *models.CommissionSplit) error {
		st := split.State().SetTotal(allocation.ParseAmount(d.commission))
		for _, r := range d.recipients {
			blank := st.Rows[len(st.Rows)-1].ID
			var err error
			st, err = st.Apply(
				allocation.Edit{RowID: blank, Field: allocation.FieldName, Value: r.name},
				allocation.Edit{RowID: blank, Field: allocation.FieldRole, Value: r.role},
				allocation.Edit{RowID: blank, Field: allocation.FieldPercentage, Value: r.percentage},
			)
			if err != nil {
				return err
			}
		}
		split.Apply(st)
		if st.Validate() == nil {
			split.SavedAt = time.Now().Unix()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed commission split: %w", err)
	}
	return nil
}
