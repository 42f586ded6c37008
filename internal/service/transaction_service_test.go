package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/pkg/api"
)

func TestCreateTransaction(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.transactions(ts.agentToken)
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		tx := ts.createTransaction(t, "12 Oak St")
		if tx.ID == "" {
			t.Error("expected ID to be generated")
		}
		if tx.Status != "active" {
			t.Errorf("expected status active, got %q", tx.Status)
		}
	})

	t.Run("missing address", func(t *testing.T) {
		_, err := client.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
			TransactionFields: api.TransactionFields{Type: "sale"},
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := client.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
			TransactionFields: api.TransactionFields{Address: "1 Main St", Type: "auction"},
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("with agent", func(t *testing.T) {
		resp, err := client.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
			TransactionFields: api.TransactionFields{Address: "2 Main St", Type: "lease"},
			AgentID:           ts.agent.ID,
		}))
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
		if resp.Msg.Transaction.AgentName != "Jordan Agent" {
			t.Errorf("expected agent name, got %q", resp.Msg.Transaction.AgentName)
		}
	})

	t.Run("admin is not an agent", func(t *testing.T) {
		_, err := client.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{
			TransactionFields: api.TransactionFields{Address: "3 Main St", Type: "sale"},
			AgentID:           ts.admin.ID,
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestListTransactions(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.transactions(ts.agentToken)
	ctx := context.Background()

	for _, f := range []api.TransactionFields{
		{Address: "30 Cedar Ln", City: "Austin", Price: 300000, Type: "sale"},
		{Address: "10 Birch Rd", City: "Dallas", Price: 900000, Type: "purchase", Status: "pending"},
		{Address: "20 Aspen Ct", City: "Austin", Price: 600000, Type: "sale", ClientName: "Morgan"},
	} {
		if _, err := client.CreateTransaction(ctx, connect.NewRequest(&api.CreateTransactionRequest{TransactionFields: f})); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	list := func(req *api.ListTransactionsRequest) []*api.Transaction {
		t.Helper()
		resp, err := client.ListTransactions(ctx, connect.NewRequest(req))
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		return resp.Msg.Transactions
	}

	t.Run("sort by price descending", func(t *testing.T) {
		got := list(&api.ListTransactionsRequest{SortBy: "price", Descending: true})
		if len(got) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(got))
		}
		if got[0].Price != 900000 || got[2].Price != 300000 {
			t.Errorf("unexpected order: %v, %v, %v", got[0].Price, got[1].Price, got[2].Price)
		}
	})

	t.Run("sort by address", func(t *testing.T) {
		got := list(&api.ListTransactionsRequest{SortBy: "address"})
		if got[0].Address != "10 Birch Rd" {
			t.Errorf("expected 10 Birch Rd first, got %q", got[0].Address)
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		got := list(&api.ListTransactionsRequest{Status: "pending"})
		if len(got) != 1 || got[0].City != "Dallas" {
			t.Errorf("expected only the Dallas deal, got %d", len(got))
		}
	})

	t.Run("query matches city and client", func(t *testing.T) {
		if got := list(&api.ListTransactionsRequest{Query: "austin"}); len(got) != 2 {
			t.Errorf("expected 2 Austin deals, got %d", len(got))
		}
		if got := list(&api.ListTransactionsRequest{Query: "morg"}); len(got) != 1 {
			t.Errorf("expected 1 match on client name, got %d", len(got))
		}
	})

	t.Run("unsupported sort", func(t *testing.T) {
		_, err := client.ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{SortBy: "id; DROP TABLE"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestUpdateTransaction(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.transactions(ts.agentToken)
	ctx := context.Background()
	tx := ts.createTransaction(t, "8 Lake Dr")

	resp, err := client.UpdateTransaction(ctx, connect.NewRequest(&api.UpdateTransactionRequest{
		TransactionID: tx.ID,
		TransactionFields: api.TransactionFields{
			Address: "8 Lake Dr",
			Price:   515000,
			Type:    "sale",
			Status:  "closed",
		},
	}))
	if err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}
	if resp.Msg.Transaction.Status != "closed" || resp.Msg.Transaction.Price != 515000 {
		t.Errorf("update not applied: %+v", resp.Msg.Transaction)
	}

	_, err = client.UpdateTransaction(ctx, connect.NewRequest(&api.UpdateTransactionRequest{
		TransactionID:     "missing",
		TransactionFields: api.TransactionFields{Address: "x", Type: "sale"},
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAssignAgent(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	tx := ts.createTransaction(t, "3 Park Pl")

	t.Run("agents cannot assign", func(t *testing.T) {
		_, err := ts.transactions(ts.agentToken).AssignAgent(ctx, connect.NewRequest(&api.AssignAgentRequest{
			TransactionID: tx.ID, AgentID: ts.agent.ID,
		}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	admin := ts.transactions(ts.adminToken)

	t.Run("admin assigns", func(t *testing.T) {
		resp, err := admin.AssignAgent(ctx, connect.NewRequest(&api.AssignAgentRequest{
			TransactionID: tx.ID, AgentID: ts.agent.ID,
		}))
		if err != nil {
			t.Fatalf("AssignAgent failed: %v", err)
		}
		if resp.Msg.Transaction.AgentID != ts.agent.ID || resp.Msg.Transaction.AgentName != "Jordan Agent" {
			t.Errorf("agent not assigned: %+v", resp.Msg.Transaction)
		}

		list, err := admin.ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{AgentID: ts.agent.ID}))
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(list.Msg.Transactions) != 1 || list.Msg.Transactions[0].AgentName != "Jordan Agent" {
			t.Errorf("expected the assigned deal with agent name, got %+v", list.Msg.Transactions)
		}
	})

	t.Run("edit after assign keeps agent", func(t *testing.T) {
		resp, err := ts.transactions(ts.agentToken).UpdateTransaction(ctx, connect.NewRequest(&api.UpdateTransactionRequest{
			TransactionID:     tx.ID,
			TransactionFields: api.TransactionFields{Address: "3 Park Pl Unit 2", Type: "sale"},
		}))
		if err != nil {
			t.Fatalf("UpdateTransaction failed: %v", err)
		}
		if resp.Msg.Transaction.AgentID != ts.agent.ID {
			t.Errorf("agent dropped by edit: %+v", resp.Msg.Transaction)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := admin.AssignAgent(ctx, connect.NewRequest(&api.AssignAgentRequest{
			TransactionID: "missing", AgentID: ts.agent.ID,
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := admin.AssignAgent(ctx, connect.NewRequest(&api.AssignAgentRequest{
			TransactionID: tx.ID, AgentID: "ghost",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("empty agent unassigns", func(t *testing.T) {
		resp, err := admin.AssignAgent(ctx, connect.NewRequest(&api.AssignAgentRequest{TransactionID: tx.ID}))
		if err != nil {
			t.Fatalf("AssignAgent failed: %v", err)
		}
		if resp.Msg.Transaction.AgentID != "" {
			t.Errorf("expected no agent, got %q", resp.Msg.Transaction.AgentID)
		}
	})
}

func TestListAgents(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.transactions(ts.agentToken).ListAgents(context.Background(), connect.NewRequest(&api.ListAgentsRequest{}))
	if err != nil {
		t.Fatalf("ListAgents failed: %v", err)
	}
	if len(resp.Msg.Agents) != 1 || resp.Msg.Agents[0].ID != ts.agent.ID {
		t.Errorf("expected only the agent, got %+v", resp.Msg.Agents)
	}
}
