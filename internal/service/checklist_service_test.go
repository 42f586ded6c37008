package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/pkg/api"
)

func TestChecklist(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.checklists(ts.agentToken)
	ctx := context.Background()
	tx := ts.createTransaction(t, "14 Maple St")

	list, err := client.ListChecklist(ctx, connect.NewRequest(&api.ListChecklistRequest{TransactionID: tx.ID}))
	if err != nil {
		t.Fatalf("ListChecklist failed: %v", err)
	}
	if len(list.Msg.Items) != len(models.DefaultChecklist) {
		t.Fatalf("expected %d default items, got %d", len(models.DefaultChecklist), len(list.Msg.Items))
	}
	if list.Msg.Progress.Completed != 0 || list.Msg.Progress.Percent != 0 {
		t.Errorf("fresh checklist should have no progress: %+v", list.Msg.Progress)
	}

	added, err := client.AddChecklistItem(ctx, connect.NewRequest(&api.AddChecklistItemRequest{
		TransactionID: tx.ID,
		Title:         "HOA documents",
		Category:      "Contract",
	}))
	if err != nil {
		t.Fatalf("AddChecklistItem failed: %v", err)
	}
	if added.Msg.Item.Position != len(models.DefaultChecklist) {
		t.Errorf("expected new item at the end, got position %d", added.Msg.Item.Position)
	}

	// Six defaults plus the one just added.
	done, err := client.SetItemCompleted(ctx, connect.NewRequest(&api.SetItemCompletedRequest{
		ItemID:    list.Msg.Items[0].ID,
		Completed: true,
	}))
	if err != nil {
		t.Fatalf("SetItemCompleted failed: %v", err)
	}
	if !done.Msg.Item.Completed || done.Msg.Item.CompletedAt == 0 {
		t.Errorf("item not completed: %+v", done.Msg.Item)
	}
	if done.Msg.Progress.Completed != 1 || done.Msg.Progress.Total != 7 {
		t.Errorf("expected 1/7 complete, got %+v", done.Msg.Progress)
	}

	undone, err := client.SetItemCompleted(ctx, connect.NewRequest(&api.SetItemCompletedRequest{
		ItemID: list.Msg.Items[0].ID,
	}))
	if err != nil {
		t.Fatalf("SetItemCompleted failed: %v", err)
	}
	if undone.Msg.Item.CompletedAt != 0 {
		t.Error("expected CompletedAt to be cleared")
	}

	deleted, err := client.DeleteChecklistItem(ctx, connect.NewRequest(&api.DeleteChecklistItemRequest{ItemID: added.Msg.Item.ID}))
	if err != nil {
		t.Fatalf("DeleteChecklistItem failed: %v", err)
	}
	if deleted.Msg.Progress.Total != len(models.DefaultChecklist) {
		t.Errorf("expected %d items after delete, got %d", len(models.DefaultChecklist), deleted.Msg.Progress.Total)
	}
}

func TestChecklist_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.checklists(ts.agentToken)
	ctx := context.Background()

	_, err := client.ListChecklist(ctx, connect.NewRequest(&api.ListChecklistRequest{TransactionID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = client.AddChecklistItem(ctx, connect.NewRequest(&api.AddChecklistItemRequest{TransactionID: "missing", Title: "x"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = client.SetItemCompleted(ctx, connect.NewRequest(&api.SetItemCompletedRequest{ItemID: "missing", Completed: true}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = client.DeleteChecklistItem(ctx, connect.NewRequest(&api.DeleteChecklistItemRequest{ItemID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}
