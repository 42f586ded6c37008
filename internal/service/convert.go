package service

import (
	"github.com/mmynk/dealdesk/internal/allocation"
	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/pkg/api"
)

func toAPIRows(rows []allocation.Row) []api.AllocationRow {
	out := make([]api.AllocationRow, len(rows))
	for i, r := range rows {
		out[i] = api.AllocationRow{
			ID:         r.ID,
			Name:       r.Name,
			Role:       r.Role,
			Percentage: r.Percentage,
			Amount:     r.Amount,
		}
	}
	return out
}

func fromAPIRows(rows []api.AllocationRow) []allocation.Row {
	out := make([]allocation.Row, len(rows))
	for i, r := range rows {
		out[i] = allocation.Row{
			ID:         r.ID,
			Name:       r.Name,
			Role:       r.Role,
			Percentage: r.Percentage,
			Amount:     r.Amount,
		}
	}
	return out
}

func toAPITotals(total float64, t allocation.Totals) api.CommissionTotals {
	return api.CommissionTotals{
		TotalPercentage:        t.TotalPercentage,
		TotalAllocated:         t.TotalAllocated,
		IsBalanced:             t.IsBalanced,
		Unallocated:            total - t.TotalAllocated,
		Status:                 string(t.Status()),
		TotalPercentageDisplay: allocation.FormatPercent(t.TotalPercentage),
		TotalAllocatedDisplay:  allocation.FormatAmount(t.TotalAllocated),
	}
}

func toAPISplit(split *models.CommissionSplit) *api.CommissionSplit {
	return &api.CommissionSplit{
		TransactionID:   split.TransactionID,
		TotalCommission: split.TotalCommission,
		Rows:            toAPIRows(split.Rows),
		Totals:          toAPITotals(split.TotalCommission, allocation.ComputeTotals(split.Rows)),
		SavedAt:         split.SavedAt,
		UpdatedAt:       split.UpdatedAt,
	}
}

func toAPITransaction(t *models.Transaction, agentName string) *api.Transaction {
	return &api.Transaction{
		ID:          t.ID,
		Address:     t.Address,
		City:        t.City,
		State:       t.State,
		Zip:         t.Zip,
		Price:       t.Price,
		Status:      string(t.Status),
		Type:        string(t.Type),
		ClientName:  t.ClientName,
		AgentID:     t.AgentID,
		AgentName:   agentName,
		ClosingDate: t.ClosingDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// applyTransactionFields copies editable fields onto t. An empty status keeps t's current one.
func applyTransactionFields(t *models.Transaction, f api.TransactionFields) {
	t.Address = f.Address
	t.City = f.City
	t.State = f.State
	t.Zip = f.Zip
	t.Price = f.Price
	t.Type = models.TransactionType(f.Type)
	t.ClientName = f.ClientName
	t.ClosingDate = f.ClosingDate
	if f.Status != "" {
		t.Status = models.TransactionStatus(f.Status)
	}
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIChecklistItem(item *models.ChecklistItem) *api.ChecklistItem {
	return &api.ChecklistItem{
		ID:            item.ID,
		TransactionID: item.TransactionID,
		Title:         item.Title,
		Category:      item.Category,
		Required:      item.Required,
		Completed:     item.Completed,
		CompletedAt:   item.CompletedAt,
		DueDate:       item.DueDate,
		Position:      item.Position,
	}
}

func toAPIProgress(p models.ChecklistProgress) api.ChecklistProgress {
	return api.ChecklistProgress{
		Completed:         p.Completed,
		Total:             p.Total,
		RequiredRemaining: p.RequiredRemaining,
		Percent:           p.Percent(),
	}
}

func toAPIBranding(b models.BrandingConfig) api.Branding {
	return api.Branding{
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		CompanyLogo:    b.CompanyLogo,
		LoadingIcon:    b.LoadingIcon,
	}
}

func fromAPIBranding(b api.Branding) models.BrandingConfig {
	return models.BrandingConfig{
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		CompanyLogo:    b.CompanyLogo,
		LoadingIcon:    b.LoadingIcon,
	}
}
