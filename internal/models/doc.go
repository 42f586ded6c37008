// Package models defines the core domain models for DealDesk.
//
// # Models
//
//   - Transaction: a property deal tracked on the dashboard
//   - CommissionSplit: how a transaction's commission is divided among recipients
//   - ChecklistItem: one document or task on a transaction's closing checklist
//   - User: an admin or agent who can sign in; agents can be assigned to deals
//   - BrandingConfig: tenant colours and imagery for the dashboard
//
// # Design Principles
//
//  1. Relationships are ID strings, never pointers
//  2. Timestamps are Unix seconds; zero means "not set"
//  3. Commission arithmetic lives in the allocation package, not here
package models
