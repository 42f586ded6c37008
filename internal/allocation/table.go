// Package allocation implements the commission allocation table: a list of
// recipient rows whose percentage and dollar amount stay in sync with the
// total commission, plus a trailing blank row that acts as the "add new"
// affordance.
//
// State values are immutable. Every operation returns a new State and leaves
// its receiver untouched, so callers can load a split, apply an edit and
// persist the result without aliasing concerns.
package allocation

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	ErrRowNotFound  = errors.New("allocation row not found")
	ErrUnknownField = errors.New("unknown allocation field")
	ErrUnbalanced   = errors.New("commission split must total 100%")
)

// balanceTolerance is how far from 100% a split may be and still count as balanced.
const balanceTolerance = 0.01

// newRowID generates identifiers for freshly appended blank rows.
var newRowID = uuid.NewString

// Field names an editable column of an allocation row.
type Field string

const (
	FieldName       Field = "name"
	FieldRole       Field = "role"
	FieldPercentage Field = "percentage"
	FieldAmount     Field = "amount"
)

// ParseField converts a wire field name into a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldRole, FieldPercentage, FieldAmount:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Row is one recipient of a commission split.
type Row struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// IsBlank reports whether the row is the "add new" placeholder.
func (r Row) IsBlank() bool {
	return r.Name == "" && r.Role == ""
}

func blankRow() Row {
	return Row{ID: newRowID()}
}

// Status is the visual balance state of a split.
type Status string

const (
	StatusBalanced Status = "balanced" // green
	StatusUnder    Status = "under"    // orange
	StatusOver     Status = "over"     // red
)

// Totals summarises the non-blank rows of a split.
type Totals struct {
	TotalPercentage float64 `json:"totalPercentage"`
	TotalAllocated  float64 `json:"totalAllocated"`
	IsBalanced      bool    `json:"isBalanced"`
}

// Status maps the totals onto the balanced/under/over indicator.
func (t Totals) Status() Status {
	switch {
	case t.IsBalanced:
		return StatusBalanced
	case t.TotalPercentage > 100:
		return StatusOver
	default:
		return StatusUnder
	}
}

// ComputeTotals sums percentage and amount over the non-blank rows.
func ComputeTotals(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		if r.IsBlank() {
			continue
		}
		t.TotalPercentage += r.Percentage
		t.TotalAllocated += r.Amount
	}
	t.IsBalanced = math.Abs(t.TotalPercentage-100) < balanceTolerance
	return t
}

// State is a commission split: the total being divided and its rows in
// display order. The zero value is not usable; start from New or Restore.
type State struct {
	Total float64
	Rows  []Row
}

// New returns an empty split for the given total holding a single blank row.
func New(total float64) State {
	return State{Total: total, Rows: []Row{blankRow()}}
}

// Restore rebuilds a split from stored or client-supplied rows. Rows without
// an ID get one, and the blank-row invariant is re-established.
func Restore(total float64, rows []Row) State {
	s := State{Total: total, Rows: make([]Row, len(rows))}
	copy(s.Rows, rows)
	for i := range s.Rows {
		if s.Rows[i].ID == "" {
			s.Rows[i].ID = newRowID()
		}
	}
	return s.normalize("")
}

func (s State) clone() State {
	rows := make([]Row, len(s.Rows))
	copy(rows, s.Rows)
	return State{Total: s.Total, Rows: rows}
}

func (s State) index(rowID string) int {
	for i, r := range s.Rows {
		if r.ID == rowID {
			return i
		}
	}
	return -1
}

// Row returns the row with the given ID.
func (s State) Row(rowID string) (Row, bool) {
	if i := s.index(rowID); i >= 0 {
		return s.Rows[i], true
	}
	return Row{}, false
}

// Filled returns the non-blank rows.
func (s State) Filled() []Row {
	out := make([]Row, 0, len(s.Rows))
	for _, r := range s.Rows {
		if !r.IsBlank() {
			out = append(out, r)
		}
	}
	return out
}

// Totals computes the split's totals.
func (s State) Totals() Totals {
	return ComputeTotals(s.Rows)
}

// Validate returns ErrUnbalanced unless the rows add up to 100%.
func (s State) Validate() error {
	t := s.Totals()
	if !t.IsBalanced {
		return fmt.Errorf("%w (currently %s)", ErrUnbalanced, FormatPercent(t.TotalPercentage))
	}
	return nil
}

// SetTotal changes the amount being divided and re-derives every row's
// amount from its percentage. Rows whose amount was typed while there was
// no total have no percentage yet; those keep their amount and take the
// percentage it represents of the new total.
func (s State) SetTotal(total float64) State {
	next := s.clone()
	for i := range next.Rows {
		r := &next.Rows[i]
		if s.Total <= 0 && r.Percentage == 0 && r.Amount != 0 {
			r.Percentage = percentOf(r.Amount, total)
			continue
		}
		r.Amount = total * r.Percentage / 100
	}
	next.Total = total
	return next
}

// Update applies one user edit. Percentage edits recompute the amount,
// amount edits recompute the percentage, and name/role edits keep exactly
// one blank row in the table. Numeric text is coerced, never rejected.
func (s State) Update(rowID string, field Field, value string) (State, error) {
	i := s.index(rowID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	}

	next := s.clone()
	row := &next.Rows[i]
	switch field {
	case FieldName:
		row.Name = value
	case FieldRole:
		row.Role = value
	case FieldPercentage:
		row.Percentage = ParsePercent(value)
		row.Amount = next.Total * row.Percentage / 100
	case FieldAmount:
		row.Amount = ParseAmount(value)
		row.Percentage = percentOf(row.Amount, next.Total)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if field == FieldName || field == FieldRole {
		next = next.normalize(rowID)
	}
	return next, nil
}

// Delete removes a row. If that leaves no blank row, a new one is appended
// in the same step.
func (s State) Delete(rowID string) (State, error) {
	i := s.index(rowID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	}
	rows := make([]Row, 0, len(s.Rows))
	rows = append(rows, s.Rows[:i]...)
	rows = append(rows, s.Rows[i+1:]...)
	return State{Total: s.Total, Rows: rows}.normalize(""), nil
}

// Edit is one queued change for Apply. Delete takes precedence over Field.
type Edit struct {
	RowID  string
	Field  Field
	Value  string
	Delete bool
}

// Apply runs edits in order and stops at the first structural error.
func (s State) Apply(edits ...Edit) (State, error) {
	cur := s
	for n, e := range edits {
		var err error
		if e.Delete {
			cur, err = cur.Delete(e.RowID)
		} else {
			cur, err = cur.Update(e.RowID, e.Field, e.Value)
		}
		if err != nil {
			return s, fmt.Errorf("edit %d: %w", n, err)
		}
	}
	return cur, nil
}

// normalize leaves exactly one blank row. When several exist, a blank row
// still carrying a percentage or amount wins, then the row named by keepID,
// then the last one.
func (s State) normalize(keepID string) State {
	keep, best := -1, -1
	for i, r := range s.Rows {
		if !r.IsBlank() {
			continue
		}
		rank := 0
		if r.Percentage != 0 || r.Amount != 0 {
			rank = 2
		} else if r.ID == keepID {
			rank = 1
		}
		if rank >= best {
			keep, best = i, rank
		}
	}
	if keep < 0 {
		s.Rows = append(s.Rows, blankRow())
		return s
	}
	rows := make([]Row, 0, len(s.Rows))
	for i, r := range s.Rows {
		if r.IsBlank() && i != keep {
			continue
		}
		rows = append(rows, r)
	}
	s.Rows = rows
	return s
}

func percentOf(amount, total float64) float64 {
	if total > 0 {
		return amount / total * 100
	}
	return 0
}
