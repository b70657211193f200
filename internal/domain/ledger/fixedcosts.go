package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// FixedCostInput carries the editable fields of a fixed cost.
type FixedCostInput struct {
	Name          string
	MonthlyAmount float64
}

func (in FixedCostInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: fixed cost name is required", ErrInvalidInput)
	}
	if in.MonthlyAmount < 0 {
		return fmt.Errorf("%w: monthly amount must not be negative", ErrInvalidInput)
	}
	return nil
}

// CreateFixedCost adds a fixed cost; names are unique case-insensitively.
func (l *Ledger) CreateFixedCost(book *models.Book, in FixedCostInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	for _, fc := range book.FixedCosts {
		if strings.EqualFold(fc.Name, name) {
			return nil, fmt.Errorf("%w: fixed cost %s", ErrDuplicateName, fc.Name)
		}
	}
	book.FixedCosts = append(book.FixedCosts, models.FixedCost{
		ID:            l.newID(),
		Name:          name,
		MonthlyAmount: in.MonthlyAmount,
	})
	return book.PatchOf(models.FieldFixedCosts), nil
}

// UpdateFixedCost replaces a fixed cost's fields, keeping names unique.
func (l *Ledger) UpdateFixedCost(book *models.Book, id string, in FixedCostInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	idx := -1
	for i := range book.FixedCosts {
		if book.FixedCosts[i].ID == id {
			idx = i
			continue
		}
		if strings.EqualFold(book.FixedCosts[i].Name, name) {
			return nil, fmt.Errorf("%w: fixed cost %s", ErrDuplicateName, book.FixedCosts[i].Name)
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: fixed cost %s", ErrNotFound, id)
	}
	book.FixedCosts[idx].Name = name
	book.FixedCosts[idx].MonthlyAmount = in.MonthlyAmount
	return book.PatchOf(models.FieldFixedCosts), nil
}

// DeleteFixedCost removes a fixed cost.
func (l *Ledger) DeleteFixedCost(book *models.Book, id string) (models.Patch, error) {
	for i := range book.FixedCosts {
		if book.FixedCosts[i].ID == id {
			book.FixedCosts = append(book.FixedCosts[:i], book.FixedCosts[i+1:]...)
			return book.PatchOf(models.FieldFixedCosts), nil
		}
	}
	return nil, fmt.Errorf("%w: fixed cost %s", ErrNotFound, id)
}
