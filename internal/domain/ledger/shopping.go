package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// GenerateShoppingList snapshots every material whose stock is below its
// minimum, listing the missing quantity for each. The list is immutable once
// created.
func (l *Ledger) GenerateShoppingList(book *models.Book, name string) (models.Patch, error) {
	items := []models.ShoppingItem{}
	for _, m := range book.RawMaterials {
		if m.Stock < m.MinStock {
			items = append(items, models.ShoppingItem{
				RawMaterialID: m.ID,
				Name:          m.Name,
				Unit:          string(m.ConsumptionUnit),
				Quantity:      m.MinStock - m.Stock,
			})
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no materials below their minimum stock", ErrInvalidInput)
	}

	now := l.now()
	if strings.TrimSpace(name) == "" {
		name = "Low stock " + now.Format("2006-01-02")
	}

	book.ShoppingLists = append(book.ShoppingLists, models.ShoppingList{
		ID:     l.newID(),
		Name:   strings.TrimSpace(name),
		Date:   now,
		Source: models.ShoppingFromLowStock,
		Items:  items,
	})
	return book.PatchOf(models.FieldShoppingLists), nil
}

// ShoppingListInput carries an explicit list saved from a sales proposal.
type ShoppingListInput struct {
	Name  string
	Items []models.ShoppingItem
}

// SaveShoppingList stores an explicitly provided list of missing quantities.
func (l *Ledger) SaveShoppingList(book *models.Book, in ShoppingListInput) (models.Patch, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: shopping list name is required", ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: shopping list needs at least one item", ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantities must be positive", ErrInvalidInput)
		}
	}

	book.ShoppingLists = append(book.ShoppingLists, models.ShoppingList{
		ID:     l.newID(),
		Name:   strings.TrimSpace(in.Name),
		Date:   l.now(),
		Source: models.ShoppingFromProposal,
		Items:  append([]models.ShoppingItem(nil), in.Items...),
	})
	return book.PatchOf(models.FieldShoppingLists), nil
}

// DeleteShoppingList removes a saved list.
func (l *Ledger) DeleteShoppingList(book *models.Book, id string) (models.Patch, error) {
	for i := range book.ShoppingLists {
		if book.ShoppingLists[i].ID == id {
			book.ShoppingLists = append(book.ShoppingLists[:i], book.ShoppingLists[i+1:]...)
			return book.PatchOf(models.FieldShoppingLists), nil
		}
	}
	return nil, fmt.Errorf("%w: shopping list %s", ErrNotFound, id)
}
