package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// MaterialInput carries the editable fields of a raw material.
type MaterialInput struct {
	Name                   string
	ConsumptionUnit        models.Unit
	Stock                  float64
	PurchasePrice          float64
	MinStock               float64
	Supplier               string
	PurchaseUnitConversion float64
}

func (in MaterialInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: material name is required", ErrInvalidInput)
	}
	if !in.ConsumptionUnit.Valid() {
		return fmt.Errorf("%w: unknown consumption unit %q", ErrInvalidInput, in.ConsumptionUnit)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if in.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must not be negative", ErrInvalidInput)
	}
	if in.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock must not be negative", ErrInvalidInput)
	}
	if in.PurchaseUnitConversion < 0 {
		return fmt.Errorf("%w: purchase unit conversion must not be negative", ErrInvalidInput)
	}
	return nil
}

// CreateMaterial adds a raw material to the book.
func (l *Ledger) CreateMaterial(book *models.Book, in MaterialInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	book.RawMaterials = append(book.RawMaterials, models.RawMaterial{
		ID:                     l.newID(),
		Name:                   strings.TrimSpace(in.Name),
		ConsumptionUnit:        in.ConsumptionUnit,
		Stock:                  in.Stock,
		PurchasePrice:          in.PurchasePrice,
		MinStock:               in.MinStock,
		Supplier:               strings.TrimSpace(in.Supplier),
		PurchaseUnitConversion: in.PurchaseUnitConversion,
		PurchaseHistory:        []models.PurchaseEntry{},
	})

	fields := []string{models.FieldRawMaterials}
	if l.registerSupplier(book, in.Supplier) {
		fields = append(fields, models.FieldSuppliers)
	}
	return book.PatchOf(fields...), nil
}

// UpdateMaterial replaces the editable fields of a material. The purchase
// history is append-only and never touched here.
func (l *Ledger) UpdateMaterial(book *models.Book, id string, in MaterialInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	idx := l.materialIndex(book, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: material %s", ErrNotFound, id)
	}

	m := &book.RawMaterials[idx]
	m.Name = strings.TrimSpace(in.Name)
	m.ConsumptionUnit = in.ConsumptionUnit
	m.Stock = in.Stock
	m.PurchasePrice = in.PurchasePrice
	m.MinStock = in.MinStock
	m.Supplier = strings.TrimSpace(in.Supplier)
	m.PurchaseUnitConversion = in.PurchaseUnitConversion

	fields := []string{models.FieldRawMaterials}
	if l.registerSupplier(book, in.Supplier) {
		fields = append(fields, models.FieldSuppliers)
	}
	return book.PatchOf(fields...), nil
}

// DeleteMaterial removes a material. Waste records pointing at it become
// orphaned and their reversal will be rejected explicitly.
func (l *Ledger) DeleteMaterial(book *models.Book, id string) (models.Patch, error) {
	idx := l.materialIndex(book, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: material %s", ErrNotFound, id)
	}
	book.RawMaterials = append(book.RawMaterials[:idx], book.RawMaterials[idx+1:]...)
	return book.PatchOf(models.FieldRawMaterials), nil
}

// PurchaseInput describes a stock purchase. Quantity is in the units the
// material is bought in; TotalCost is the full amount paid.
type PurchaseInput struct {
	MaterialID string
	Quantity   float64
	TotalCost  float64
	Supplier   string
}

// Purchase appends a purchase-history entry, increments stock and recomputes
// the weighted-average unit cost: (oldStock*oldPrice + totalCost) / newStock.
func (l *Ledger) Purchase(book *models.Book, in PurchaseInput) (models.Patch, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: purchase quantity must be positive", ErrInvalidInput)
	}
	if in.TotalCost < 0 {
		return nil, fmt.Errorf("%w: purchase cost must not be negative", ErrInvalidInput)
	}

	idx := l.materialIndex(book, in.MaterialID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: material %s", ErrNotFound, in.MaterialID)
	}
	m := &book.RawMaterials[idx]

	// Stock and the average price live in consumption units; the history
	// entry keeps the quantity exactly as it was entered.
	consumed := in.Quantity
	if m.PurchaseUnitConversion > 0 {
		consumed = in.Quantity * m.PurchaseUnitConversion
	}

	newStock := m.Stock + consumed
	newPrice := 0.0
	if newStock > 0 {
		newPrice = (m.Stock*m.PurchasePrice + in.TotalCost) / newStock
	}

	m.PurchaseHistory = append(m.PurchaseHistory, models.PurchaseEntry{
		Date:         l.now(),
		Quantity:     in.Quantity,
		PricePerUnit: in.TotalCost / in.Quantity,
		Supplier:     strings.TrimSpace(in.Supplier),
	})
	m.Stock = newStock
	m.PurchasePrice = newPrice

	fields := []string{models.FieldRawMaterials}
	if l.registerSupplier(book, in.Supplier) {
		fields = append(fields, models.FieldSuppliers)
	}
	return book.PatchOf(fields...), nil
}
