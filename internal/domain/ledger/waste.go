package ledger

import (
	"fmt"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// WasteInput references a material or product and the quantity discarded.
type WasteInput struct {
	ItemID   string
	ItemType models.WasteItemType
	Quantity float64
	Reason   string
}

// RecordWaste decrements the referenced item's stock and appends an immutable
// waste record.
func (l *Ledger) RecordWaste(book *models.Book, in WasteInput) (models.Patch, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: waste quantity must be positive", ErrInvalidInput)
	}

	record := models.WasteRecord{
		ID:       l.newID(),
		ItemID:   in.ItemID,
		ItemType: in.ItemType,
		Quantity: in.Quantity,
		Date:     l.now(),
		Reason:   in.Reason,
	}

	var stockField string
	switch in.ItemType {
	case models.WasteRawMaterial:
		idx := l.materialIndex(book, in.ItemID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: material %s", ErrNotFound, in.ItemID)
		}
		m := &book.RawMaterials[idx]
		if m.Stock < in.Quantity {
			return nil, fmt.Errorf("%w: %s has %.3f %s", ErrInsufficientStock, m.Name, m.Stock, m.ConsumptionUnit)
		}
		m.Stock -= in.Quantity
		record.ItemName = m.Name
		record.Unit = string(m.ConsumptionUnit)
		stockField = models.FieldRawMaterials
	case models.WasteProduct:
		idx := l.productIndex(book, in.ItemID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ItemID)
		}
		p := &book.Products[idx]
		if p.QuantityInStock < in.Quantity {
			return nil, fmt.Errorf("%w: %s has %.3f units", ErrInsufficientStock, p.Name, p.QuantityInStock)
		}
		p.QuantityInStock -= in.Quantity
		record.ItemName = p.Name
		record.Unit = string(models.UnitPiece)
		stockField = models.FieldProducts
	default:
		return nil, fmt.Errorf("%w: unknown waste item type %q", ErrInvalidInput, in.ItemType)
	}

	book.WasteRecords = append(book.WasteRecords, record)
	return book.PatchOf(stockField, models.FieldWasteRecords), nil
}

// DeleteWaste removes a waste record and re-credits the recorded quantity to
// the referenced item. This is a single compensating action: once the record
// is gone a second delete fails with ErrNotFound, and if the item itself was
// deleted in the meantime the reversal is rejected rather than dropped.
func (l *Ledger) DeleteWaste(book *models.Book, recordID string) (models.Patch, error) {
	rIdx := -1
	for i := range book.WasteRecords {
		if book.WasteRecords[i].ID == recordID {
			rIdx = i
			break
		}
	}
	if rIdx < 0 {
		return nil, fmt.Errorf("%w: waste record %s", ErrNotFound, recordID)
	}
	record := book.WasteRecords[rIdx]

	var stockField string
	switch record.ItemType {
	case models.WasteRawMaterial:
		idx := l.materialIndex(book, record.ItemID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: material %s (%s)", ErrOrphanedReversal, record.ItemName, record.ItemID)
		}
		book.RawMaterials[idx].Stock += record.Quantity
		stockField = models.FieldRawMaterials
	case models.WasteProduct:
		idx := l.productIndex(book, record.ItemID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: product %s (%s)", ErrOrphanedReversal, record.ItemName, record.ItemID)
		}
		book.Products[idx].QuantityInStock += record.Quantity
		stockField = models.FieldProducts
	default:
		return nil, fmt.Errorf("%w: unknown waste item type %q", ErrInvalidInput, record.ItemType)
	}

	book.WasteRecords = append(book.WasteRecords[:rIdx], book.WasteRecords[rIdx+1:]...)
	return book.PatchOf(stockField, models.FieldWasteRecords), nil
}
