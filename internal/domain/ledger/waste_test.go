package ledger

import (
	"errors"
	"testing"

	"github.com/obradorhq/obrador/internal/domain/models"
)

func TestRecordWasteOnMaterial(t *testing.T) {
	l := testLedger()
	book := bookWithMaterial(models.RawMaterial{
		ID: "m1", Name: "Cream", ConsumptionUnit: models.UnitLitre, Stock: 3,
	})

	_, err := l.RecordWaste(book, WasteInput{ItemID: "m1", ItemType: models.WasteRawMaterial, Quantity: 1.5, Reason: "expired"})
	if err != nil {
		t.Fatalf("record waste: %v", err)
	}

	if book.RawMaterials[0].Stock != 1.5 {
		t.Fatalf("expected stock 1.5, got %v", book.RawMaterials[0].Stock)
	}
	record := book.WasteRecords[0]
	if record.ItemName != "Cream" || record.Unit != "l" || record.Reason != "expired" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestRecordWasteInsufficientStock(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{ID: "p1", Name: "Tart", QuantityInStock: 1})

	_, err := l.RecordWaste(book, WasteInput{ItemID: "p1", ItemType: models.WasteProduct, Quantity: 2})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if book.Products[0].QuantityInStock != 1 || len(book.WasteRecords) != 0 {
		t.Fatal("rejected waste must not mutate the snapshot")
	}
}

func TestDeleteWasteRestoresStockOnce(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{ID: "p1", Name: "Tart", QuantityInStock: 5})

	if _, err := l.RecordWaste(book, WasteInput{ItemID: "p1", ItemType: models.WasteProduct, Quantity: 2}); err != nil {
		t.Fatalf("record waste: %v", err)
	}
	recordID := book.WasteRecords[0].ID

	if _, err := l.DeleteWaste(book, recordID); err != nil {
		t.Fatalf("delete waste: %v", err)
	}
	if book.Products[0].QuantityInStock != 5 {
		t.Fatalf("expected stock restored to 5, got %v", book.Products[0].QuantityInStock)
	}

	// The compensating action is not re-entrant: the record is gone.
	if _, err := l.DeleteWaste(book, recordID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if book.Products[0].QuantityInStock != 5 {
		t.Fatal("stock must not be double-credited")
	}
}

func TestDeleteWasteOrphanedItem(t *testing.T) {
	l := testLedger()
	book := bookWithMaterial(models.RawMaterial{ID: "m1", Name: "Cream", ConsumptionUnit: models.UnitLitre, Stock: 3})

	if _, err := l.RecordWaste(book, WasteInput{ItemID: "m1", ItemType: models.WasteRawMaterial, Quantity: 1}); err != nil {
		t.Fatalf("record waste: %v", err)
	}
	if _, err := l.DeleteMaterial(book, "m1"); err != nil {
		t.Fatalf("delete material: %v", err)
	}

	_, err := l.DeleteWaste(book, book.WasteRecords[0].ID)
	if !errors.Is(err, ErrOrphanedReversal) {
		t.Fatalf("expected ErrOrphanedReversal, got %v", err)
	}
	if len(book.WasteRecords) != 1 {
		t.Fatal("record must survive a rejected reversal")
	}
}
