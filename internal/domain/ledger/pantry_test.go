package ledger

import (
	"errors"
	"testing"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// End-to-end: stock 10 at cost 2, packed into 2 packs of 3 at 10/pack ->
// source down to 4, new PACKAGE at cost 6 per pack.
func TestPackageProduct(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{
		ID: "p1", Name: "Cookie", Type: models.ProductSingle, QuantityInStock: 10, Cost: 2, PVP: 4,
	})

	_, err := l.PackageProduct(book, PackageInput{
		SourceProductID: "p1", PackSize: 3, PackCount: 2, Name: "Cookie Box", PVP: 10,
	})
	if err != nil {
		t.Fatalf("package: %v", err)
	}

	if book.Products[0].QuantityInStock != 4 {
		t.Fatalf("expected source stock 4, got %v", book.Products[0].QuantityInStock)
	}

	pack := book.Products[1]
	if pack.Type != models.ProductPackage || pack.SourceProductID != "p1" || pack.PackSize != 3 {
		t.Fatalf("unexpected package %+v", pack)
	}
	if pack.QuantityInStock != 2 {
		t.Fatalf("expected 2 packs, got %v", pack.QuantityInStock)
	}
	if !almostEqual(pack.Cost, 6) {
		t.Fatalf("expected pack cost 6, got %v", pack.Cost)
	}
}

func TestPackageProductInsufficientStock(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{ID: "p1", Name: "Cookie", Type: models.ProductSingle, QuantityInStock: 5, Cost: 2})

	_, err := l.PackageProduct(book, PackageInput{SourceProductID: "p1", PackSize: 3, PackCount: 2, Name: "Box", PVP: 10})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if book.Products[0].QuantityInStock != 5 || len(book.Products) != 1 {
		t.Fatal("rejected packaging must not mutate the snapshot")
	}
}

func TestTransformConservesValue(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{
		ID: "p1", Name: "Sponge Cake", Type: models.ProductSingle, QuantityInStock: 8, Cost: 3.5, PVP: 9,
	})

	_, err := l.TransformProduct(book, TransformInput{
		SourceProductID: "p1", Quantity: 4, Name: "Cake Pops", Yield: 24, PVP: 1.5, Note: "crumbled and dipped",
	})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	if book.Products[0].QuantityInStock != 4 {
		t.Fatalf("expected source stock 4, got %v", book.Products[0].QuantityInStock)
	}

	created := book.Products[1]
	if created.Type != models.ProductTransformed || created.QuantityInStock != 24 {
		t.Fatalf("unexpected product %+v", created)
	}
	// cost_new * yield_new == source.cost * consumed
	if !almostEqual(created.Cost*24, 3.5*4) {
		t.Fatalf("value not conserved: cost=%v", created.Cost)
	}
}

func TestTransformInsufficientStock(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{ID: "p1", Name: "Cake", QuantityInStock: 2, Cost: 3})

	_, err := l.TransformProduct(book, TransformInput{SourceProductID: "p1", Quantity: 3, Name: "Pops", Yield: 10, PVP: 1})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	l := testLedger()
	book := bookWithProduct(models.SellableProduct{ID: "p1", Name: "Cake"})

	if _, err := l.DeleteProduct(book, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := l.DeleteProduct(book, "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
