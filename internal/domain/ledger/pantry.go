package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// PackageInput bundles PackCount packs of PackSize units each out of a source
// product. PVP is the price of one pack.
type PackageInput struct {
	SourceProductID string
	PackSize        float64
	PackCount       float64
	Name            string
	PVP             float64
}

// PackageProduct consumes source units and creates a PACKAGE product. The
// pack's unit cost is the source cost times the pack size, so the total cost
// basis of the consumed units carries over unchanged.
func (l *Ledger) PackageProduct(book *models.Book, in PackageInput) (models.Patch, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: package name is required", ErrInvalidInput)
	}
	if in.PackSize <= 0 || in.PackCount <= 0 {
		return nil, fmt.Errorf("%w: pack size and count must be positive", ErrInvalidInput)
	}
	if in.PVP < 0 {
		return nil, fmt.Errorf("%w: pvp must not be negative", ErrInvalidInput)
	}

	idx := l.productIndex(book, in.SourceProductID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.SourceProductID)
	}
	source := &book.Products[idx]

	consumed := in.PackSize * in.PackCount
	if source.QuantityInStock < consumed {
		return nil, fmt.Errorf("%w: %s has %.3f units, %.3f needed", ErrInsufficientStock,
			source.Name, source.QuantityInStock, consumed)
	}

	source.QuantityInStock -= consumed
	book.Products = append(book.Products, models.SellableProduct{
		ID:              l.newID(),
		Name:            strings.TrimSpace(in.Name),
		Type:            models.ProductPackage,
		QuantityInStock: in.PackCount,
		Cost:            source.Cost * in.PackSize,
		PVP:             in.PVP,
		SourceProductID: source.ID,
		PackSize:        in.PackSize,
	})

	return book.PatchOf(models.FieldProducts), nil
}

// TransformInput turns a consumed quantity of a source product into Yield
// units of a new product.
type TransformInput struct {
	SourceProductID string
	Quantity        float64
	Name            string
	Yield           float64
	PVP             float64
	Note            string
}

// TransformProduct consumes source stock and creates a TRANSFORMED product.
// Value is conserved: cost*yield of the new batch equals the cost basis of
// the consumed source quantity.
func (l *Ledger) TransformProduct(book *models.Book, in TransformInput) (models.Patch, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: consumed quantity must be positive", ErrInvalidInput)
	}
	if in.Yield <= 0 {
		return nil, fmt.Errorf("%w: yield must be positive", ErrInvalidInput)
	}
	if in.PVP < 0 {
		return nil, fmt.Errorf("%w: pvp must not be negative", ErrInvalidInput)
	}

	idx := l.productIndex(book, in.SourceProductID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.SourceProductID)
	}
	source := &book.Products[idx]

	if source.QuantityInStock < in.Quantity {
		return nil, fmt.Errorf("%w: %s has %.3f units, %.3f needed", ErrInsufficientStock,
			source.Name, source.QuantityInStock, in.Quantity)
	}

	source.QuantityInStock -= in.Quantity
	book.Products = append(book.Products, models.SellableProduct{
		ID:              l.newID(),
		Name:            strings.TrimSpace(in.Name),
		Type:            models.ProductTransformed,
		QuantityInStock: in.Yield,
		Cost:            source.Cost * in.Quantity / in.Yield,
		PVP:             in.PVP,
		SourceProductID: source.ID,
		Note:            in.Note,
	})

	return book.PatchOf(models.FieldProducts), nil
}

// DeleteProduct removes a product from the pantry. Sales and waste records
// pointing at it stay in the ledgers; their reversals will be rejected as
// orphaned.
func (l *Ledger) DeleteProduct(book *models.Book, id string) (models.Patch, error) {
	idx := l.productIndex(book, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	book.Products = append(book.Products[:idx], book.Products[idx+1:]...)
	return book.PatchOf(models.FieldProducts), nil
}
