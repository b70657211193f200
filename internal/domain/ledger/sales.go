package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// SaleInput describes a sale of a pantry product.
type SaleInput struct {
	ProductID      string
	Quantity       float64
	Customer       string
	DeliveryMethod string
	ShippingCost   float64
}

// RecordSale decrements product stock, snapshots prices and costs into an
// immutable sale record, and upserts the customer by case-insensitive name.
func (l *Ledger) RecordSale(book *models.Book, in SaleInput) (models.Patch, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: sale quantity must be positive", ErrInvalidInput)
	}
	if in.ShippingCost < 0 {
		return nil, fmt.Errorf("%w: shipping cost must not be negative", ErrInvalidInput)
	}
	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	idx := l.productIndex(book, in.ProductID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
	}
	p := &book.Products[idx]

	if p.QuantityInStock < in.Quantity {
		return nil, fmt.Errorf("%w: %s has %.3f units, %.3f needed", ErrInsufficientStock,
			p.Name, p.QuantityInStock, in.Quantity)
	}

	// Reuse the stored casing when the customer already exists.
	created := true
	for _, c := range book.Customers {
		if strings.EqualFold(c.Name, customer) {
			customer = c.Name
			created = false
			break
		}
	}
	if created {
		book.Customers = append(book.Customers, models.Customer{ID: l.newID(), Name: customer})
	}

	p.QuantityInStock -= in.Quantity

	totalSale := p.PVP * in.Quantity
	totalCost := p.Cost * in.Quantity
	book.Sales = append(book.Sales, models.Sale{
		ID:             l.newID(),
		ProductID:      p.ID,
		ProductName:    p.Name,
		Customer:       customer,
		Quantity:       in.Quantity,
		UnitPrice:      p.PVP,
		TotalSale:      totalSale,
		TotalCost:      totalCost,
		Profit:         totalSale - totalCost,
		DeliveryMethod: in.DeliveryMethod,
		ShippingCost:   in.ShippingCost,
		TotalCharged:   totalSale + in.ShippingCost,
		Date:           l.now(),
	})

	fields := []string{models.FieldSales, models.FieldProducts}
	if created {
		fields = append(fields, models.FieldCustomers)
	}
	return book.PatchOf(fields...), nil
}

// DeleteSale removes a sale record and restores the product's stock by the
// recorded quantity. Customer creation is not reversed. A sale whose product
// was deleted in the meantime is rejected as orphaned.
func (l *Ledger) DeleteSale(book *models.Book, saleID string) (models.Patch, error) {
	sIdx := -1
	for i := range book.Sales {
		if book.Sales[i].ID == saleID {
			sIdx = i
			break
		}
	}
	if sIdx < 0 {
		return nil, fmt.Errorf("%w: sale %s", ErrNotFound, saleID)
	}
	sale := book.Sales[sIdx]

	pIdx := l.productIndex(book, sale.ProductID)
	if pIdx < 0 {
		return nil, fmt.Errorf("%w: product %s (%s)", ErrOrphanedReversal, sale.ProductName, sale.ProductID)
	}
	book.Products[pIdx].QuantityInStock += sale.Quantity

	book.Sales = append(book.Sales[:sIdx], book.Sales[sIdx+1:]...)
	return book.PatchOf(models.FieldSales, models.FieldProducts), nil
}

// CustomerInput carries the editable fields of a customer.
type CustomerInput struct {
	Name  string
	Phone string
	Notes string
}

// CreateCustomer adds a customer; names are unique case-insensitively.
func (l *Ledger) CreateCustomer(book *models.Book, in CustomerInput) (models.Patch, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	for _, c := range book.Customers {
		if strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("%w: customer %s", ErrDuplicateName, c.Name)
		}
	}
	book.Customers = append(book.Customers, models.Customer{
		ID:    l.newID(),
		Name:  name,
		Phone: in.Phone,
		Notes: in.Notes,
	})
	return book.PatchOf(models.FieldCustomers), nil
}

// DeleteCustomer removes a customer. Past sales keep the customer's name as a
// plain string snapshot.
func (l *Ledger) DeleteCustomer(book *models.Book, id string) (models.Patch, error) {
	for i := range book.Customers {
		if book.Customers[i].ID == id {
			book.Customers = append(book.Customers[:i], book.Customers[i+1:]...)
			return book.PatchOf(models.FieldCustomers), nil
		}
	}
	return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
}
