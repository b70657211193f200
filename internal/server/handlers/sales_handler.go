package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

// ListSales returns the sales ledger.
func (h *BookHandler) ListSales(c *gin.Context) {
	h.list(c, models.FieldSales)
}

type saleRequest struct {
	ProductID      string  `json:"productId"`
	Quantity       float64 `json:"quantity"`
	Customer       string  `json:"customer"`
	DeliveryMethod string  `json:"deliveryMethod"`
	ShippingCost   float64 `json:"shippingCost"`
}

// CreateSale records a sale.
func (h *BookHandler) CreateSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.SaleInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Customer:       req.Customer,
		DeliveryMethod: req.DeliveryMethod,
		ShippingCost:   req.ShippingCost,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.RecordSale(book, in)
	})
}

// DeleteSale reverses a sale, restoring the product's stock.
func (h *BookHandler) DeleteSale(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteSale(book, id)
	})
}

// ListCustomers returns the customers collection.
func (h *BookHandler) ListCustomers(c *gin.Context) {
	h.list(c, models.FieldCustomers)
}

type customerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// CreateCustomer adds a customer.
func (h *BookHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.CustomerInput{Name: req.Name, Phone: req.Phone, Notes: req.Notes}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.CreateCustomer(book, in)
	})
}

// DeleteCustomer removes a customer.
func (h *BookHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteCustomer(book, id)
	})
}
