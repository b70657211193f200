package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

// ListFixedCosts returns the fixed costs collection.
func (h *BookHandler) ListFixedCosts(c *gin.Context) {
	h.list(c, models.FieldFixedCosts)
}

type fixedCostRequest struct {
	Name          string  `json:"name"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}

// CreateFixedCost adds a fixed cost.
func (h *BookHandler) CreateFixedCost(c *gin.Context) {
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.FixedCostInput{Name: req.Name, MonthlyAmount: req.MonthlyAmount}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.CreateFixedCost(book, in)
	})
}

// UpdateFixedCost replaces a fixed cost's fields.
func (h *BookHandler) UpdateFixedCost(c *gin.Context) {
	var req fixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id := c.Param("id")
	in := ledger.FixedCostInput{Name: req.Name, MonthlyAmount: req.MonthlyAmount}
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.UpdateFixedCost(book, id, in)
	})
}

// DeleteFixedCost removes a fixed cost.
func (h *BookHandler) DeleteFixedCost(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteFixedCost(book, id)
	})
}
