package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

// ListWaste returns the waste ledger.
func (h *BookHandler) ListWaste(c *gin.Context) {
	h.list(c, models.FieldWasteRecords)
}

type wasteRequest struct {
	ItemID   string               `json:"itemId"`
	ItemType models.WasteItemType `json:"itemType"`
	Quantity float64              `json:"quantity"`
	Reason   string               `json:"reason"`
}

// CreateWaste records discarded stock.
func (h *BookHandler) CreateWaste(c *gin.Context) {
	var req wasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.WasteInput{
		ItemID:   req.ItemID,
		ItemType: req.ItemType,
		Quantity: req.Quantity,
		Reason:   req.Reason,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.RecordWaste(book, in)
	})
}

// DeleteWaste reverses a waste record, re-crediting the item's stock.
func (h *BookHandler) DeleteWaste(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteWaste(book, id)
	})
}
