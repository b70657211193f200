package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

// ListShoppingLists returns the saved shopping lists.
func (h *BookHandler) ListShoppingLists(c *gin.Context) {
	h.list(c, models.FieldShoppingLists)
}

type generateListRequest struct {
	Name string `json:"name"`
}

// GenerateShoppingList snapshots every material below its minimum stock.
func (h *BookHandler) GenerateShoppingList(c *gin.Context) {
	var req generateListRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.GenerateShoppingList(book, req.Name)
	})
}

type shoppingListRequest struct {
	Name  string                `json:"name"`
	Items []models.ShoppingItem `json:"items"`
}

// SaveShoppingList stores an explicit list, e.g. from a sales proposal.
func (h *BookHandler) SaveShoppingList(c *gin.Context) {
	var req shoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.ShoppingListInput{Name: req.Name, Items: req.Items}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.SaveShoppingList(book, in)
	})
}

// DeleteShoppingList removes a saved list.
func (h *BookHandler) DeleteShoppingList(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteShoppingList(book, id)
	})
}
