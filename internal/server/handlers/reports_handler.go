package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
)

// Summary returns the sales/waste/low-stock report for the user's book.
func (h *BookHandler) Summary(c *gin.Context) {
	summary, err := h.reporting.Summary(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SuggestedPrice derives a selling price from a unit cost or a recipe,
// spreading the book's fixed costs over an estimated monthly volume.
// Query parameters: cost | recipeId, monthlyUnits, margin.
func (h *BookHandler) SuggestedPrice(c *gin.Context) {
	q := ledger.PriceQuery{
		RecipeID: c.Query("recipeId"),
		Margin:   -1, // default margin unless overridden
	}

	var err error
	if raw := c.Query("cost"); raw != "" {
		if q.UnitCost, err = strconv.ParseFloat(raw, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cost must be a number"})
			return
		}
	}
	if raw := c.Query("monthlyUnits"); raw != "" {
		if q.MonthlyUnits, err = strconv.ParseFloat(raw, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "monthlyUnits must be a number"})
			return
		}
	}
	if raw := c.Query("margin"); raw != "" {
		if q.Margin, err = strconv.ParseFloat(raw, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "margin must be a number"})
			return
		}
	}

	book, err := h.books.Book(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	suggestion, err := h.ledger.SuggestPrice(book, q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
