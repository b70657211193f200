package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

type recipeRequest struct {
	Name            string              `json:"name"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	ProductionYield float64             `json:"productionYield"`
	PVP             float64             `json:"pvp"`
	Notes           string              `json:"notes"`
}

func (r recipeRequest) input() ledger.RecipeInput {
	return ledger.RecipeInput{
		Name:            r.Name,
		Ingredients:     r.Ingredients,
		ProductionYield: r.ProductionYield,
		PVP:             r.PVP,
		Notes:           r.Notes,
	}
}

// ListRecipes returns the recipes collection.
func (h *BookHandler) ListRecipes(c *gin.Context) {
	h.list(c, models.FieldRecipes)
}

// CreateRecipe adds a recipe, deriving its unit cost from current material
// prices.
func (h *BookHandler) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.CreateRecipe(book, req.input())
	})
}

// UpdateRecipe replaces a recipe, recomputing its cost and price.
func (h *BookHandler) UpdateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.UpdateRecipe(book, id, req.input())
	})
}

// DeleteRecipe removes a recipe.
func (h *BookHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteRecipe(book, id)
	})
}

type productionRequest struct {
	PlannedQuantity float64 `json:"plannedQuantity"`
	ActualQuantity  float64 `json:"actualQuantity"`
}

// Produce runs a production batch for a recipe.
func (h *BookHandler) Produce(c *gin.Context) {
	var req productionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.ProductionInput{
		RecipeID:        c.Param("id"),
		PlannedQuantity: req.PlannedQuantity,
		ActualQuantity:  req.ActualQuantity,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.Produce(book, in)
	})
}
