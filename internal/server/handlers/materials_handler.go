package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

type materialRequest struct {
	Name                   string      `json:"name"`
	ConsumptionUnit        models.Unit `json:"consumptionUnit"`
	Stock                  float64     `json:"stock"`
	PurchasePrice          float64     `json:"purchasePrice"`
	MinStock               float64     `json:"minStock"`
	Supplier               string      `json:"supplier"`
	PurchaseUnitConversion float64     `json:"purchaseUnitConversion"`
}

func (r materialRequest) input() ledger.MaterialInput {
	return ledger.MaterialInput{
		Name:                   r.Name,
		ConsumptionUnit:        r.ConsumptionUnit,
		Stock:                  r.Stock,
		PurchasePrice:          r.PurchasePrice,
		MinStock:               r.MinStock,
		Supplier:               r.Supplier,
		PurchaseUnitConversion: r.PurchaseUnitConversion,
	}
}

// ListMaterials returns the raw materials collection.
func (h *BookHandler) ListMaterials(c *gin.Context) {
	h.list(c, models.FieldRawMaterials)
}

// CreateMaterial adds a raw material.
func (h *BookHandler) CreateMaterial(c *gin.Context) {
	var req materialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.CreateMaterial(book, req.input())
	})
}

// UpdateMaterial replaces a material's editable fields.
func (h *BookHandler) UpdateMaterial(c *gin.Context) {
	var req materialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.UpdateMaterial(book, id, req.input())
	})
}

// DeleteMaterial removes a material.
func (h *BookHandler) DeleteMaterial(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteMaterial(book, id)
	})
}

type purchaseRequest struct {
	Quantity  float64 `json:"quantity"`
	TotalCost float64 `json:"totalCost"`
	Supplier  string  `json:"supplier"`
}

// PurchaseMaterial records a stock purchase against a material.
func (h *BookHandler) PurchaseMaterial(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.PurchaseInput{
		MaterialID: c.Param("id"),
		Quantity:   req.Quantity,
		TotalCost:  req.TotalCost,
		Supplier:   req.Supplier,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.Purchase(book, in)
	})
}
