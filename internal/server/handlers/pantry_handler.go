package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
)

// ListProducts returns the pantry: all sellable products.
func (h *BookHandler) ListProducts(c *gin.Context) {
	h.list(c, models.FieldProducts)
}

// DeleteProduct removes a product from the pantry.
func (h *BookHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	h.apply(c, http.StatusOK, func(book *models.Book) (models.Patch, error) {
		return h.ledger.DeleteProduct(book, id)
	})
}

type packageRequest struct {
	PackSize  float64 `json:"packSize"`
	PackCount float64 `json:"packCount"`
	Name      string  `json:"name"`
	PVP       float64 `json:"pvp"`
}

// PackageProduct bundles a source product into packs.
func (h *BookHandler) PackageProduct(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.PackageInput{
		SourceProductID: c.Param("id"),
		PackSize:        req.PackSize,
		PackCount:       req.PackCount,
		Name:            req.Name,
		PVP:             req.PVP,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.PackageProduct(book, in)
	})
}

type transformRequest struct {
	Quantity float64 `json:"quantity"`
	Name     string  `json:"name"`
	Yield    float64 `json:"yield"`
	PVP      float64 `json:"pvp"`
	Note     string  `json:"note"`
}

// TransformProduct turns consumed source stock into a new product.
func (h *BookHandler) TransformProduct(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in := ledger.TransformInput{
		SourceProductID: c.Param("id"),
		Quantity:        req.Quantity,
		Name:            req.Name,
		Yield:           req.Yield,
		PVP:             req.PVP,
		Note:            req.Note,
	}
	h.apply(c, http.StatusCreated, func(book *models.Book) (models.Patch, error) {
		return h.ledger.TransformProduct(book, in)
	})
}
