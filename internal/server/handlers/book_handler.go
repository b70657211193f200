package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/domain/models"
	"github.com/obradorhq/obrador/internal/service/books"
	"github.com/obradorhq/obrador/internal/service/reporting"
)

// BookHandler serves the domain operations over the per-user aggregate.
type BookHandler struct {
	books     *books.Service
	ledger    *ledger.Ledger
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewBookHandler constructs the handler over the aggregate service.
func NewBookHandler(booksSvc *books.Service, led *ledger.Ledger, rep *reporting.Service, logger *zap.Logger) *BookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookHandler{books: booksSvc, ledger: led, reporting: rep, logger: logger}
}

// GetBook returns the user's whole aggregate, bootstrapping it on first login.
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.books.Book(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// apply runs one reducer operation for the current user and writes the
// updated aggregate back to the client with the given status.
func (h *BookHandler) apply(c *gin.Context, status int, op books.Op) {
	book, err := h.books.Apply(c.Request.Context(), currentUser(c), op)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, book)
}

// list responds with a single top-level collection of the aggregate.
func (h *BookHandler) list(c *gin.Context, field string) {
	book, err := h.books.Book(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, book.Collection(field))
}

// ListSuppliers returns the sorted supplier name set.
func (h *BookHandler) ListSuppliers(c *gin.Context) {
	h.list(c, models.FieldSuppliers)
}
