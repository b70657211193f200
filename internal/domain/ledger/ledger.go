// Package ledger implements the domain state reducer: every operation takes
// the current aggregate snapshot, validates its input against it, mutates the
// snapshot and returns the set of changed top-level collections as a patch.
// Operations are all-or-nothing; on error the snapshot is left untouched.
package ledger

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// Ledger executes domain operations. The clock and ID generator are injected
// so tests can pin them.
type Ledger struct {
	defaultMargin float64
	now           func() time.Time
	newID         func() string
}

// New constructs a ledger. defaultMargin is applied when a recipe is saved
// without an explicit selling price.
func New(defaultMargin float64) *Ledger {
	return &Ledger{
		defaultMargin: defaultMargin,
		now:           time.Now,
		newID:         func() string { return primitive.NewObjectID().Hex() },
	}
}

func (l *Ledger) materialIndex(book *models.Book, id string) int {
	for i := range book.RawMaterials {
		if book.RawMaterials[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) productIndex(book *models.Book, id string) int {
	for i := range book.Products {
		if book.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) recipeIndex(book *models.Book, id string) int {
	for i := range book.Recipes {
		if book.Recipes[i].ID == id {
			return i
		}
	}
	return -1
}

// registerSupplier adds a supplier name to the book's supplier set unless an
// existing entry matches case-insensitively. The set stays sorted. Returns
// true when the set changed.
func (l *Ledger) registerSupplier(book *models.Book, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, s := range book.Suppliers {
		if strings.EqualFold(s, name) {
			return false
		}
	}
	book.Suppliers = append(book.Suppliers, name)
	sort.Slice(book.Suppliers, func(i, j int) bool {
		return strings.ToLower(book.Suppliers[i]) < strings.ToLower(book.Suppliers[j])
	})
	return true
}
