package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// testLedger pins the clock and makes IDs sequential so assertions can name
// them.
func testLedger() *Ledger {
	l := New(0.3)
	l.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	seq := 0
	l.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return l
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func bookWithMaterial(m models.RawMaterial) *models.Book {
	book := models.NewBook("u1")
	book.RawMaterials = append(book.RawMaterials, m)
	return book
}

func bookWithProduct(p models.SellableProduct) *models.Book {
	book := models.NewBook("u1")
	book.Products = append(book.Products, p)
	return book
}
