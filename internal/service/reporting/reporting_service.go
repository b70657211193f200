package reporting

import (
	"context"

	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/domain/models"
	"github.com/obradorhq/obrador/internal/service/books"
)

// Summary aggregates the sales and waste ledgers of one book.
type Summary struct {
	SalesCount    int        `json:"salesCount"`
	TotalRevenue  float64    `json:"totalRevenue"`
	TotalCost     float64    `json:"totalCost"`
	TotalProfit   float64    `json:"totalProfit"`
	TotalShipping float64    `json:"totalShipping"`
	TotalCharged  float64    `json:"totalCharged"`
	WasteValue    float64    `json:"wasteValue"`
	LowStock      []LowStock `json:"lowStock"`
}

// LowStock is one material currently below its minimum.
type LowStock struct {
	RawMaterialID string  `json:"rawMaterialId"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Stock         float64 `json:"stock"`
	MinStock      float64 `json:"minStock"`
	Missing       float64 `json:"missing"`
}

// Service derives read-only summaries from aggregate snapshots.
type Service struct {
	books  *books.Service
	logger *zap.Logger
}

// NewService constructs a reporting service.
func NewService(booksSvc *books.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{books: booksSvc, logger: logger}
}

// Summary computes the totals for one user's book.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	book, err := s.books.Book(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(book), nil
}

// Summarize folds a snapshot into its report.
func Summarize(book *models.Book) Summary {
	out := Summary{
		SalesCount: len(book.Sales),
		LowStock:   lowStock(book),
	}
	for _, sale := range book.Sales {
		out.TotalRevenue += sale.TotalSale
		out.TotalCost += sale.TotalCost
		out.TotalProfit += sale.Profit
		out.TotalShipping += sale.ShippingCost
		out.TotalCharged += sale.TotalCharged
	}
	for _, w := range book.WasteRecords {
		out.WasteValue += wasteValue(book, w)
	}
	return out
}

// wasteValue prices a waste record at the referenced item's current unit
// cost. Records whose item was deleted contribute nothing: there is no cost
// basis left to price them with.
func wasteValue(book *models.Book, w models.WasteRecord) float64 {
	switch w.ItemType {
	case models.WasteRawMaterial:
		for _, m := range book.RawMaterials {
			if m.ID == w.ItemID {
				return w.Quantity * m.PurchasePrice
			}
		}
	case models.WasteProduct:
		for _, p := range book.Products {
			if p.ID == w.ItemID {
				return w.Quantity * p.Cost
			}
		}
	}
	return 0
}

func lowStock(book *models.Book) []LowStock {
	out := []LowStock{}
	for _, m := range book.RawMaterials {
		if m.Stock < m.MinStock {
			out = append(out, LowStock{
				RawMaterialID: m.ID,
				Name:          m.Name,
				Unit:          string(m.ConsumptionUnit),
				Stock:         m.Stock,
				MinStock:      m.MinStock,
				Missing:       m.MinStock - m.Stock,
			})
		}
	}
	return out
}

// LowStockRows renders a book's deficient materials as spreadsheet rows for
// the scheduled export: user, material, unit, stock, minimum, missing.
func LowStockRows(book *models.Book) [][]interface{} {
	var rows [][]interface{}
	for _, ls := range lowStock(book) {
		rows = append(rows, []interface{}{
			book.UserID, ls.Name, ls.Unit, ls.Stock, ls.MinStock, ls.Missing,
		})
	}
	return rows
}
