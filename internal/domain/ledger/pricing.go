package ledger

import (
	"fmt"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// PriceQuery asks for a suggested selling price. Exactly one of UnitCost or
// RecipeID must be set; MonthlyUnits spreads the book's fixed costs over an
// estimated production volume (zero skips the fixed-cost share). A negative
// Margin means "use the configured default".
type PriceQuery struct {
	UnitCost     float64
	RecipeID     string
	MonthlyUnits float64
	Margin       float64
}

// PriceSuggestion is the breakdown behind a suggested price.
type PriceSuggestion struct {
	UnitCost         float64 `json:"unitCost"`
	FixedCostPerUnit float64 `json:"fixedCostPerUnit"`
	Margin           float64 `json:"margin"`
	SuggestedPVP     float64 `json:"suggestedPvp"`
}

// SuggestPrice derives a selling price from a unit cost, the book's monthly
// fixed costs and a margin: (unitCost + fixedShare) * (1 + margin).
func (l *Ledger) SuggestPrice(book *models.Book, q PriceQuery) (PriceSuggestion, error) {
	cost := q.UnitCost
	if q.RecipeID != "" {
		idx := l.recipeIndex(book, q.RecipeID)
		if idx < 0 {
			return PriceSuggestion{}, fmt.Errorf("%w: recipe %s", ErrNotFound, q.RecipeID)
		}
		cost = book.Recipes[idx].Cost
	}
	if cost < 0 {
		return PriceSuggestion{}, fmt.Errorf("%w: unit cost must not be negative", ErrInvalidInput)
	}

	fixedShare := 0.0
	if q.MonthlyUnits > 0 {
		total := 0.0
		for _, fc := range book.FixedCosts {
			total += fc.MonthlyAmount
		}
		fixedShare = total / q.MonthlyUnits
	}

	margin := q.Margin
	if margin < 0 {
		margin = l.defaultMargin
	}

	return PriceSuggestion{
		UnitCost:         cost,
		FixedCostPerUnit: fixedShare,
		Margin:           margin,
		SuggestedPVP:     (cost + fixedShare) * (1 + margin),
	}, nil
}
