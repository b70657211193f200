package ledger

import (
	"errors"
	"testing"

	"github.com/obradorhq/obrador/internal/domain/models"
)

func TestSuggestPriceSpreadsFixedCosts(t *testing.T) {
	l := testLedger()
	book := models.NewBook("u1")
	book.FixedCosts = []models.FixedCost{
		{ID: "f1", Name: "Rent", MonthlyAmount: 800},
		{ID: "f2", Name: "Power", MonthlyAmount: 200},
	}

	s, err := l.SuggestPrice(book, PriceQuery{UnitCost: 2, MonthlyUnits: 500, Margin: 0.5})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	// fixed share = 1000/500 = 2; (2+2)*1.5 = 6
	if !almostEqual(s.FixedCostPerUnit, 2) {
		t.Fatalf("expected fixed share 2, got %v", s.FixedCostPerUnit)
	}
	if !almostEqual(s.SuggestedPVP, 6) {
		t.Fatalf("expected pvp 6, got %v", s.SuggestedPVP)
	}
}

func TestSuggestPriceFromRecipeWithDefaultMargin(t *testing.T) {
	l := testLedger()
	book := models.NewBook("u1")
	book.Recipes = []models.Recipe{{ID: "r1", Name: "Bread", Cost: 4}}

	s, err := l.SuggestPrice(book, PriceQuery{RecipeID: "r1", Margin: -1})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !almostEqual(s.SuggestedPVP, 4*1.3) {
		t.Fatalf("expected default margin applied, got %v", s.SuggestedPVP)
	}

	if _, err := l.SuggestPrice(book, PriceQuery{RecipeID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
