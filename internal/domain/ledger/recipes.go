package ledger

import (
	"fmt"
	"strings"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// RecipeInput carries the editable fields of a recipe. PVP zero means
// "derive from cost with the default margin".
type RecipeInput struct {
	Name            string
	Ingredients     []models.Ingredient
	ProductionYield float64
	PVP             float64
	Notes           string
}

func (in RecipeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: recipe name is required", ErrInvalidInput)
	}
	if len(in.Ingredients) == 0 {
		return fmt.Errorf("%w: a recipe needs at least one ingredient", ErrInvalidInput)
	}
	if in.ProductionYield <= 0 {
		return fmt.Errorf("%w: production yield must be positive", ErrInvalidInput)
	}
	if in.PVP < 0 {
		return fmt.Errorf("%w: pvp must not be negative", ErrInvalidInput)
	}
	for _, ing := range in.Ingredients {
		if ing.QuantityPerBatch <= 0 {
			return fmt.Errorf("%w: ingredient quantities must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// unitCost prices one produced unit from current material prices:
// sum over ingredients of quantity*purchasePrice, divided by the yield.
func (l *Ledger) unitCost(book *models.Book, in RecipeInput) (float64, error) {
	total := 0.0
	for _, ing := range in.Ingredients {
		idx := l.materialIndex(book, ing.RawMaterialID)
		if idx < 0 {
			return 0, fmt.Errorf("%w: ingredient material %s", ErrNotFound, ing.RawMaterialID)
		}
		total += ing.QuantityPerBatch * book.RawMaterials[idx].PurchasePrice
	}
	return total / in.ProductionYield, nil
}

func (l *Ledger) buildRecipe(book *models.Book, id string, in RecipeInput) (models.Recipe, error) {
	cost, err := l.unitCost(book, in)
	if err != nil {
		return models.Recipe{}, err
	}

	pvp := in.PVP
	if pvp == 0 {
		pvp = cost * (1 + l.defaultMargin)
	}

	return models.Recipe{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		Ingredients:     append([]models.Ingredient(nil), in.Ingredients...),
		ProductionYield: in.ProductionYield,
		Cost:            cost,
		PVP:             pvp,
		Notes:           in.Notes,
	}, nil
}

// CreateRecipe adds a recipe, deriving its per-unit cost from the current
// material prices.
func (l *Ledger) CreateRecipe(book *models.Book, in RecipeInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	recipe, err := l.buildRecipe(book, l.newID(), in)
	if err != nil {
		return nil, err
	}
	book.Recipes = append(book.Recipes, recipe)
	return book.PatchOf(models.FieldRecipes), nil
}

// UpdateRecipe replaces a recipe, recomputing cost and price.
func (l *Ledger) UpdateRecipe(book *models.Book, id string, in RecipeInput) (models.Patch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	idx := l.recipeIndex(book, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
	}

	recipe, err := l.buildRecipe(book, id, in)
	if err != nil {
		return nil, err
	}
	book.Recipes[idx] = recipe
	return book.PatchOf(models.FieldRecipes), nil
}

// DeleteRecipe removes a recipe. Products already produced from it stay in
// the pantry untouched.
func (l *Ledger) DeleteRecipe(book *models.Book, id string) (models.Patch, error) {
	idx := l.recipeIndex(book, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
	}
	book.Recipes = append(book.Recipes[:idx], book.Recipes[idx+1:]...)
	return book.PatchOf(models.FieldRecipes), nil
}

// ProductionInput describes a production run. ActualQuantity may differ from
// the plan because of real-world loss or gain.
type ProductionInput struct {
	RecipeID        string
	PlannedQuantity float64
	ActualQuantity  float64
}

// Produce consumes ingredient stock for a production run and credits the
// recipe's SINGLE product with the actual yield. Every ingredient is checked
// before anything is decremented: a run with partial stock is rejected whole.
func (l *Ledger) Produce(book *models.Book, in ProductionInput) (models.Patch, error) {
	if in.PlannedQuantity <= 0 {
		return nil, fmt.Errorf("%w: planned quantity must be positive", ErrInvalidInput)
	}
	if in.ActualQuantity < 0 {
		return nil, fmt.Errorf("%w: actual quantity must not be negative", ErrInvalidInput)
	}

	rIdx := l.recipeIndex(book, in.RecipeID)
	if rIdx < 0 {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, in.RecipeID)
	}
	recipe := book.Recipes[rIdx]
	if recipe.ProductionYield <= 0 {
		return nil, fmt.Errorf("%w: recipe %s has no production yield", ErrInvalidInput, recipe.Name)
	}

	factor := in.PlannedQuantity / recipe.ProductionYield

	required := make([]float64, len(recipe.Ingredients))
	indexes := make([]int, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		mIdx := l.materialIndex(book, ing.RawMaterialID)
		if mIdx < 0 {
			return nil, fmt.Errorf("%w: ingredient material %s", ErrNotFound, ing.RawMaterialID)
		}
		need := ing.QuantityPerBatch * factor
		if book.RawMaterials[mIdx].Stock < need {
			return nil, fmt.Errorf("%w: %s needs %.3f %s", ErrInsufficientStock,
				book.RawMaterials[mIdx].Name, need, book.RawMaterials[mIdx].ConsumptionUnit)
		}
		required[i] = need
		indexes[i] = mIdx
	}

	for i, mIdx := range indexes {
		book.RawMaterials[mIdx].Stock -= required[i]
	}

	// Cost and price on the product are snapshots of the recipe's current
	// values, not recomputed from actual consumption.
	credited := false
	for i := range book.Products {
		p := &book.Products[i]
		if p.Type == models.ProductSingle && p.RecipeID == recipe.ID {
			p.QuantityInStock += in.ActualQuantity
			p.Cost = recipe.Cost
			p.PVP = recipe.PVP
			credited = true
			break
		}
	}
	if !credited {
		book.Products = append(book.Products, models.SellableProduct{
			ID:              l.newID(),
			Name:            recipe.Name,
			Type:            models.ProductSingle,
			QuantityInStock: in.ActualQuantity,
			Cost:            recipe.Cost,
			PVP:             recipe.PVP,
			RecipeID:        recipe.ID,
		})
	}

	return book.PatchOf(models.FieldRawMaterials, models.FieldProducts), nil
}
