package models

// ProductType tells where a sellable product came from.
type ProductType string

const (
	// ProductSingle is produced directly from a recipe.
	ProductSingle ProductType = "SINGLE"
	// ProductPackage bundles a fixed count of a source product.
	ProductPackage ProductType = "PACKAGE"
	// ProductTransformed is derived from a source product with a new yield.
	ProductTransformed ProductType = "TRANSFORMED"
)

// SellableProduct is a finished good in the pantry. Cost and PVP are per unit.
// Exactly one provenance link is set depending on Type: RecipeID for SINGLE,
// SourceProductID (+PackSize or +Note) for PACKAGE and TRANSFORMED.
type SellableProduct struct {
	ID              string      `bson:"id" json:"id"`
	Name            string      `bson:"name" json:"name"`
	Type            ProductType `bson:"type" json:"type"`
	QuantityInStock float64     `bson:"quantityInStock" json:"quantityInStock"`
	Cost            float64     `bson:"cost" json:"cost"`
	PVP             float64     `bson:"pvp" json:"pvp"`
	RecipeID        string      `bson:"recipeId,omitempty" json:"recipeId,omitempty"`
	SourceProductID string      `bson:"sourceProductId,omitempty" json:"sourceProductId,omitempty"`
	PackSize        float64     `bson:"packSize,omitempty" json:"packSize,omitempty"`
	Note            string      `bson:"note,omitempty" json:"note,omitempty"`
}
