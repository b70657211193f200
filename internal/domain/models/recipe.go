package models

// Ingredient is one recipe line: a raw material and the quantity of it
// consumed by a full batch, in the material's consumption unit.
type Ingredient struct {
	RawMaterialID    string  `bson:"rawMaterialId" json:"rawMaterialId"`
	QuantityPerBatch float64 `bson:"quantityPerBatch" json:"quantityPerBatch"`
}

// Recipe describes how a batch of a product is made. Cost and PVP are per
// produced unit; Cost is derived from current material prices on save.
type Recipe struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Ingredients     []Ingredient `bson:"ingredients" json:"ingredients"`
	ProductionYield float64      `bson:"productionYield" json:"productionYield"`
	Cost            float64      `bson:"cost" json:"cost"`
	PVP             float64      `bson:"pvp" json:"pvp"`
	Notes           string       `bson:"notes,omitempty" json:"notes,omitempty"`
}
