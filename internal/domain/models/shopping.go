package models

import "time"

// ShoppingListSource records how a shopping list came to exist.
type ShoppingListSource string

const (
	// ShoppingFromLowStock lists materials whose stock fell below MinStock.
	ShoppingFromLowStock ShoppingListSource = "LOW_STOCK"
	// ShoppingFromProposal was saved explicitly from a sales proposal.
	ShoppingFromProposal ShoppingListSource = "PROPOSAL"
)

// ShoppingItem is one missing-material line of a shopping list.
type ShoppingItem struct {
	RawMaterialID string  `bson:"rawMaterialId" json:"rawMaterialId"`
	Name          string  `bson:"name" json:"name"`
	Unit          string  `bson:"unit" json:"unit"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
}

// ShoppingList is a saved snapshot of missing quantities. Immutable once
// created, except for deletion.
type ShoppingList struct {
	ID     string             `bson:"id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Date   time.Time          `bson:"date" json:"date"`
	Source ShoppingListSource `bson:"source" json:"source"`
	Items  []ShoppingItem     `bson:"items" json:"items"`
}
