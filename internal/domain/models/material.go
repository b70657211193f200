package models

import "time"

// Unit is the unit in which a raw material's stock and usage are tracked,
// independent of how the material was purchased.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitLitre    Unit = "l"
	UnitPiece    Unit = "und"
)

// Valid reports whether the unit is one of the supported consumption units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitLitre, UnitPiece:
		return true
	}
	return false
}

// RawMaterial is an ingredient tracked in consumption units. PurchasePrice is
// the running weighted-average cost per consumption unit.
type RawMaterial struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	ConsumptionUnit Unit    `bson:"consumptionUnit" json:"consumptionUnit"`
	Stock           float64 `bson:"stock" json:"stock"`
	PurchasePrice   float64 `bson:"purchasePrice" json:"purchasePrice"`
	MinStock        float64 `bson:"minStock" json:"minStock"`
	Supplier        string  `bson:"supplier" json:"supplier"`
	// PurchaseUnitConversion is the number of consumption units per purchase
	// unit, for materials bought in one unit and consumed in another. Zero
	// means the material is purchased directly in consumption units.
	PurchaseUnitConversion float64         `bson:"purchaseUnitConversion,omitempty" json:"purchaseUnitConversion,omitempty"`
	PurchaseHistory        []PurchaseEntry `bson:"purchaseHistory" json:"purchaseHistory"`
}

// PurchaseEntry is one line of the append-only purchase log. Quantity and
// PricePerUnit are recorded in the units the purchase was entered in.
type PurchaseEntry struct {
	Date         time.Time `bson:"date" json:"date"`
	Quantity     float64   `bson:"quantity" json:"quantity"`
	PricePerUnit float64   `bson:"pricePerUnit" json:"pricePerUnit"`
	Supplier     string    `bson:"supplier" json:"supplier"`
}

// FixedCost is a recurring monthly cost (rent, power, insurance) spread over
// production when deriving suggested prices.
type FixedCost struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	MonthlyAmount float64 `bson:"monthlyAmount" json:"monthlyAmount"`
}

// Customer is a named buyer, upserted on sale by case-insensitive name.
type Customer struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}
