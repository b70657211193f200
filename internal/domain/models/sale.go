package models

import "time"

// Sale is an immutable ledger entry. Prices and costs are snapshots taken at
// the time of sale; deleting a sale restores the product's stock.
type Sale struct {
	ID             string    `bson:"id" json:"id"`
	ProductID      string    `bson:"productId" json:"productId"`
	ProductName    string    `bson:"productName" json:"productName"`
	Customer       string    `bson:"customer" json:"customer"`
	Quantity       float64   `bson:"quantity" json:"quantity"`
	UnitPrice      float64   `bson:"unitPrice" json:"unitPrice"`
	TotalSale      float64   `bson:"totalSale" json:"totalSale"`
	TotalCost      float64   `bson:"totalCost" json:"totalCost"`
	Profit         float64   `bson:"profit" json:"profit"`
	DeliveryMethod string    `bson:"deliveryMethod,omitempty" json:"deliveryMethod,omitempty"`
	ShippingCost   float64   `bson:"shippingCost" json:"shippingCost"`
	TotalCharged   float64   `bson:"totalCharged" json:"totalCharged"`
	Date           time.Time `bson:"date" json:"date"`
}
