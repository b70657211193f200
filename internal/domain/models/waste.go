package models

import "time"

// WasteItemType tells which collection a waste record points into.
type WasteItemType string

const (
	WasteRawMaterial WasteItemType = "RAW_MATERIAL"
	WasteProduct     WasteItemType = "PRODUCT"
)

// WasteRecord is an immutable log entry for discarded stock. Deleting the
// record is an explicit compensating action that re-credits the referenced
// item's stock by Quantity.
type WasteRecord struct {
	ID       string        `bson:"id" json:"id"`
	ItemID   string        `bson:"itemId" json:"itemId"`
	ItemName string        `bson:"itemName" json:"itemName"`
	ItemType WasteItemType `bson:"itemType" json:"itemType"`
	Quantity float64       `bson:"quantity" json:"quantity"`
	Unit     string        `bson:"unit" json:"unit"`
	Date     time.Time     `bson:"date" json:"date"`
	Reason   string        `bson:"reason,omitempty" json:"reason,omitempty"`
}
