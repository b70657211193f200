package models

// Top-level field names of the book document. Reducer patches are keyed by
// these, and the mongo repository turns them into $set paths, so they must
// match the bson tags on Book.
const (
	FieldRawMaterials  = "rawMaterials"
	FieldFixedCosts    = "fixedCosts"
	FieldRecipes       = "recipes"
	FieldSales         = "sales"
	FieldProducts      = "products"
	FieldCustomers     = "customers"
	FieldSuppliers     = "suppliers"
	FieldWasteRecords  = "wasteRecords"
	FieldShoppingLists = "shoppingLists"
)

// Patch is the set of changed top-level collections produced by a reducer
// operation, keyed by Field* names.
type Patch map[string]any

// Book is the per-user aggregate document: the whole of one business's data.
// It is the unit of read and write against the document store.
type Book struct {
	UserID        string            `bson:"_id" json:"userId"`
	RawMaterials  []RawMaterial     `bson:"rawMaterials" json:"rawMaterials"`
	FixedCosts    []FixedCost       `bson:"fixedCosts" json:"fixedCosts"`
	Recipes       []Recipe          `bson:"recipes" json:"recipes"`
	Sales         []Sale            `bson:"sales" json:"sales"`
	Products      []SellableProduct `bson:"products" json:"products"`
	Customers     []Customer        `bson:"customers" json:"customers"`
	Suppliers     []string          `bson:"suppliers" json:"suppliers"`
	WasteRecords  []WasteRecord     `bson:"wasteRecords" json:"wasteRecords"`
	ShoppingLists []ShoppingList    `bson:"shoppingLists" json:"shoppingLists"`
}

// NewBook returns an empty aggregate for a first login.
func NewBook(userID string) *Book {
	return &Book{
		UserID:        userID,
		RawMaterials:  []RawMaterial{},
		FixedCosts:    []FixedCost{},
		Recipes:       []Recipe{},
		Sales:         []Sale{},
		Products:      []SellableProduct{},
		Customers:     []Customer{},
		Suppliers:     []string{},
		WasteRecords:  []WasteRecord{},
		ShoppingLists: []ShoppingList{},
	}
}

// Clone returns a deep copy of the book. Reducer operations mutate a clone so
// a rejected remote write never leaks into the cached snapshot.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}

	out := &Book{
		UserID:        b.UserID,
		RawMaterials:  make([]RawMaterial, len(b.RawMaterials)),
		FixedCosts:    append([]FixedCost(nil), b.FixedCosts...),
		Recipes:       make([]Recipe, len(b.Recipes)),
		Sales:         append([]Sale(nil), b.Sales...),
		Products:      append([]SellableProduct(nil), b.Products...),
		Customers:     append([]Customer(nil), b.Customers...),
		Suppliers:     append([]string(nil), b.Suppliers...),
		WasteRecords:  append([]WasteRecord(nil), b.WasteRecords...),
		ShoppingLists: make([]ShoppingList, len(b.ShoppingLists)),
	}

	for i, m := range b.RawMaterials {
		m.PurchaseHistory = append([]PurchaseEntry(nil), m.PurchaseHistory...)
		out.RawMaterials[i] = m
	}
	for i, r := range b.Recipes {
		r.Ingredients = append([]Ingredient(nil), r.Ingredients...)
		out.Recipes[i] = r
	}
	for i, l := range b.ShoppingLists {
		l.Items = append([]ShoppingItem(nil), l.Items...)
		out.ShoppingLists[i] = l
	}

	return out
}

// Collection returns the current value of a top-level collection by field
// name, for building patches without per-field switch statements at call
// sites.
func (b *Book) Collection(field string) any {
	switch field {
	case FieldRawMaterials:
		return b.RawMaterials
	case FieldFixedCosts:
		return b.FixedCosts
	case FieldRecipes:
		return b.Recipes
	case FieldSales:
		return b.Sales
	case FieldProducts:
		return b.Products
	case FieldCustomers:
		return b.Customers
	case FieldSuppliers:
		return b.Suppliers
	case FieldWasteRecords:
		return b.WasteRecords
	case FieldShoppingLists:
		return b.ShoppingLists
	default:
		return nil
	}
}

// PatchOf builds a Patch holding the current values of the named collections.
func (b *Book) PatchOf(fields ...string) Patch {
	patch := make(Patch, len(fields))
	for _, f := range fields {
		patch[f] = b.Collection(f)
	}
	return patch
}
