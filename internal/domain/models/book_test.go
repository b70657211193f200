package models

import "testing"

func TestCloneIsDeep(t *testing.T) {
	book := NewBook("u1")
	book.RawMaterials = []RawMaterial{{
		ID: "m1", Name: "Flour", ConsumptionUnit: UnitKilogram, Stock: 10,
		PurchaseHistory: []PurchaseEntry{{Quantity: 10, PricePerUnit: 5}},
	}}
	book.Recipes = []Recipe{{
		ID: "r1", Name: "Bread",
		Ingredients: []Ingredient{{RawMaterialID: "m1", QuantityPerBatch: 2}},
	}}
	book.ShoppingLists = []ShoppingList{{
		ID: "l1", Items: []ShoppingItem{{RawMaterialID: "m1", Quantity: 3}},
	}}

	clone := book.Clone()
	clone.RawMaterials[0].Stock = 0
	clone.RawMaterials[0].PurchaseHistory[0].Quantity = 99
	clone.Recipes[0].Ingredients[0].QuantityPerBatch = 99
	clone.ShoppingLists[0].Items[0].Quantity = 99
	clone.Suppliers = append(clone.Suppliers, "X")

	if book.RawMaterials[0].Stock != 10 {
		t.Error("clone shares material state")
	}
	if book.RawMaterials[0].PurchaseHistory[0].Quantity != 10 {
		t.Error("clone shares purchase history")
	}
	if book.Recipes[0].Ingredients[0].QuantityPerBatch != 2 {
		t.Error("clone shares recipe ingredients")
	}
	if book.ShoppingLists[0].Items[0].Quantity != 3 {
		t.Error("clone shares shopping items")
	}
	if len(book.Suppliers) != 0 {
		t.Error("clone shares supplier slice")
	}
}

func TestPatchOf(t *testing.T) {
	book := NewBook("u1")
	book.Suppliers = []string{"Molinos SA"}

	patch := book.PatchOf(FieldSuppliers, FieldRawMaterials)
	if len(patch) != 2 {
		t.Fatalf("expected two fields, got %v", patch)
	}
	suppliers, ok := patch[FieldSuppliers].([]string)
	if !ok || len(suppliers) != 1 {
		t.Fatalf("unexpected suppliers value %v", patch[FieldSuppliers])
	}
}
