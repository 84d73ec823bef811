package models

import "testing"

func TestAvailableQuantityClampsAtZero(t *testing.T) {
	inv := &Inventory{StockQuantity: 3, ReservedQuantity: 5}
	if got := inv.AvailableQuantity(); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}
}

func TestAvailableQuantity(t *testing.T) {
	inv := &Inventory{StockQuantity: 10, ReservedQuantity: 4}
	if got := inv.AvailableQuantity(); got != 6 {
		t.Fatalf("available = %d, want 6", got)
	}
}

func TestIsLowStockInclusiveAtThreshold(t *testing.T) {
	inv := &Inventory{StockQuantity: 5, Threshold: 5}
	if !inv.IsLowStock() {
		t.Fatal("stock equal to threshold should count as low")
	}

	inv.StockQuantity = 6
	if inv.IsLowStock() {
		t.Fatal("stock above threshold should not count as low")
	}
}
