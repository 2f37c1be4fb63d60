package model

import "testing"

func TestOrderStatusStockDelta(t *testing.T) {
	cases := []struct {
		status   OrderStatus
		quantity int
		want     int
	}{
		{OrderOrdered, 5, -5},
		{OrderReturned, 5, 5},
		{OrderReceived, 5, 0},
		{OrderOrdered, 0, 0},
	}

	for _, tc := range cases {
		if got := tc.status.StockDelta(tc.quantity); got != tc.want {
			t.Errorf("StockDelta(%s, %d) = %d, want %d", tc.status, tc.quantity, got, tc.want)
		}
	}
}

func TestSKUNeedsReorder(t *testing.T) {
	cases := []struct {
		stock, threshold int
		want             bool
	}{
		{4, 5, true},
		{5, 5, false}, // exactly at threshold is not alerted
		{6, 5, false},
		{-1, 0, true},
	}

	for _, tc := range cases {
		sku := SKU{CurrentStock: tc.stock, ReorderThreshold: tc.threshold}
		if got := sku.NeedsReorder(); got != tc.want {
			t.Errorf("NeedsReorder(stock=%d, threshold=%d) = %v, want %v", tc.stock, tc.threshold, got, tc.want)
		}
	}
}
