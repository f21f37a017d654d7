package core_test

import (
	"testing"

	"chainex-assistant/internal/core"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		available int
		reorder   int
		want      core.StockHealth
	}{
		{"above reorder level", 15, 10, core.StockHealthy},
		{"below reorder level", 5, 10, core.StockLow},
		{"at reorder level is LOW", 10, 10, core.StockLow},
		{"zero stock", 0, 10, core.StockOut},
		{"zero stock with zero reorder", 0, 0, core.StockOut},
		{"one unit above zero reorder", 1, 0, core.StockHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.ClassifyStock(tt.available, tt.reorder); got != tt.want {
				t.Errorf("ClassifyStock(%d, %d) = %s, want %s", tt.available, tt.reorder, got, tt.want)
			}
		})
	}
}

func TestClassifyInvoiceLine(t *testing.T) {
	if got := core.ClassifyInvoiceLine(true); got != core.Paid {
		t.Errorf("ClassifyInvoiceLine(true) = %s, want PAID", got)
	}
	if got := core.ClassifyInvoiceLine(false); got != core.Unpaid {
		t.Errorf("ClassifyInvoiceLine(false) = %s, want UNPAID", got)
	}
}
