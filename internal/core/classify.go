package core

// StockHealth is the derived three-state classification of stock sufficiency.
type StockHealth string

const (
	StockHealthy StockHealth = "HEALTHY"
	StockLow     StockHealth = "LOW"
	StockOut     StockHealth = "OUT"
)

// ClassifyStock maps a stock level to its health tier. Available equal to
// the reorder level classifies as LOW: the threshold is inclusive on the
// cautious side.
func ClassifyStock(available, reorderLevel int) StockHealth {
	switch {
	case available == 0:
		return StockOut
	case available > reorderLevel:
		return StockHealthy
	default:
		return StockLow
	}
}

// PaymentState is the derived classification of an invoice line.
type PaymentState string

const (
	Paid   PaymentState = "PAID"
	Unpaid PaymentState = "UNPAID"
)

// ClassifyInvoiceLine maps the raw paid flag to a payment state. Shipment
// and order statuses have no classifier; they pass through verbatim.
func ClassifyInvoiceLine(paid bool) PaymentState {
	if paid {
		return Paid
	}
	return Unpaid
}
