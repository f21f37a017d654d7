package app

import (
	"fmt"
	"strings"

	"chainex-assistant/internal/core"
)

// Status glyphs prefixed to rendered lines. The sink renders them verbatim.
const (
	glyphHealthy = "🟢"
	glyphLow     = "🔴"
	glyphOut     = "⚫"
	glyphPaid    = "✅"
	glyphMissing = "❌"
	glyphOrder   = "📋"
	glyphTruck   = "🚚"
	glyphParcel  = "📦"
	glyphInvoice = "🧾"
	glyphPage    = "📄"
	glyphClient  = "🏢"
	glyphDepot   = "🏭"
)

// maxOrderItemLines caps how many order line items are listed before the
// remainder folds into an "and N more items" suffix. The cap applies to
// order items only.
const maxOrderItemLines = 3

func healthGlyph(h core.StockHealth) string {
	switch h {
	case core.StockHealthy:
		return glyphHealthy
	case core.StockLow:
		return glyphLow
	default:
		return glyphOut
	}
}

// renderStock formats the matched items' stock rows as a single message,
// one line per stock row, items with no rows rendered as a no-information
// line.
func renderStock(results []core.ItemStock) string {
	var parts []string
	for _, res := range results {
		if len(res.Rows) == 0 {
			parts = append(parts, fmt.Sprintf("%s **%s**: No stock information available", glyphMissing, res.Item.Name))
			continue
		}
		for _, row := range res.Rows {
			parts = append(parts, fmt.Sprintf("%s **%s** in %s: %d units (Reorder Level: %d)",
				healthGlyph(row.Health), res.Item.Name, row.WarehouseName, row.Available, row.ReorderLevel))
		}
	}
	return strings.Join(parts, "\n")
}

// orDefault substitutes a fallback label for absent optional fields.
func orDefault(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

// renderOrder formats the order summary block: header, status/date/client/
// total lines, then up to maxOrderItemLines line items with an overflow
// suffix.
func renderOrder(details *core.OrderDetails) string {
	o := details.Order

	total := "Unknown"
	if o.Total != nil {
		total = o.Total.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Order %s**\n", glyphOrder, o.Ref())
	fmt.Fprintf(&b, "Status: %s\n", o.Status)
	fmt.Fprintf(&b, "Date: %s\n", orDefault(o.Date, "Unknown"))
	fmt.Fprintf(&b, "Client: %s\n", orDefault(o.ClientName, "Unknown"))
	fmt.Fprintf(&b, "Total: $%s\n", total)

	if len(details.Items) > 0 {
		shown := details.Items
		if len(shown) > maxOrderItemLines {
			shown = shown[:maxOrderItemLines]
		}
		lines := make([]string, len(shown))
		for i, it := range shown {
			lines[i] = fmt.Sprintf("• %s (Qty: %d)", it.ItemName, it.Quantity)
		}
		fmt.Fprintf(&b, "Items: %s", strings.Join(lines, ", "))
		if rest := len(details.Items) - maxOrderItemLines; rest > 0 {
			fmt.Fprintf(&b, " (and %d more items)", rest)
		}
	}
	return b.String()
}

// renderShipment formats the shipment legs, or one of the two degenerate
// messages: no shipment record at all vs a record with no leg details.
func renderShipment(ref string, shipment *core.Shipment) string {
	if shipment == nil {
		return fmt.Sprintf("%s No shipment information found for order %s.", glyphMissing, ref)
	}
	if len(shipment.Legs) == 0 {
		return fmt.Sprintf("%s Order %s has shipment record but no shipment details available.", glyphParcel, ref)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Shipment Information for Order %s**\n", glyphTruck, ref)
	for _, leg := range shipment.Legs {
		fmt.Fprintf(&b, "Courier: %s\n", leg.Courier)
		fmt.Fprintf(&b, "Tracking ID: %s\n", orDefault(leg.TrackingID, "Not assigned"))
		fmt.Fprintf(&b, "Status: %s\n", leg.Status)
	}
	return b.String()
}

// renderInvoice formats the invoice lines analogously to renderShipment.
func renderInvoice(ref string, invoice *core.Invoice) string {
	if invoice == nil {
		return fmt.Sprintf("%s No invoice information found for order %s.", glyphMissing, ref)
	}
	if len(invoice.Lines) == 0 {
		return fmt.Sprintf("%s Order %s has invoice record but no invoice details available.", glyphPage, ref)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Invoice Information for Order %s**\n", glyphInvoice, ref)
	for _, line := range invoice.Lines {
		paid := glyphMissing + " Unpaid"
		if core.ClassifyInvoiceLine(line.Paid) == core.Paid {
			paid = glyphPaid + " Paid"
		}
		fmt.Fprintf(&b, "Invoice ID: %s\n", line.InvoiceID)
		fmt.Fprintf(&b, "Type: %s\n", line.Type)
		fmt.Fprintf(&b, "Status: %s\n", paid)
		fmt.Fprintf(&b, "Amount: %s %s\n", line.Currency, line.Gross.String())
		fmt.Fprintf(&b, "Due Amount: %s %s\n", line.Currency, line.Due.String())
	}
	return b.String()
}

// renderClients formats one block per matched client, blocks separated by a
// blank line.
func renderClients(clients []core.Client) string {
	blocks := make([]string, len(clients))
	for i, c := range clients {
		blocks[i] = fmt.Sprintf("%s **%s** (ID: %s)\nEmail: %s\nWebsite: %s",
			glyphClient, c.Name, c.ClientID,
			orDefault(c.Email, "Not provided"), orDefault(c.Website, "Not provided"))
	}
	return strings.Join(blocks, "\n\n")
}

// renderWarehouses formats one block per warehouse with its location line,
// blocks separated by a blank line.
func renderWarehouses(warehouses []core.Warehouse) string {
	blocks := make([]string, len(warehouses))
	for i, w := range warehouses {
		blocks[i] = fmt.Sprintf("%s **%s** (ID: %s)\nLocation: %s, %s, %s",
			glyphDepot, w.Name, w.WarehouseID, w.City, w.State, w.Country)
	}
	return strings.Join(blocks, "\n\n")
}
