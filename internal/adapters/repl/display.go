package repl

import (
	"context"
	"fmt"
)

// printSink delivers engine utterances straight to stdout.
type printSink struct{}

func (printSink) Utter(_ context.Context, message string) error {
	fmt.Println(message)
	return nil
}

func printHelp() {
	fmt.Println(`
Commands:
  /stock <item> [@ <warehouse>]     Stock levels for an item, optionally in one warehouse
  /order <order-id> [new-status]    Order details, or update the order's status
  /shipment <order-id>              Shipment and tracking details for an order
  /invoice <order-id>               Invoice and payment details for an order
  /client <name>                    Active clients matching a name
  /warehouses [name]                Active warehouses, optionally filtered by name
  /help                             Show this help
  /exit                             Quit

Anything without a leading slash is interpreted by the AI agent, e.g.:
  how many steel widgets do we have in the north warehouse?
  where is order SO-1042?`)
}
