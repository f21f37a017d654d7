package repl

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"chainex-assistant/internal/ai"
	"chainex-assistant/internal/app"
)

// Run starts the interactive REPL loop.
// It reads commands from reader, dispatches slash commands deterministically,
// and routes natural language input through the AI agent. agent may be nil,
// in which case only slash commands are available.
func Run(ctx context.Context, dispatcher app.Dispatcher, agent ai.AgentService, reader *bufio.Reader) {
	fmt.Println("ChainEx Assistant")
	fmt.Println("Ask about stock, orders, shipments, invoices, clients or warehouses — or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	run := func(req app.Request) error {
		return dispatcher.Handle(ctx, req, printSink{})
	}

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "stock":
			if len(args) == 0 {
				fmt.Println("Usage: /stock <item> [@ <warehouse>]")
				return nil
			}
			item, warehouse := splitAt(args)
			return run(app.Request{
				Operation: app.OpStockSearch,
				Slots:     app.Slots{ItemName: item, WarehouseName: warehouse},
			})

		case "order":
			if len(args) == 0 {
				fmt.Println("Usage: /order <order-id> [new-status]")
				return nil
			}
			req := app.Request{
				Operation: app.OpOrderStatus,
				Slots:     app.Slots{OrderID: args[0]},
			}
			if len(args) > 1 {
				req.Slots.Status = strings.Join(args[1:], " ")
			}
			return run(req)

		case "shipment":
			if len(args) == 0 {
				fmt.Println("Usage: /shipment <order-id>")
				return nil
			}
			return run(app.Request{
				Operation: app.OpShipmentInfo,
				Slots:     app.Slots{OrderID: args[0]},
			})

		case "invoice":
			if len(args) == 0 {
				fmt.Println("Usage: /invoice <order-id>")
				return nil
			}
			return run(app.Request{
				Operation: app.OpInvoiceInfo,
				Slots:     app.Slots{OrderID: args[0]},
			})

		case "client":
			if len(args) == 0 {
				fmt.Println("Usage: /client <name>")
				return nil
			}
			return run(app.Request{
				Operation: app.OpClientInfo,
				Slots:     app.Slots{ClientName: strings.Join(args, " ")},
			})

		case "warehouses":
			return run(app.Request{
				Operation: app.OpWarehouseInfo,
				Slots:     app.Slots{WarehouseName: strings.Join(args, " ")},
			})

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Slash prefix → deterministic command dispatcher, no AI invoked.
		if strings.HasPrefix(input, "/") {
			if err := dispatchSlash(input); err != nil {
				if err == errExit {
					fmt.Println("Goodbye!")
					break
				}
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		// No slash prefix → route to AI agent.
		if agent == nil {
			fmt.Println("AI routing is not configured. Use a slash command instead — type /help.")
			continue
		}

		fmt.Println("[AI] Processing...")
		routing, err := agent.Route(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		req, ok := routing.Request()
		if !ok {
			fmt.Println("I can help with stock levels, order status, shipments, invoices, clients and warehouses.")
			continue
		}
		if err := run(req); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// splitAt splits slash-command arguments on a literal "@" token: everything
// before it is the item fragment, everything after the warehouse fragment.
func splitAt(args []string) (string, string) {
	for i, a := range args {
		if a == "@" {
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " ")
		}
	}
	return strings.Join(args, " "), ""
}
