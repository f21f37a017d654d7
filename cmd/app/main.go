package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"chainex-assistant/internal/adapters/repl"
	"chainex-assistant/internal/ai"
	"chainex-assistant/internal/app"
	"chainex-assistant/internal/core"
	"chainex-assistant/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var store core.Store
	if os.Getenv("DEMO_MODE") != "" {
		log.Println("DEMO_MODE set: using the in-memory demo catalog")
		store = demoStore()
	} else {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		store = db.NewStore(pool)
	}

	dispatcher := app.NewDispatcher(
		core.NewInventoryService(store),
		core.NewOrderService(store),
		core.NewClientService(store),
	)

	var agent ai.AgentService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set, AI routing disabled")
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "route":
			if len(os.Args) < 3 {
				log.Fatal("Usage: app route \"<utterance>\"")
			}
			if agent == nil {
				log.Fatal("OPENAI_API_KEY is required for route")
			}
			routing, err := agent.Route(ctx, os.Args[2])
			if err != nil {
				log.Fatalf("Agent error: %v", err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(routing)

		case "query":
			// Reads a typed engine request from stdin and prints its utterances.
			var req app.Request
			if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
				log.Fatalf("Invalid JSON: %v", err)
			}
			sink := app.SinkFunc(func(_ context.Context, message string) error {
				fmt.Println(message)
				return nil
			})
			if err := dispatcher.Handle(ctx, req, sink); err != nil {
				log.Fatalf("Query failed: %v", err)
			}

		default:
			log.Fatalf("Unknown command: %s", os.Args[1])
		}
		return
	}

	repl.Run(ctx, dispatcher, agent, bufio.NewReader(os.Stdin))
}
