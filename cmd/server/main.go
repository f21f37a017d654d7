package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "chainex-assistant/internal/adapters/web"
	"chainex-assistant/internal/ai"
	"chainex-assistant/internal/app"
	"chainex-assistant/internal/core"
	"chainex-assistant/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	store := db.NewStore(pool)
	dispatcher := app.NewDispatcher(
		core.NewInventoryService(store),
		core.NewOrderService(store),
		core.NewClientService(store),
	)

	var agent ai.AgentService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set, /api/chat disabled")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	handler := webAdapter.NewHandler(dispatcher, agent)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
