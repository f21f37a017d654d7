package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chainex-assistant/internal/adapters/web"
	"chainex-assistant/internal/app"
	"chainex-assistant/internal/core"
)

func newTestHandler() http.Handler {
	store := core.NewMemStore()
	store.Items = []core.Item{{ID: "it-1", Name: "Steel Widget", Status: core.StatusActive}}
	store.Warehouses = []core.Warehouse{
		{ID: "wh-1", WarehouseID: "WH-A", Name: "Warehouse A", Status: core.StatusActive, City: "Chicago", State: "IL", Country: "USA"},
	}
	store.Stock = []core.StockRecord{{ItemID: "it-1", WarehouseID: "wh-1", Available: 50, ReorderLevel: 10}}

	dispatcher := app.NewDispatcher(
		core.NewInventoryService(store),
		core.NewOrderService(store),
		core.NewClientService(store),
	)
	return web.NewHandler(dispatcher, nil)
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestWebhookStockSearch(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/webhook", `{
		"next_action": "action_stock_quantity_search",
		"tracker": {"slots": {"item_name": "widget"}}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Events    []json.RawMessage `json:"events"`
		Responses []struct {
			Text string `json:"text"`
		} `json:"responses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Events == nil {
		t.Error("events should be an empty array, not null")
	}
	if len(body.Responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(body.Responses))
	}
	if !strings.Contains(body.Responses[0].Text, "Steel Widget") {
		t.Errorf("response %q should mention the matched item", body.Responses[0].Text)
	}
	if !strings.Contains(body.Responses[0].Text, "in Warehouse A: 50 units (Reorder Level: 10)") {
		t.Errorf("response %q should carry the stock line", body.Responses[0].Text)
	}
}

func TestWebhookBareActionName(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/webhook", `{
		"next_action": "stock_quantity_search",
		"tracker": {"slots": {"item_name": "widget"}}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestWebhookUnknownAction(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/webhook", `{"next_action": "action_restart", "tracker": {"slots": {}}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestQueryMissingSlotPrompts(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/api/query", `{"operation": "order_status", "slots": {}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Messages) != 1 || !strings.Contains(body.Messages[0], "order ID") {
		t.Errorf("messages = %v, want a single order-ID prompt", body.Messages)
	}
}

func TestQueryUnknownOperation(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/api/query", `{"operation": "weather_report", "slots": {}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestQueryInvalidJSON(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/api/query", `{"operation":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatWithoutAgent(t *testing.T) {
	h := newTestHandler()
	rec := post(t, h, "/api/chat", `{"text": "how much widget stock do we have?"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
