package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"chainex-assistant/internal/ai"
	"chainex-assistant/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the query dispatcher, the optional AI router, and the chi router.
type Handler struct {
	dispatcher app.Dispatcher
	agent      ai.AgentService // nil when no API key is configured
	router     chi.Router
}

// NewHandler creates and wires the chi router with all routes. agent may be nil,
// in which case POST /api/chat returns 503.
func NewHandler(dispatcher app.Dispatcher, agent ai.AgentService) http.Handler {
	h := &Handler{
		dispatcher: dispatcher,
		agent:      agent,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// Rasa-compatible action webhook: the bot posts the predicted action name
	// plus its slot values and expects utterances back.
	r.Post("/webhook", h.webhook)

	// Direct typed query endpoint.
	r.Post("/api/query", h.query)

	// Free-text endpoint routed through the AI agent.
	r.Post("/api/chat", h.chat)

	h.router = r
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// webhookRequest mirrors the Rasa SDK action-server payload: the action name to
// run and the conversation tracker carrying the extracted slot values.
type webhookRequest struct {
	NextAction string `json:"next_action"`
	Tracker    struct {
		SenderID string          `json:"sender_id"`
		Slots    map[string]any  `json:"slots"`
		Events   json.RawMessage `json:"events"`
	} `json:"tracker"`
}

type webhookMessage struct {
	Text string `json:"text"`
}

type webhookResponse struct {
	Events    []json.RawMessage `json:"events"`
	Responses []webhookMessage  `json:"responses"`
}

func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	op, ok := operationForAction(req.NextAction)
	if !ok {
		writeError(w, r, "unknown action: "+req.NextAction, "UNKNOWN_ACTION", http.StatusBadRequest)
		return
	}

	engineReq := app.Request{
		Operation: op,
		Slots: app.Slots{
			ItemName:      slotString(req.Tracker.Slots, "item_name"),
			WarehouseName: slotString(req.Tracker.Slots, "warehouse_name"),
			OrderID:       slotString(req.Tracker.Slots, "order_id"),
			Status:        slotString(req.Tracker.Slots, "status"),
			ClientName:    slotString(req.Tracker.Slots, "client_name"),
		},
	}

	messages, err := h.dispatch(r, engineReq)
	if err != nil {
		writeError(w, r, err.Error(), "DISPATCH_FAILED", http.StatusInternalServerError)
		return
	}

	resp := webhookResponse{Events: []json.RawMessage{}, Responses: make([]webhookMessage, 0, len(messages))}
	for _, m := range messages {
		resp.Responses = append(resp.Responses, webhookMessage{Text: m})
	}
	writeJSON(w, resp)
}

// operationForAction maps a bot action name to an engine operation. Both the
// Rasa "action_"-prefixed form and the bare operation name are accepted.
func operationForAction(name string) (app.Operation, bool) {
	op := app.Operation(strings.TrimPrefix(name, "action_"))
	switch op {
	case app.OpStockSearch, app.OpOrderStatus, app.OpShipmentInfo,
		app.OpInvoiceInfo, app.OpClientInfo, app.OpWarehouseInfo:
		return op, true
	}
	return "", false
}

func slotString(slots map[string]any, key string) string {
	s, _ := slots[key].(string)
	return s
}

type queryResponse struct {
	Messages []string `json:"messages"`
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	var req app.Request
	if !decodeJSON(w, r, &req) {
		return
	}

	messages, err := h.dispatch(r, req)
	if err != nil {
		if errors.Is(err, app.ErrUnknownOperation) {
			writeError(w, r, err.Error(), "UNKNOWN_OPERATION", http.StatusBadRequest)
			return
		}
		writeError(w, r, err.Error(), "DISPATCH_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, queryResponse{Messages: messages})
}

type chatRequest struct {
	Text string `json:"text"`
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	if h.agent == nil {
		writeError(w, r, "AI routing is not configured", "AI_UNAVAILABLE", http.StatusServiceUnavailable)
		return
	}

	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, r, "text is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	routing, err := h.agent.Route(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, "failed to interpret message", "AI_FAILED", http.StatusBadGateway)
		return
	}

	engineReq, ok := routing.Request()
	if !ok {
		writeJSON(w, queryResponse{Messages: []string{
			"I can help with stock levels, order status, shipments, invoices, clients and warehouses.",
		}})
		return
	}

	messages, err := h.dispatch(r, engineReq)
	if err != nil {
		writeError(w, r, err.Error(), "DISPATCH_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, queryResponse{Messages: messages})
}

// dispatch runs one engine request and collects the utterances it emits.
func (h *Handler) dispatch(r *http.Request, req app.Request) ([]string, error) {
	var messages []string
	sink := app.SinkFunc(func(_ context.Context, message string) error {
		messages = append(messages, message)
		return nil
	})
	if err := h.dispatcher.Handle(r.Context(), req, sink); err != nil {
		return nil, err
	}
	return messages, nil
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
