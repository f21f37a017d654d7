package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"chainex-assistant/internal/app"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// AgentService routes a free-text utterance to a typed engine request.
type AgentService interface {
	Route(ctx context.Context, utterance string) (*Routing, error)
}

// Routing is the model's structured interpretation of one utterance. The
// engine itself never sees this type; callers convert it to an app.Request.
type Routing struct {
	Operation     string  `json:"operation" jsonschema:"enum=stock_quantity_search,enum=order_status,enum=shipment_info,enum=invoice_info,enum=client_info,enum=warehouse_info,enum=none" jsonschema_description:"The ERP query the user is asking for, or 'none' if the utterance is not an ERP query"`
	ItemName      string  `json:"item_name" jsonschema_description:"Item name fragment mentioned by the user, empty if none"`
	WarehouseName string  `json:"warehouse_name" jsonschema_description:"Warehouse name fragment mentioned by the user, empty if none"`
	OrderID       string  `json:"order_id" jsonschema_description:"Order identifier mentioned by the user, empty if none"`
	Status        string  `json:"status" jsonschema_description:"New order status when the user asks to update an order, empty otherwise"`
	ClientName    string  `json:"client_name" jsonschema_description:"Client name fragment mentioned by the user, empty if none"`
	Confidence    float64 `json:"confidence" jsonschema_description:"Confidence score between 0.0 and 1.0"`
}

// Request converts the routing to an engine request. ok is false when the
// model classified the utterance as not an ERP query.
func (r *Routing) Request() (app.Request, bool) {
	if r.Operation == "none" {
		return app.Request{}, false
	}
	return app.Request{
		Operation: app.Operation(r.Operation),
		Slots: app.Slots{
			ItemName:      r.ItemName,
			WarehouseName: r.WarehouseName,
			OrderID:       r.OrderID,
			Status:        r.Status,
			ClientName:    r.ClientName,
		},
	}, true
}

var knownOperations = map[string]bool{
	string(app.OpStockSearch):   true,
	string(app.OpOrderStatus):   true,
	string(app.OpShipmentInfo):  true,
	string(app.OpInvoiceInfo):   true,
	string(app.OpClientInfo):    true,
	string(app.OpWarehouseInfo): true,
	"none":                      true,
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// Route classifies the utterance into one of the six engine operations and
// extracts its slot values via strict structured output.
func (a *Agent) Route(ctx context.Context, utterance string) (*Routing, error) {
	prompt := fmt.Sprintf(`You are the intent router for an ERP assistant.
Classify the user's message into exactly one operation and extract slot values.
Rules:
1. Use 'stock_quantity_search' for questions about item stock or availability.
2. Use 'order_status' for order lookups; set 'status' ONLY when the user asks to change an order's status.
3. Use 'shipment_info' / 'invoice_info' for shipment or invoice questions about an order.
4. Use 'client_info' for customer lookups and 'warehouse_info' for warehouse lookups or listings.
5. Use 'none' if the message is not an ERP query.
6. Slot values are short fragments copied from the message, never invented.
7. Provide a confidence score (0.0-1.0).

Message: %s`, utterance)

	// Dynamically generate the JSON schema from the Go struct
	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "erp_query_routing",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Routing of a user utterance to an ERP query operation with extracted slots"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var routing Routing
	if err := json.Unmarshal([]byte(content), &routing); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}

	if !knownOperations[routing.Operation] {
		return nil, fmt.Errorf("model returned unknown operation %q", routing.Operation)
	}

	return &routing, nil
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v Routing
	return reflector.Reflect(v)
}
