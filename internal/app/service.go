package app

import "context"

// Sink receives the ordered display strings a pipeline produces. The REPL
// prints them; the webhook adapter collects them into the HTTP response.
// Implementations render messages verbatim.
type Sink interface {
	Utter(ctx context.Context, message string) error
}

// Dispatcher is the single interface all adapters (REPL, webhook, AI router)
// call. Each Handle invocation runs one straight-line pipeline: validate
// slots, resolve the primary entity, traverse its relations, classify
// derived fields, render, and utter. Pipelines share no mutable state, so
// concurrent Handle calls need no coordination beyond the store's own
// guarantees.
//
// Handle only returns an error for sink delivery failures or an unknown
// operation. Resolution failures never escape: missing slots and empty
// matches become user-facing prompts, and unexpected store errors are
// uttered as the operation's generic error line and logged.
type Dispatcher interface {
	Handle(ctx context.Context, req Request, sink Sink) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, message string) error

func (f SinkFunc) Utter(ctx context.Context, message string) error {
	return f(ctx, message)
}
