// Package agent implements the demo banking assistant: an OpenAI
// chat-completions loop wired to the MCP server's tools.
package agent

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/bankmcp/bankmcp/internal/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Endpoint couples a tool's chat declaration with its executor. Call
// receives the raw JSON argument object produced by the model.
type Endpoint struct {
	Definition openai.FunctionDefinition
	Call       func(ctx context.Context, args string) (string, error)
}

// Dispatcher routes model tool calls to registered endpoints.
type Dispatcher struct {
	endpoints map[string]Endpoint
	order     []string
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		endpoints: make(map[string]Endpoint),
	}
}

// Register adds an endpoint under its definition name. Registering the
// same name twice is a DUPLICATE_TOOL error.
func (d *Dispatcher) Register(endpoint Endpoint) error {
	name := endpoint.Definition.Name
	if _, exists := d.endpoints[name]; exists {
		return errors.DuplicateTool(name)
	}

	d.endpoints[name] = endpoint
	d.order = append(d.order, name)
	return nil
}

// Names returns the registered tool names in registration order.
func (d *Dispatcher) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Tools renders the chat tool declarations in registration order.
func (d *Dispatcher) Tools() []openai.Tool {
	out := make([]openai.Tool, 0, len(d.order))
	for _, name := range d.order {
		endpoint := d.endpoints[name]
		out = append(out, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &endpoint.Definition,
		})
	}
	return out
}

// Dispatch executes one model tool call and renders the outcome as a
// tool message. Failures, including unknown tool names, are reported
// inside the message content so the model can react instead of the
// run aborting.
func (d *Dispatcher) Dispatch(ctx context.Context, call openai.ToolCall) openai.ChatCompletionMessage {
	message := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		ToolCallID: call.ID,
	}

	endpoint, exists := d.endpoints[call.Function.Name]
	if !exists {
		message.Content = errorPayload(errors.ToolNotFound(call.Function.Name))
		return message
	}

	content, err := endpoint.Call(ctx, call.Function.Arguments)
	if err != nil {
		message.Content = errorPayload(err)
		return message
	}

	message.Content = content
	return message
}

// errorPayload renders an error in the same JSON envelope the MCP
// server uses for tool failures.
func errorPayload(err error) string {
	code := errors.Code(err)
	message := err.Error()

	var bankErr *errors.Error
	if stderrors.As(err, &bankErr) {
		message = bankErr.Message
	}
	if code == "" {
		code = "INTERNAL_ERROR"
	}

	payload, marshalErr := json.Marshal(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
	if marshalErr != nil {
		return fmt.Sprintf("Error: %s - %s", code, message)
	}

	return string(payload)
}
