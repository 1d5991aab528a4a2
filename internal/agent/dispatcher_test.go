package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bankmcp/bankmcp/internal/errors"
	openai "github.com/sashabaranov/go-openai"
)

// echoEndpoint returns a fake endpoint that reports the args it was
// called with.
func echoEndpoint(name string) Endpoint {
	return Endpoint{
		Definition: openai.FunctionDefinition{
			Name:        name,
			Description: "echoes its arguments",
		},
		Call: func(ctx context.Context, args string) (string, error) {
			return "echo:" + args, nil
		},
	}
}

// toolCall builds a model tool call for testing.
func toolCall(id, name, args string) openai.ToolCall {
	return openai.ToolCall{
		ID:   id,
		Type: openai.ToolTypeFunction,
		Function: openai.FunctionCall{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestRegister_Duplicate(t *testing.T) {
	d := NewDispatcher()

	if err := d.Register(echoEndpoint("get_balance")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := d.Register(echoEndpoint("get_balance"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, errors.CodeDuplicateTool) {
		t.Errorf("expected code %s, got %v", errors.CodeDuplicateTool, err)
	}
}

func TestTools_RegistrationOrder(t *testing.T) {
	d := NewDispatcher()

	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := d.Register(echoEndpoint(name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tools := d.Tools()
	if len(tools) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(tools))
	}

	for i, name := range names {
		if tools[i].Function.Name != name {
			t.Errorf("expected tool %s at index %d, got %s", name, i, tools[i].Function.Name)
		}
		if tools[i].Type != openai.ToolTypeFunction {
			t.Errorf("expected function tool type, got %s", tools[i].Type)
		}
	}

	got := d.Names()
	for i, name := range names {
		if got[i] != name {
			t.Errorf("expected name %s at index %d, got %s", name, i, got[i])
		}
	}
}

func TestDispatch_Success(t *testing.T) {
	d := NewDispatcher()
	if err := d.Register(echoEndpoint("get_balance")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := d.Dispatch(context.Background(), toolCall("call_1", "get_balance", `{"account_id":"ACC001"}`))

	if message.Role != openai.ChatMessageRoleTool {
		t.Errorf("expected tool role, got %s", message.Role)
	}

	if message.ToolCallID != "call_1" {
		t.Errorf("expected tool call id call_1, got %s", message.ToolCallID)
	}

	if message.Content != `echo:{"account_id":"ACC001"}` {
		t.Errorf("unexpected content: %s", message.Content)
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	d := NewDispatcher()

	message := d.Dispatch(context.Background(), toolCall("call_9", "no_such_tool", "{}"))

	if message.ToolCallID != "call_9" {
		t.Errorf("expected tool call id call_9, got %s", message.ToolCallID)
	}

	var response map[string]map[string]string
	if err := json.Unmarshal([]byte(message.Content), &response); err != nil {
		t.Fatalf("failed to parse error payload: %v", err)
	}

	if response["error"]["code"] != errors.CodeToolNotFound {
		t.Errorf("expected code %s, got %s", errors.CodeToolNotFound, response["error"]["code"])
	}
}

func TestDispatch_EndpointError(t *testing.T) {
	d := NewDispatcher()

	endpoint := echoEndpoint("get_balance")
	endpoint.Call = func(ctx context.Context, args string) (string, error) {
		return "", errors.AccountNotFound("ACC999")
	}
	if err := d.Register(endpoint); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := d.Dispatch(context.Background(), toolCall("call_2", "get_balance", "{}"))

	var response map[string]map[string]string
	if err := json.Unmarshal([]byte(message.Content), &response); err != nil {
		t.Fatalf("failed to parse error payload: %v", err)
	}

	if response["error"]["code"] != errors.CodeAccountNotFound {
		t.Errorf("expected code %s, got %s", errors.CodeAccountNotFound, response["error"]["code"])
	}

	// The domain message travels without the code prefix
	if response["error"]["message"] != "Account ACC999 not found" {
		t.Errorf("unexpected message: %s", response["error"]["message"])
	}
}

func TestDispatch_UncodedError(t *testing.T) {
	d := NewDispatcher()

	endpoint := echoEndpoint("get_balance")
	endpoint.Call = func(ctx context.Context, args string) (string, error) {
		return "", fmt.Errorf("connection reset")
	}
	if err := d.Register(endpoint); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := d.Dispatch(context.Background(), toolCall("call_3", "get_balance", "{}"))

	var response map[string]map[string]string
	if err := json.Unmarshal([]byte(message.Content), &response); err != nil {
		t.Fatalf("failed to parse error payload: %v", err)
	}

	if response["error"]["code"] != "INTERNAL_ERROR" {
		t.Errorf("expected code INTERNAL_ERROR, got %s", response["error"]["code"])
	}

	if response["error"]["message"] != "connection reset" {
		t.Errorf("unexpected message: %s", response["error"]["message"])
	}
}
