package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
	openai "github.com/sashabaranov/go-openai"
)

// Client is the part of an MCP client session the agent uses. The
// mcp-go client satisfies it for every transport.
type Client interface {
	ListTools(ctx context.Context, request mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// LoadTools lists the server's tools and registers one endpoint per
// tool that forwards calls back over the MCP session. The MCP input
// schema doubles as the chat function schema. Returns the number of
// tools loaded.
func LoadTools(ctx context.Context, d *Dispatcher, c Client) (int, error) {
	result, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return 0, fmt.Errorf("failed to list tools: %w", err)
	}

	for _, tool := range result.Tools {
		tool := tool
		endpoint := Endpoint{
			Definition: openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.InputSchema,
			},
			Call: func(ctx context.Context, args string) (string, error) {
				return callTool(ctx, c, tool.Name, args)
			},
		}

		if err := d.Register(endpoint); err != nil {
			return 0, err
		}
	}

	return len(result.Tools), nil
}

// callTool forwards one tool invocation over the MCP session and
// flattens the text contents of the result.
func callTool(ctx context.Context, c Client, name, rawArgs string) (string, error) {
	args := map[string]interface{}{}
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "", errors.InvalidArgument(fmt.Sprintf("tool arguments are not valid JSON: %s", err))
		}
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := c.CallTool(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to call tool %s: %w", name, err)
	}

	return flattenText(result), nil
}

// flattenText joins the text contents of a tool result, one per line.
func flattenText(result *mcp.CallToolResult) string {
	var b strings.Builder
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(text.Text)
		}
	}
	return b.String()
}
