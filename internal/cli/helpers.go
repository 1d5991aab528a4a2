package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/term"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// firstLine returns the first line of a multi-line description.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// initializeClient performs the MCP initialize handshake on a started
// client.
func initializeClient(ctx context.Context, c *client.Client) error {
	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "bankmcp-cli",
		Version: Version,
	}

	if _, err := c.Initialize(ctx, initRequest); err != nil {
		return errors.TransportFailed(err)
	}
	return nil
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeMissingCredentials:
		return 2 // Misconfiguration
	case errors.CodeTransportFailed:
		return 3 // Transport failure
	case errors.CodeChatFailed:
		return 4 // Chat provider failure
	case "":
		// Not a bankmcp error - could be usage error
		return 1 // General error
	default:
		return 1 // General error
	}
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
