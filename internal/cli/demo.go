package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bankmcp/bankmcp/internal/agent"
	"github.com/bankmcp/bankmcp/internal/config"
	"github.com/mark3labs/mcp-go/client"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the agent demo against the banking server",
	Long: `Runs a scripted agent conversation against the banking MCP server.

The agent sends each demo question to an OpenAI-compatible chat model
with the server's tools attached, executes the tool calls the model
requests, and prints the final answers.

Credentials come from the environment: OPENAI_API_KEY (plus optional
OPENAI_BASE_URL), or AZURE_OPENAI_API_KEY with AZURE_OPENAI_ENDPOINT.
Without credentials the demo lists the available tools instead.`,
}

func init() {
	demoCmd.AddCommand(demoLocalCmd)
	demoCmd.AddCommand(demoHostedCmd)
}

// runDemo drives the demo conversation over an initialized MCP client.
// Without chat credentials it degrades to printing the catalogue.
func runDemo(ctx context.Context, c *client.Client) error {
	cfg := config.Load()

	if !cfg.HasCredentials() {
		if !flagQuiet {
			fmt.Fprintln(os.Stderr, "No chat credentials configured (OPENAI_API_KEY or AZURE_OPENAI_API_KEY + AZURE_OPENAI_ENDPOINT).")
			fmt.Fprintln(os.Stderr, "Listing the available tools instead of running the agent.")
			fmt.Fprintln(os.Stderr)
		}
		return printCatalogue(ctx, c, os.Stdout)
	}

	chat, err := cfg.ChatClient()
	if err != nil {
		return err
	}

	dispatcher := agent.NewDispatcher()
	count, err := agent.LoadTools(ctx, dispatcher, c)
	if err != nil {
		return err
	}
	log.Debug().Int("tools", count).Str("model", cfg.Model).Msg("agent ready")

	return agent.RunDemo(ctx, agent.New(chat, cfg.Model, dispatcher), os.Stdout)
}
