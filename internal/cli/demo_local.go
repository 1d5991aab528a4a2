package cli

import (
	"os"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/bankmcp/bankmcp/internal/logging"
	"github.com/mark3labs/mcp-go/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var demoLocalCmd = &cobra.Command{
	Use:   "local",
	Short: "Demo against a server subprocess over stdio",
	Long: `Spawns "bankmcp serve" as a child process and runs the demo
conversation over its stdio transport, the way MCP hosts launch
local servers.`,
	Args: cobra.NoArgs,
	RunE: runDemoLocal,
}

func runDemoLocal(cmd *cobra.Command, args []string) error {
	logging.Setup(zerolog.DebugLevel, flagQuiet)
	ctx := cmd.Context()

	exe, err := os.Executable()
	if err != nil {
		return errors.Wrap(errors.CodeTransportFailed, "failed to locate the bankmcp binary", err)
	}

	log.Debug().Str("command", exe).Msg("spawning MCP server subprocess")

	// NewStdioMCPClient spawns the subprocess and starts the transport.
	c, err := client.NewStdioMCPClient(exe, nil, "serve", "--quiet")
	if err != nil {
		return errors.TransportFailed(err)
	}
	defer c.Close()

	if err := initializeClient(ctx, c); err != nil {
		return err
	}

	return runDemo(ctx, c)
}
