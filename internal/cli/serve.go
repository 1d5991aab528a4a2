package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bankmcp/bankmcp/internal/bank"
	"github.com/bankmcp/bankmcp/internal/logging"
	"github.com/bankmcp/bankmcp/internal/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the banking MCP server",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

MCP clients (Claude Desktop, agent frameworks) spawn this command and
speak the protocol over stdin/stdout, so nothing else is written to
stdout. With --http the server listens on the given address instead
and serves the streamable HTTP transport at /mcp.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Serve streamable HTTP on this address (e.g. :8080) instead of stdio")
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Setup(zerolog.InfoLevel, flagQuiet)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(bank.Seed())

	transport := "stdio"
	if flagHTTPAddr != "" {
		transport = "http"
	}

	// The banner goes to stderr, and only when a human is watching.
	if !flagQuiet && isTerminal(os.Stderr) {
		fmt.Fprint(os.Stderr, mcp.Banner(transport))
	}

	if flagHTTPAddr != "" {
		log.Info().Str("addr", flagHTTPAddr).Msg("serving MCP over streamable HTTP")
		return srv.ServeHTTP(ctx, flagHTTPAddr)
	}

	log.Info().Msg("serving MCP over stdio")
	return srv.ServeStdio(ctx)
}
