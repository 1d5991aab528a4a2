package cli

import (
	"strings"

	"github.com/bankmcp/bankmcp/internal/config"
	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/bankmcp/bankmcp/internal/logging"
	"github.com/mark3labs/mcp-go/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagHostedURL string

var demoHostedCmd = &cobra.Command{
	Use:   "hosted",
	Short: "Demo against a running HTTP server",
	Long: `Runs the demo conversation against a bankmcp server that is already
listening on the streamable HTTP transport. Start one first with
"bankmcp serve --http :8080".

The endpoint defaults to the local address from BANKMCP_HTTP_ADDR.`,
	Args: cobra.NoArgs,
	RunE: runDemoHosted,
}

func init() {
	demoHostedCmd.Flags().StringVar(&flagHostedURL, "url", "", "MCP endpoint URL (default http://localhost:8080/mcp)")
}

func runDemoHosted(cmd *cobra.Command, args []string) error {
	logging.Setup(zerolog.DebugLevel, flagQuiet)
	ctx := cmd.Context()

	url := flagHostedURL
	if url == "" {
		url = hostedURL(config.Load().HTTPAddr)
	}

	log.Debug().Str("url", url).Msg("connecting to hosted MCP server")

	c, err := client.NewStreamableHttpClient(url)
	if err != nil {
		return errors.TransportFailed(err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		return errors.TransportFailed(err)
	}
	if err := initializeClient(ctx, c); err != nil {
		return err
	}

	return runDemo(ctx, c)
}

// hostedURL derives the demo endpoint URL from a server listen address.
func hostedURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/mcp"
}
