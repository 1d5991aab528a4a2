package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bankmcp/bankmcp/internal/bank"
	"github.com/bankmcp/bankmcp/internal/errors"
	bankmcp "github.com/bankmcp/bankmcp/internal/mcp"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools and resources the server exposes",
	Long: `Lists every MCP tool and resource the banking server registers,
using an in-process client so no transport is started.

Outputs a human-readable listing by default, or JSON with the --json flag.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := client.NewInProcessClient(bankmcp.NewServer(bank.Seed()).MCPServer())
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

	if flagJSON {
		return outputCatalogueJSON(ctx, c)
	}

	return printCatalogue(ctx, c, os.Stdout)
}

// printCatalogue writes the human-readable tool and resource listing.
// The demo commands reuse it when no chat credentials are configured.
func printCatalogue(ctx context.Context, c *client.Client, out io.Writer) error {
	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available tools:")
	for _, tool := range tools.Tools {
		fmt.Fprintf(out, "  - %s: %s\n", tool.Name, firstLine(tool.Description))
	}

	resources, err := c.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available resources:")
	for _, res := range resources.Resources {
		fmt.Fprintf(out, "  - %s: %s\n", res.URI, firstLine(res.Description))
	}

	return nil
}

// outputCatalogueJSON emits the full catalogue, schemas included.
func outputCatalogueJSON(ctx context.Context, c *client.Client) error {
	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}
	resources, err := c.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return err
	}

	toolList := make([]map[string]interface{}, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		toolList = append(toolList, map[string]interface{}{
			"name":         tool.Name,
			"description":  tool.Description,
			"input_schema": tool.InputSchema,
		})
	}

	resourceList := make([]map[string]interface{}, 0, len(resources.Resources))
	for _, res := range resources.Resources {
		resourceList = append(resourceList, map[string]interface{}{
			"uri":         res.URI,
			"name":        res.Name,
			"description": res.Description,
			"mime_type":   res.MIMEType,
		})
	}

	return outputJSON(map[string]interface{}{
		"tools":     toolList,
		"resources": resourceList,
	})
}
