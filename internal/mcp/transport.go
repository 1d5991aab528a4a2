package mcp

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/mark3labs/mcp-go/server"
)

// httpEndpointPath is where the streamable HTTP transport mounts the
// MCP endpoint.
const httpEndpointPath = "/mcp"

// shutdownTimeout bounds the graceful drain when ServeHTTP's context
// is cancelled.
const shutdownTimeout = 10 * time.Second

// ServeStdio serves MCP over stdin/stdout until the client disconnects
// or ctx is cancelled. This is the transport MCP hosts such as Claude
// Desktop spawn subprocesses with.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return errors.TransportFailed(err)
	}

	return nil
}

// ServeHTTP serves MCP over streamable HTTP on addr, mounted at /mcp.
// It blocks until the listener fails or ctx is cancelled, draining
// in-flight requests before returning.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath(httpEndpointPath),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.TransportFailed(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.TransportFailed(err)
	}

	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.TransportFailed(err)
	}

	return nil
}

// Banner renders the startup summary the serve command prints to
// stderr. Stdout stays clean because the stdio transport owns it.
func Banner(transport string) string {
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Banking MCP Server")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Server Name: %s\n", serverName)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Available Tools:")
	for _, name := range toolNames {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Available Resources:")
	for _, uri := range resourceURIs {
		fmt.Fprintf(&b, "  - %s\n", uri)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Starting MCP server (%s)...\n", transport)
	fmt.Fprintln(&b, "Use Ctrl+C to stop")
	fmt.Fprintln(&b, rule)

	return b.String()
}
