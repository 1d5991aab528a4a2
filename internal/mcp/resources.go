package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleAccountTypes serves resource://account-types: the catalogue of
// account types offered by the bank.
func (s *Server) handleAccountTypes(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return resourceJSON(accountTypesURI, s.store.AccountTypes())
}

// handleInterestRates serves resource://interest-rates: the current
// rate sheet.
func (s *Server) handleInterestRates(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return resourceJSON(interestRatesURI, s.store.InterestRates())
}

// resourceJSON wraps a payload as JSON text resource contents.
func resourceJSON(uri string, data interface{}) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
