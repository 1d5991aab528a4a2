package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/bankmcp/bankmcp/internal/bank"
	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
)

const (
	// defaultAccountID is used when get_account_balance is called
	// without an account_id argument.
	defaultAccountID = "ACC001"

	// defaultTransactionLimit is used when get_recent_transactions is
	// called without a limit argument.
	defaultTransactionLimit = 5
)

// handleAccountBalance implements get_account_balance: reports the
// current balance for one account.
func (s *Server) handleAccountBalance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract parameters
	accountID := request.GetString("account_id", defaultAccountID)

	result, err := s.store.Balance(accountID)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(result), nil
}

// handleRecentTransactions implements get_recent_transactions: returns
// the most recent transactions, newest first.
func (s *Server) handleRecentTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract parameters
	limit := request.GetInt("limit", defaultTransactionLimit)

	txns, err := s.store.Recent(limit)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(txns), nil
}

// handleSearchTransactions implements search_transactions: filters the
// ledger by category, merchant, and minimum amount. All filters are
// optional and conjunctive.
func (s *Server) handleSearchTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract parameters
	filter := bank.Filter{
		Category:  request.GetString("category", ""),
		Merchant:  request.GetString("merchant", ""),
		MinAmount: decimal.NewFromFloat(request.GetFloat("min_amount", 0)),
	}

	return jsonResult(s.store.Search(filter)), nil
}

// handlePaymentMethods implements get_payment_methods: lists every
// payment method on file.
func (s *Server) handlePaymentMethods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.store.Methods()), nil
}

// handleLoanPayment implements calculate_loan_payment: amortizes a
// fixed-rate loan into monthly payment figures.
func (s *Server) handleLoanPayment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract parameters
	principal, err := request.RequireFloat("principal")
	if err != nil {
		return errorResult(errors.CodeInvalidArgument, "principal is required"), nil
	}

	annualRate, err := request.RequireFloat("annual_rate")
	if err != nil {
		return errorResult(errors.CodeInvalidArgument, "annual_rate is required"), nil
	}

	years, err := request.RequireInt("years")
	if err != nil {
		return errorResult(errors.CodeInvalidArgument, "years is required"), nil
	}

	result, err := bank.Loan(decimal.NewFromFloat(principal), decimal.NewFromFloat(annualRate), years)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(result), nil
}

// handleSpendingSummary implements get_spending_summary: aggregates
// expenses by category.
func (s *Server) handleSpendingSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.store.Summary()), nil
}

// Helper functions

// mcpErrorResult converts a bankmcp error to an MCP error result,
// keeping code and message separate so clients see the domain message
// verbatim.
func mcpErrorResult(err error) *mcp.CallToolResult {
	var bankErr *errors.Error
	if stderrors.As(err, &bankErr) {
		return errorResult(bankErr.Code, bankErr.Message)
	}

	return errorResult("INTERNAL_ERROR", err.Error())
}

// errorResult creates an MCP error result. Failures are reported
// inside the tool result rather than as protocol errors so agent
// frameworks hand them back to the model instead of aborting the call.
func errorResult(code, message string) *mcp.CallToolResult {
	errorData := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}

	jsonBytes, err := json.Marshal(errorData)
	if err != nil {
		// Fallback to simple text
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s - %s", code, message))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}

// jsonResult creates an MCP success result from a JSON-serializable object.
func jsonResult(data interface{}) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return errorResult("INTERNAL_ERROR", fmt.Sprintf("failed to marshal response: %s", err))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}
