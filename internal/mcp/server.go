package mcp

import (
	"github.com/bankmcp/bankmcp/internal/bank"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "bankmcp"
	serverVersion = "0.1.0"
)

// Resource URIs served by the resource registry.
const (
	accountTypesURI  = "resource://account-types"
	interestRatesURI = "resource://interest-rates"
)

// serverInstructions is advertised to MCP clients during initialize.
const serverInstructions = `This MCP server provides banking tools:
- Check account balance
- List transactions
- Get payment methods
- Calculate loan payments`

// toolNames lists every registered tool in registration order. Kept in
// sync with registerTools by TestServer_EndToEnd.
var toolNames = []string{
	"get_account_balance",
	"get_recent_transactions",
	"search_transactions",
	"get_payment_methods",
	"calculate_loan_payment",
	"get_spending_summary",
}

// resourceURIs lists every registered resource in registration order.
var resourceURIs = []string{
	accountTypesURI,
	interestRatesURI,
}

// Server wraps the MCP server around a banking dataset.
type Server struct {
	mcp   *server.MCPServer
	store *bank.Store
}

// NewServer creates the MCP server with every banking tool and
// resource registered against the given dataset.
func NewServer(store *bank.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithInstructions(serverInstructions),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// MCPServer exposes the underlying server for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// registerTools registers the six banking tools and their schemas.
// Defaults are declared on the schema so clients see them, and applied
// again in the handlers for clients that omit the argument anyway.
func (s *Server) registerTools() {
	// get_account_balance
	s.mcp.AddTool(mcp.NewTool("get_account_balance",
		mcp.WithDescription("Get the current balance for a bank account. Use this when the user asks about their balance or how much money they have."),
		mcp.WithString("account_id",
			mcp.DefaultString(defaultAccountID),
			mcp.Description("The account identifier (default: ACC001)")),
	), s.handleAccountBalance)

	// get_recent_transactions
	s.mcp.AddTool(mcp.NewTool("get_recent_transactions",
		mcp.WithDescription("Get recent transaction history. Use this when the user asks about recent spending, transactions, or activity."),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(defaultTransactionLimit),
			mcp.Description("Maximum number of transactions to return (default: 5)")),
	), s.handleRecentTransactions)

	// search_transactions
	s.mcp.AddTool(mcp.NewTool("search_transactions",
		mcp.WithDescription("Search transactions with filters. Use this when the user asks about specific spending, like restaurant expenses or transactions over a given amount."),
		mcp.WithString("category",
			mcp.Description("Filter by category (e.g., \"Restaurant\", \"Shopping\")")),
		mcp.WithString("merchant",
			mcp.Description("Filter by merchant name (partial match)")),
		mcp.WithNumber("min_amount",
			mcp.Description("Minimum transaction amount (absolute value)")),
	), s.handleSearchTransactions)

	// get_payment_methods
	s.mcp.AddTool(mcp.NewTool("get_payment_methods",
		mcp.WithDescription("Get all available payment methods. Use this when the user asks about their cards, payment options, or how they can pay for something."),
	), s.handlePaymentMethods)

	// calculate_loan_payment
	s.mcp.AddTool(mcp.NewTool("calculate_loan_payment",
		mcp.WithDescription("Calculate monthly loan payment. Use this when the user asks about loan calculations, mortgages, or how much their monthly payment would be."),
		mcp.WithNumber("principal",
			mcp.Required(),
			mcp.Description("Loan amount in dollars")),
		mcp.WithNumber("annual_rate",
			mcp.Required(),
			mcp.Description("Annual interest rate as a percentage (e.g., 5.5 for 5.5%)")),
		mcp.WithNumber("years",
			mcp.Required(),
			mcp.Description("Loan term in years")),
	), s.handleLoanPayment)

	// get_spending_summary
	s.mcp.AddTool(mcp.NewTool("get_spending_summary",
		mcp.WithDescription("Get a summary of spending by category. Use this when the user asks where their money goes, for a spending breakdown, or for budget analysis."),
	), s.handleSpendingSummary)
}

// registerResources registers the two read-only documents.
func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(accountTypesURI, "account-types",
		mcp.WithResourceDescription("List of available account types"),
		mcp.WithMIMEType("application/json"),
	), s.handleAccountTypes)

	s.mcp.AddResource(mcp.NewResource(interestRatesURI, "interest-rates",
		mcp.WithResourceDescription("Current interest rates"),
		mcp.WithMIMEType("application/json"),
	), s.handleInterestRates)
}
