// Package errors provides typed error handling for bankmcp operations.
//
// Every error carries a stable string code so that the CLI can map it to
// an exit code and the MCP layer can report it inside a tool result.
//
// Example usage:
//
//	// Creating errors
//	err := errors.AccountNotFound("ACC999")
//	err := errors.InvalidArgument("term_years must be positive")
//
//	// Wrapping errors
//	err := errors.TransportFailed(ioErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeAccountNotFound) {
//	    // handle unknown account
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeInvalidArgument {
//	    // handle bad input
//	}
//
//	// Stdlib compatibility
//	var bankErr *errors.Error
//	if errors.As(err, &bankErr) {
//	    fmt.Println(bankErr.Code, bankErr.Message)
//	}
package errors
