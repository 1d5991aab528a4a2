package errors

import (
	"errors"
	"fmt"
)

// Error code constants shared by the CLI, MCP, and agent layers
const (
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeToolNotFound       = "TOOL_NOT_FOUND"
	CodeDuplicateTool      = "DUPLICATE_TOOL"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeTransportFailed    = "TRANSPORT_FAILED"
	CodeChatFailed         = "CHAT_FAILED"
)

// Error represents a bankmcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new bankmcp error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new bankmcp error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a bankmcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var bankErr *Error
	if errors.As(err, &bankErr) {
		return bankErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// AccountNotFound creates an ACCOUNT_NOT_FOUND error.
// The message is the exact text clients are documented to receive.
func AccountNotFound(accountID string) *Error {
	return New(CodeAccountNotFound, fmt.Sprintf("Account %s not found", accountID))
}

// InvalidArgument creates an INVALID_ARGUMENT error.
func InvalidArgument(reason string) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf("invalid argument: %s", reason))
}

// ToolNotFound creates a TOOL_NOT_FOUND error.
func ToolNotFound(name string) *Error {
	return New(CodeToolNotFound, fmt.Sprintf("tool %q is not registered", name))
}

// DuplicateTool creates a DUPLICATE_TOOL error.
func DuplicateTool(name string) *Error {
	return New(CodeDuplicateTool, fmt.Sprintf("tool %q is already registered", name))
}

// MissingCredentials creates a MISSING_CREDENTIALS error.
func MissingCredentials() *Error {
	return New(CodeMissingCredentials, "no API credentials configured, set OPENAI_API_KEY or AZURE_OPENAI_API_KEY")
}

// TransportFailed creates a TRANSPORT_FAILED error wrapping the underlying cause.
func TransportFailed(err error) *Error {
	return Wrap(CodeTransportFailed, "failed to serve MCP transport", err)
}

// ChatFailed creates a CHAT_FAILED error wrapping the underlying cause.
func ChatFailed(err error) *Error {
	return Wrap(CodeChatFailed, "chat completion request failed", err)
}
