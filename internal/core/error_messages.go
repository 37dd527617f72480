package core

// error_messages.go maps pipeline errors to user-facing messages with codes
// for support reference.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Resource not found: the product file is missing
//	         Action: Check CATALOG_RESOURCE and CATALOG_RESOURCE_DIR
//
//	SRC002 - Resource unreadable: the product file could not be read
//	         Action: Check file permissions and size (CATALOG_MAX_SIZE)
//
// # Parse Errors (PRS001-PRS099)
//
//	PRS001 - Wrong field count: a row does not have exactly 9 fields
//	PRS002 - Invalid integer: id, category or stock is not a whole number
//	PRS003 - Invalid decimal: price is not a plain decimal number
//	PRS004 - Invalid date: created or updated is not YYYY-MM-DD
//	PRS000 - Any other parse failure
//
// # Default Error (ERR000)
//
// Fallback when no kind matches; check the logs for the technical error.
//
// Kinds are matched with errors.Is in table order, so causes are listed
// before the ErrParseFailure catch-all.

import (
	"errors"
	"fmt"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorKind pairs a sentinel with its user message.
type errorKind struct {
	target error
	msg    UserMessage
}

var errorKinds = []errorKind{
	{
		target: ErrResourceNotFound,
		msg: UserMessage{
			Message: "Product file not found",
			Action:  "Check CATALOG_RESOURCE and CATALOG_RESOURCE_DIR",
			Code:    "SRC001",
		},
	},
	{
		target: ErrIOFailure,
		msg: UserMessage{
			Message: "Product file could not be read",
			Action:  "Check file permissions and size (CATALOG_MAX_SIZE)",
			Code:    "SRC002",
		},
	},
	{
		target: ErrFieldCount,
		msg: UserMessage{
			Message: "A row does not have exactly 9 fields",
			Action:  "Fix the row; commas inside values are not supported",
			Code:    "PRS001",
		},
	},
	{
		target: ErrInvalidInteger,
		msg: UserMessage{
			Message: "Invalid whole number",
			Action:  "Use plain digits for id, category and stock",
			Code:    "PRS002",
		},
	},
	{
		target: ErrInvalidDecimal,
		msg: UserMessage{
			Message: "Invalid price",
			Action:  "Use a plain decimal such as 49.99 without currency symbols",
			Code:    "PRS003",
		},
	},
	{
		target: ErrInvalidDate,
		msg: UserMessage{
			Message: "Invalid date",
			Action:  "Use YYYY-MM-DD",
			Code:    "PRS004",
		},
	},
	{
		target: ErrParseFailure,
		msg: UserMessage{
			Message: "Product file could not be parsed",
			Action:  "Check the row reported in the logs",
			Code:    "PRS000",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with LOG_LEVEL=debug for details",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message.
// Returns an empty UserMessage for nil errors.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.msg
		}
	}

	return defaultMessage
}

// FormatUserError returns a formatted user-friendly error string.
// Parse failures keep their line and column so the row can be found.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		where := fmt.Sprintf("line %d", pe.Line)
		if pe.Column != "" {
			where += fmt.Sprintf(", column %q", pe.Column)
		}
		return fmt.Sprintf("%s at %s (Code: %s). %s", msg.Message, where, msg.Code, msg.Action)
	}

	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// UserError wraps a technical error with a user-friendly message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError from a technical error.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
