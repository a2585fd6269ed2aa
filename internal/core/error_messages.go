package core

// error_messages.go defines the error kinds of an augmentation run and maps
// them to user-facing messages with codes for support reference.
//
// # Error Codes Reference
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Schema file not found
//	          Action: Run the tool from the directory holding CSV-Columns.csv
//	          Kind: ErrInputNotFound
//
//	FILE002 - Schema file is not a valid CSV table
//	          Action: Check quoting and that every row has the header's columns
//	          Kind: ErrMalformedInput
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL003 - Required field is empty
//	         Action: Give every row a column_name
//	         Kind: ErrMalformedInput wrapping a ValidationError on a row
//
//	VAL004 - Missing column
//	         Action: Add the missing fields to the header row
//	         Kind: ErrMalformedInput wrapping a ValidationError on the header
//
// # Output Errors (BAK001, WRT001)
//
//	BAK001 - Backup file already exists
//	         Action: Wait a second and run again
//	         Kind: ErrBackupCollision
//
//	WRT001 - Writing the schema file failed
//	         Action: Restore the newest .bak file, fix disk space or permissions, run again
//	         Kind: ErrWriteFailure
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error
//	         Action: Check the log for the technical error

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Load, Persist and Run wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	// ErrInputNotFound means the schema file does not exist. Nothing was changed.
	ErrInputNotFound = errors.New("schema file not found")

	// ErrMalformedInput means the schema file could not be read or parsed, or
	// lacks fields the rules depend on. Nothing was changed.
	ErrMalformedInput = errors.New("malformed schema file")

	// ErrBackupCollision means the original could not be renamed because a
	// backup with the same name is in the way. Nothing was changed.
	ErrBackupCollision = errors.New("backup file already exists")

	// ErrWriteFailure means persisting failed. If the backup rename already
	// happened, the primary path may be absent; the backup holds the pre-run data.
	ErrWriteFailure = errors.New("write schema file failed")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorKind maps an error kind to its user message. The first kind matched by
// errors.Is wins.
type errorKind struct {
	kind error
	msg  UserMessage
}

var errorKinds = []errorKind{
	{
		kind: ErrInputNotFound,
		msg: UserMessage{
			Message: "Schema file not found",
			Action:  "Run the tool from the directory holding CSV-Columns.csv",
			Code:    "FILE001",
		},
	},
	{
		kind: ErrBackupCollision,
		msg: UserMessage{
			Message: "Backup file already exists",
			Action:  "Wait a second and run again",
			Code:    "BAK001",
		},
	},
	{
		kind: ErrWriteFailure,
		msg: UserMessage{
			Message: "Writing the schema file failed",
			Action:  "Restore the newest .bak file, fix disk space or permissions, run again",
			Code:    "WRT001",
		},
	},
	{
		kind: ErrMalformedInput,
		msg: UserMessage{
			Message: "Schema file is not a valid CSV table",
			Action:  "Check quoting and that every row has the header's columns",
			Code:    "FILE002",
		},
	},
}

var (
	missingColumnMessage = UserMessage{
		Message: "Required column is missing from the header",
		Action:  "Add the missing fields to the header row",
		Code:    "VAL004",
	}
	emptyFieldMessage = UserMessage{
		Message: "Required field is empty",
		Action:  "Give every row a column_name",
		Code:    "VAL003",
	}
)

// defaultMessage is returned when no kind matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Malformed input is refined by the ValidationError it wraps, if any.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var verr *ValidationError
	if errors.Is(err, ErrMalformedInput) && errors.As(err, &verr) {
		switch verr.Message {
		case msgMissingField:
			return missingColumnMessage
		case msgEmptyField:
			return emptyFieldMessage
		}
	}

	for _, ek := range errorKinds {
		if errors.Is(err, ek.kind) {
			return ek.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}
	return NewUserError(err).Display()
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging.
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

// Display returns the message in the FormatUserError layout.
func (e *UserError) Display() string {
	return fmt.Sprintf("%s (Code: %s). %s", e.User.Message, e.User.Code, e.User.Action)
}

// NewUserError creates a UserError by mapping a technical error.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
