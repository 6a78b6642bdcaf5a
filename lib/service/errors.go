package service

import "errors"

// Domain-level error values. Controllers map these onto the HTTP error
// responses; anything else that bubbles up is an upstream failure and is
// surfaced verbatim.
var (
	ErrLoginRequired           = errors.New("owner login is required")
	ErrAmountNotPositive       = errors.New("amount must be greater than zero")
	ErrNegativeUnapprovedValue = errors.New("unapproved invoice value must not be negative")
	ErrInvalidEntryType        = errors.New("unknown entry type")
	ErrDuplicateRecord         = errors.New("a record with this identifier already exists")
	ErrRecordNotFound          = errors.New("record not found")
)
