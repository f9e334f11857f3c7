package domain

import "errors"

// Error message string constants - single source of truth for error
// messages. Tests reference these in assert.Contains checks.
const (
	ErrMsgInvalidArgument = "invalid argument"

	// Not-found errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgCaseNotFound = "case not found"
	ErrMsgItemNotFound = "item not found"
	ErrMsgNewsNotFound = "news entry not found"

	// Case engine errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInventoryFull     = "inventory is full"

	// Inventory errors
	ErrMsgSlotEmpty    = "slot is empty"
	ErrMsgNotSellable  = "item is not sellable"
	ErrMsgPlayerOnline = "player is in game"

	// Auth errors
	ErrMsgInvalidCredentials = "invalid login or password"
	ErrMsgIPBlocked          = "ip address is blocked"
	ErrMsgPermissionDenied   = "permission denied"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors. Wrap with fmt.Errorf("%w: detail", domain.ErrXxx)
// for additional context; handlers map them to HTTP responses with
// errors.Is.
var (
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrNewsNotFound = errors.New(ErrMsgNewsNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInventoryFull     = errors.New(ErrMsgInventoryFull)

	ErrSlotEmpty    = errors.New(ErrMsgSlotEmpty)
	ErrNotSellable  = errors.New(ErrMsgNotSellable)
	ErrPlayerOnline = errors.New(ErrMsgPlayerOnline)

	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrIPBlocked          = errors.New(ErrMsgIPBlocked)
	ErrPermissionDenied   = errors.New(ErrMsgPermissionDenied)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
