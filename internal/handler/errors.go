package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "Invalid user_id parameter"
	ErrMsgInvalidNewsID     = "Invalid news id"

	// Case engine messages
	ErrMsgOpenCaseFailed  = "Failed to open case"
	ErrMsgListCasesFailed = "Failed to load cases"
	ErrMsgCaseNotFound    = "Case not found"

	// Inventory messages
	ErrMsgGetInventoryFailed = "Failed to load inventory"
	ErrMsgSellItemFailed     = "Failed to sell item"
	ErrMsgInventoryFull      = "Inventory is full"
	ErrMsgSlotEmpty          = "That slot is empty"
	ErrMsgNotSellable        = "Only case rewards can be sold"
	ErrMsgPlayerOnline       = "Log out of the game first"

	// Economy messages
	ErrMsgNotEnoughMoney = "Not enough funds"

	// Auth messages
	ErrMsgLoginFailed        = "Login failed"
	ErrMsgInvalidCredentials = "Invalid login or password"
	ErrMsgIPBlocked          = "Too many failed attempts. Try again later"
	ErrMsgPermissionDenied   = "Permission denied"

	// Lookup messages
	ErrMsgUserNotFound = "User not found"
	ErrMsgItemNotFound = "Item not found"
	ErrMsgNewsNotFound = "News entry not found"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later"
)

// Success messages for API responses
const (
	MsgIPUnblockedSuccess = "IP unblocked successfully"
	MsgNewsDeletedSuccess = "News entry deleted"
)
