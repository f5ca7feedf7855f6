package handler

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s"

	ErrMsgGetItemsFailed       = "Failed to retrieve items"
	ErrMsgGetChainFailed       = "Failed to build recycling chain"
	ErrMsgGetTerminalsFailed   = "Failed to compute terminal materials"
	ErrMsgFindSourcesFailed    = "Failed to find recycling sources"
	ErrMsgGetMetricsFailed     = "Failed to compute recycling metrics"
	ErrMsgGetQuestsFailed      = "Failed to retrieve quests"
	ErrMsgToggleQuestFailed    = "Failed to toggle quest"
	ErrMsgCalculateFailed      = "Failed to calculate requirements"
	ErrMsgGetProgressFailed    = "Failed to retrieve progress"
	ErrMsgUpdateProgressFailed = "Failed to update progress"
	ErrMsgResetProgressFailed  = "Failed to reset progress"
)

// Success messages for API responses
const (
	MsgProgressReset = "Progress reset successfully"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidKeyError     = "Invalid selection key"
	ErrMsgInvalidLevelError   = "Invalid workstation level"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgQuestNotFoundError  = "Quest not found"
	ErrMsgStationNotFoundErr  = "Workstation not found"
	ErrMsgProjectNotFoundErr  = "Project not found"
	ErrMsgProfileNotFoundErr  = "Profile not found"
	ErrMsgUnavailableError    = "Catalog is temporarily unavailable. Please try again later."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgServiceUnavailable  = "database connection failed"
	ErrMsgResourceNotFoundErr = "Resource not found."
)
