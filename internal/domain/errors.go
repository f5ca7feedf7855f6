package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound        = "item not found"
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgWorkstationNotFound = "workstation not found"
	ErrMsgProjectNotFound     = "project not found"
	ErrMsgProfileNotFound     = "profile not found"

	ErrMsgInvalidInput        = "invalid input"
	ErrMsgInvalidSelectionKey = "invalid selection key"
	ErrMsgInvalidLevel        = "invalid workstation level"

	ErrMsgCatalogUnavailable = "catalog unavailable"
	ErrMsgDatabaseError      = "database error"
	ErrMsgTxClosed           = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound        = errors.New(ErrMsgItemNotFound)
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrWorkstationNotFound = errors.New(ErrMsgWorkstationNotFound)
	ErrProjectNotFound     = errors.New(ErrMsgProjectNotFound)
	ErrProfileNotFound     = errors.New(ErrMsgProfileNotFound)

	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
	ErrInvalidSelectionKey = errors.New(ErrMsgInvalidSelectionKey)
	ErrInvalidLevel        = errors.New(ErrMsgInvalidLevel)

	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)
	ErrDatabaseError      = errors.New(ErrMsgDatabaseError)
)
