package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Activity errors
	ErrMsgUnknownActivity = "unknown activity"

	// Shop errors
	ErrMsgShopSlotEmpty = "shop slot is empty"

	// Generator errors
	ErrMsgGeneratorUnavailable = "text generator unavailable"
	ErrMsgMalformedGeneration  = "malformed generator response"

	// Database errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrUnknownActivity = errors.New(ErrMsgUnknownActivity)

	ErrShopSlotEmpty = errors.New(ErrMsgShopSlotEmpty)

	ErrGeneratorUnavailable = errors.New(ErrMsgGeneratorUnavailable)
	ErrMalformedGeneration  = errors.New(ErrMsgMalformedGeneration)

	ErrTxClosed = errors.New(ErrMsgTxClosed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
