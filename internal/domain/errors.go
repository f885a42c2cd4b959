package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgTeamNotFound        = "team not found"
	ErrMsgTierNotFound        = "tier not found"
	ErrMsgSourceNotFound      = "source not found"
	ErrMsgItemNotFound        = "item not found"
	ErrMsgParticipantNotFound = "participant not found"

	// ErrMsgItemMaxed is a policy rejection, not a system fault: the item has
	// already reached its maximum scorable threshold.
	ErrMsgItemMaxed = "item already at maximum point threshold"

	ErrMsgSubmissionNotFound = "submission not found"
	ErrMsgSubmissionDecided  = "submission already decided"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgInvalidCatalog     = "invalid catalog document"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrTeamNotFound        = errors.New(ErrMsgTeamNotFound)
	ErrTierNotFound        = errors.New(ErrMsgTierNotFound)
	ErrSourceNotFound      = errors.New(ErrMsgSourceNotFound)
	ErrItemNotFound        = errors.New(ErrMsgItemNotFound)
	ErrParticipantNotFound = errors.New(ErrMsgParticipantNotFound)

	ErrItemMaxed = errors.New(ErrMsgItemMaxed)

	ErrSubmissionNotFound = errors.New(ErrMsgSubmissionNotFound)
	ErrSubmissionDecided  = errors.New(ErrMsgSubmissionDecided)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
)
