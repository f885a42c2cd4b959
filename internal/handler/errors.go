package handler

import (
	"errors"
	"net/http"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// Request decoding error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "limit must be a positive integer"
)

// AllLeaderboardEntries is passed as the leaderboard limit when the caller
// wants the whole roster. No clan comes anywhere near this size.
const AllLeaderboardEntries = 1000

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgTeamNotFoundError        = "Team not found"
	ErrMsgTierNotFoundError        = "Tier not found"
	ErrMsgSourceNotFoundError      = "Source not found"
	ErrMsgItemNotFoundError        = "Item not found"
	ErrMsgParticipantNotFoundError = "Participant not found"
	ErrMsgItemMaxedError           = "That item has already reached its maximum obtainable count"
	ErrMsgSubmissionNotFoundError  = "Submission not found"
	ErrMsgSubmissionDecidedError   = "Submission has already been decided"
	ErrMsgInvalidCatalogError      = "Team catalog is misconfigured. Contact an organizer"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, ErrMsgTeamNotFoundError
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, ErrMsgTierNotFoundError
	case errors.Is(err, domain.ErrSourceNotFound):
		return http.StatusNotFound, ErrMsgSourceNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, ErrMsgParticipantNotFoundError
	case errors.Is(err, domain.ErrItemMaxed):
		return http.StatusConflict, ErrMsgItemMaxedError
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return http.StatusNotFound, ErrMsgSubmissionNotFoundError
	case errors.Is(err, domain.ErrSubmissionDecided):
		return http.StatusConflict, ErrMsgSubmissionDecidedError
	case errors.Is(err, domain.ErrInvalidCatalog):
		return http.StatusInternalServerError, ErrMsgInvalidCatalogError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
