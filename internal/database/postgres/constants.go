package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Empty JSONB documents used for new rows
const (
	EmptyObtainedItemsJSON = `{}`
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToMarshalCatalog   = "failed to marshal catalog"
	ErrMsgFailedToUnmarshalCatalog = "failed to unmarshal catalog"
	ErrMsgFailedToGetCatalog       = "failed to get catalog"
	ErrMsgFailedToSaveCatalog      = "failed to save catalog"
	ErrMsgFailedToListTeams        = "failed to list teams"
)

// Error Messages - Participant Operations
const (
	ErrMsgFailedToGetParticipant    = "failed to get participant"
	ErrMsgFailedToInsertParticipant = "failed to insert participant"
	ErrMsgFailedToUpdateParticipant = "failed to update participant"
	ErrMsgFailedToListParticipants  = "failed to list participants"
	ErrMsgFailedToMarshalObtained   = "failed to marshal obtained items"
	ErrMsgFailedToUnmarshalObtained = "failed to unmarshal obtained items"
	ErrMsgFailedToInsertSubmission  = "failed to insert submission"
	ErrMsgFailedToListSubmissions   = "failed to list submissions"
	ErrMsgParticipantAlreadyExists  = "participant already exists"
)
