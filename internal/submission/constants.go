package submission

// Log messages
const (
	LogMsgSubmissionAccepted = "submission accepted"
	LogMsgSubmissionRejected = "submission rejected, item already maxed"
	LogMsgRollbackFailed     = "catalog rollback after failed participant save failed"
	LogMsgPublishFailed      = "failed to publish event"
	LogMsgAuditAppendFailed  = "failed to append audit record"
)

// Error formats
const (
	ErrFmtSaveCatalogFailed     = "failed to save catalog: %w"
	ErrFmtSaveParticipantFailed = "failed to save participant: %w"
)
