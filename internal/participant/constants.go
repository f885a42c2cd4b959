package participant

// DefaultLeaderboardLimit caps leaderboard queries when no limit is given.
const DefaultLeaderboardLimit = 10

// DefaultHistoryLimit caps profile submission history when no limit is given.
const DefaultHistoryLimit = 10

// Log messages
const (
	LogMsgParticipantCreated   = "Participant created"
	LogMsgRecalculationStarted = "Participant recalculation started"
	LogMsgRecalculationDone    = "Participant recalculation completed"
	LogMsgRecalcTeamFailed     = "Recalculation skipped team"
	LogMsgRecalcUpdateFailed   = "Recalculation update failed"
	LogMsgPublishFailed        = "Failed to publish event"
)

// Error message formats
const (
	ErrFmtLoadCatalog      = "failed to load catalog for team %s: %w"
	ErrFmtListParticipants = "failed to list participants for team %s: %w"
	ErrFmtCreate           = "failed to create participant: %w"
)
