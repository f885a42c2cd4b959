package domain

import "time"

// Participant is one competitor's personal ledger. The catalog tracks
// team-wide progress; the participant tracks individual attribution. The sum
// of participant counts for an item never exceeds the catalog counter.
type Participant struct {
	ID        string `json:"participant_id"`
	DiscordID string `json:"discord_id"`
	Username  string `json:"username"`
	Team      string `json:"clan"`

	// TotalPoints mirrors the sum of accepted-submission deltas and is
	// re-derived from ObtainedItems by the periodic recalculation pass.
	TotalPoints float64 `json:"total_gained"`

	// ObtainedItems maps fully-qualified item keys (tier.source.item) to the
	// count this participant has had accepted.
	ObtainedItems map[string]int `json:"obtained_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubmissionStatus is the terminal state of a reviewed submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionAccepted SubmissionStatus = "accepted"
	// SubmissionDenied is a reviewer decision; SubmissionRejected is the
	// automatic AlreadyMaxed policy refusal. The two are kept distinct in
	// the audit log.
	SubmissionDenied   SubmissionStatus = "denied"
	SubmissionRejected SubmissionStatus = "rejected"
)

// SubmissionRecord is one append-only audit entry in a participant's history.
type SubmissionRecord struct {
	ID            string           `json:"submission_id"`
	ParticipantID string           `json:"participant_id"`
	Team          string           `json:"team"`
	Tier          string           `json:"tier"`
	Source        string           `json:"source"`
	Item          string           `json:"item"`
	Status        SubmissionStatus `json:"status"`
	PointsAwarded float64          `json:"points_awarded"`
	ReviewerID    string           `json:"reviewer_id"`
	ScreenshotURL string           `json:"screenshot_url,omitempty"`
	DecidedAt     time.Time        `json:"decided_at"`
}

// LeaderboardEntry is one row of the per-team points ranking.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	Username    string  `json:"username"`
	DiscordID   string  `json:"discord_id"`
	TotalPoints float64 `json:"total_points"`
}

// SourceFactor reports the effective multiplier currently applied to one
// source, with the names of the unlocked multipliers contributing to it.
type SourceFactor struct {
	Tier      string   `json:"tier"`
	Source    string   `json:"source"`
	Factor    float64  `json:"factor"`
	AppliedBy []string `json:"applied_by,omitempty"`
	Completed bool     `json:"completed"`
}
