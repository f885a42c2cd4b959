package discord

// Friendly message constants for Discord responses
const (
	MsgTeamNotFound = "🏳️ **Team Not Found**\nThat team isn't part of the current frenzy."

	MsgItemNotFound = "❓ **Not In The Catalog**\nMaybe check the spelling?"

	MsgItemMaxed = "🧢 **Already Maxed**\nThe team has no more points to gain from that item."

	MsgParticipantNotFound = "👤 **Participant Not Found**\nHave they submitted anything yet?"

	MsgCatalogBroken = "🛠️ **Catalog Problem**\nThe team catalog looks broken. Poke an organizer."

	MsgNotReviewer = "🚫 You need the reviewer role to decide submissions."

	MsgSubmissionExpired = "⌛ This submission is no longer pending. It may have been decided already."

	MsgGenericError = "❌ Something went wrong."
)
