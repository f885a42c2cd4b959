package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Component custom ID prefixes. The pending submission ID follows the prefix.
const (
	componentIDAccept = "submission:accept:"
	componentIDDeny   = "submission:deny:"
)

// Embed colors for the review lifecycle
const (
	embedColorPending  = 0xf39c12 // orange
	embedColorAccepted = 0x2ecc71 // green
	embedColorDenied   = 0xe74c3c // red
)

// HandleComponent routes button presses on review messages.
func (b *Bot) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, componentIDAccept):
		b.handleDecision(s, i, strings.TrimPrefix(customID, componentIDAccept), true)
	case strings.HasPrefix(customID, componentIDDeny):
		b.handleDecision(s, i, strings.TrimPrefix(customID, componentIDDeny), false)
	default:
		slog.Warn("Unhandled component interaction", "custom_id", customID)
	}
}

func (b *Bot) handleDecision(s *discordgo.Session, i *discordgo.InteractionCreate, pendingID string, accept bool) {
	reviewer := resolveUser(i)
	if reviewer == nil {
		return
	}

	if !b.isReviewer(i) {
		respondEphemeral(s, i, MsgNotReviewer)
		return
	}

	sub := b.pending.Take(pendingID)
	if sub == nil {
		respondEphemeral(s, i, MsgSubmissionExpired)
		return
	}

	// Acknowledge before the API round trip
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error("Failed to acknowledge component", "error", err)
		b.pending.Put(pendingID, sub)
		return
	}

	if accept {
		b.acceptSubmission(s, i, pendingID, sub, reviewer)
	} else {
		b.denySubmission(s, i, pendingID, sub, reviewer)
	}
}

func (b *Bot) acceptSubmission(s *discordgo.Session, i *discordgo.InteractionCreate, pendingID string, sub *PendingSubmission, reviewer *discordgo.User) {
	result, err := b.Client.AcceptSubmission(sub.Team, sub.Tier, sub.Source, sub.Item,
		sub.DiscordID, sub.Username, reviewer.ID, sub.ScreenshotURL)
	if err != nil {
		slog.Error("Failed to accept submission", "error", err, "item", sub.Item)
		b.pending.Put(pendingID, sub)
		b.followUp(s, i, formatFriendlyError(err.Error()))
		return
	}

	decision := fmt.Sprintf("Accepted by %s • +%.1f points", reviewer.Username, result.PointsAwarded)
	b.finalizeReviewMessage(s, i, sub, decision, embedColorAccepted)

	// Unlock announcements go to the review channel where everyone watches
	for _, name := range result.NewlyUnlocked {
		msg := fmt.Sprintf("🔓 **Multiplier Unlocked!** %s is now active for **%s**.", name, sub.Team)
		if _, err := s.ChannelMessageSend(b.ReviewChannelID, msg); err != nil {
			slog.Error("Failed to announce unlock", "error", err, "multiplier", name)
		}
	}

	dm := fmt.Sprintf("✅ Your **%s** submission was accepted! +%.1f points (total %.1f).",
		sub.Item, result.PointsAwarded, result.ParticipantTotal)
	b.notifySubmitter(s, sub.DiscordID, dm)
}

func (b *Bot) denySubmission(s *discordgo.Session, i *discordgo.InteractionCreate, pendingID string, sub *PendingSubmission, reviewer *discordgo.User) {
	err := b.Client.DenySubmission(sub.Team, sub.Tier, sub.Source, sub.Item,
		sub.DiscordID, sub.Username, reviewer.ID)
	if err != nil {
		slog.Error("Failed to deny submission", "error", err, "item", sub.Item)
		b.pending.Put(pendingID, sub)
		b.followUp(s, i, formatFriendlyError(err.Error()))
		return
	}

	decision := fmt.Sprintf("Denied by %s", reviewer.Username)
	b.finalizeReviewMessage(s, i, sub, decision, embedColorDenied)

	dm := fmt.Sprintf("❌ Your **%s** submission was denied. Check with a reviewer if that seems wrong.", sub.Item)
	b.notifySubmitter(s, sub.DiscordID, dm)
}

// finalizeReviewMessage rewrites the review embed with the decision and strips
// the buttons so it cannot be decided twice.
func (b *Bot) finalizeReviewMessage(s *discordgo.Session, i *discordgo.InteractionCreate, sub *PendingSubmission, decision string, color int) {
	embed := &discordgo.MessageEmbed{
		Title: "📥 Drop Submission",
		Description: fmt.Sprintf("**%s** submitted **%s**\n%s › %s › %s\n\n%s",
			sub.Username, sub.Item, sub.Team, sub.Tier, sub.Source, decision),
		Color: color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "FrenzyBot",
		},
	}
	if sub.ScreenshotURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: sub.ScreenshotURL}
	}

	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &[]discordgo.MessageComponent{},
	}); err != nil {
		slog.Error("Failed to finalize review message", "error", err)
	}
}

// notifySubmitter DMs the submitter with the decision. DM failures are logged
// and swallowed since users can disable DMs.
func (b *Bot) notifySubmitter(s *discordgo.Session, discordID, message string) {
	channel, err := s.UserChannelCreate(discordID)
	if err != nil {
		slog.Warn("Failed to open DM channel", "error", err, "user", discordID)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, message); err != nil {
		slog.Warn("Failed to DM submitter", "error", err, "user", discordID)
	}
}

// followUp sends a follow-up message after a deferred message update.
func (b *Bot) followUp(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		slog.Error("Failed to send follow-up", "error", err)
	}
}

// respondEphemeral replies with a message only the pressing user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send ephemeral response", "error", err)
	}
}

// isReviewer reports whether the interaction member carries the reviewer role.
// An empty configured role means any member may review.
func (b *Bot) isReviewer(i *discordgo.InteractionCreate) bool {
	if b.ReviewerRoleID == "" {
		return true
	}
	if i.Member == nil {
		return false
	}
	for _, role := range i.Member.Roles {
		if role == b.ReviewerRoleID {
			return true
		}
	}
	return false
}
