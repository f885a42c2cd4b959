package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

const statusHistoryLimit = 5

// StatusCommand returns the personal status command: total points and the
// most recent submission decisions.
func (b *Bot) StatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "status",
		Description: "Show your points and recent submissions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Your team",
				Required:    true,
				Choices:     b.teamChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := resolveUser(i)
		if user == nil {
			return
		}
		team := i.ApplicationCommandData().Options[0].StringValue()

		p, err := client.RegisterParticipant(user.ID, user.Username, team)
		if err != nil {
			slog.Error("Failed to resolve participant", "error", err)
			respondError(s, i, "Error connecting to the scoring server.")
			return
		}

		profile, err := client.GetProfile(p.ID, statusHistoryLimit)
		if err != nil {
			slog.Error("Failed to get profile", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Total points:** %.1f\n**Drops credited:** %d\n",
			profile.Participant.TotalPoints, len(profile.Participant.ObtainedItems))

		if len(profile.Recent) > 0 {
			sb.WriteString("\n**Recent submissions**\n")
			for _, rec := range profile.Recent {
				icon := "❌"
				if rec.Status == domain.SubmissionAccepted {
					icon = "✅"
				}
				fmt.Fprintf(&sb, "%s %s (%s) %+.1f\n", icon, rec.Item, rec.Source, rec.PointsAwarded)
			}
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🏆 %s — %s", user.Username, team),
			Description: sb.String(),
			Color:       0x9b59b6, // purple
			Footer: &discordgo.MessageEmbedFooter{
				Text: "FrenzyBot",
			},
		}

		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		}); err != nil {
			slog.Error("Failed to send response", "error", err)
		}
	}

	return cmd, handler
}
