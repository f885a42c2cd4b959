package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand returns the team leaderboard command.
func (b *Bot) LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the team's top point earners",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team to rank",
				Required:    true,
				Choices:     b.teamChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		team := i.ApplicationCommandData().Options[0].StringValue()

		entries, err := client.GetLeaderboard(team, 0)
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err, "team", team)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		medals := []string{"🥇", "🥈", "🥉"}
		for _, e := range entries {
			prefix := fmt.Sprintf("%d.", e.Rank)
			if e.Rank <= len(medals) {
				prefix = medals[e.Rank-1]
			}
			fmt.Fprintf(&sb, "%s **%s** — %.1f\n", prefix, e.Username, e.TotalPoints)
		}
		if sb.Len() == 0 {
			sb.WriteString("Nobody has scored yet. Be the first!")
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("📊 Leaderboard — %s", team),
			Description: sb.String(),
			Color:       0xe67e22, // dark orange
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
