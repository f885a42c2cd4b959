package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const teamTopSources = 10

// TeamCommand returns the team snapshot command: the team total with a
// per-tier breakdown and the highest scoring sources.
func (b *Bot) TeamCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "team",
		Description: "Show a team's total points and score breakdown",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team to show",
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

		snapshot, err := client.GetTeam(team)
		if err != nil {
			slog.Error("Failed to get team snapshot", "error", err, "team", team)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Total: %.1f points**\n\n", snapshot.TotalPoints)

		type sourceScore struct {
			tier  string
			name  string
			score float64
		}
		var top []sourceScore
		tierNames := make([]string, 0, len(snapshot.Catalog.Tiers))
		for name := range snapshot.Catalog.Tiers {
			tierNames = append(tierNames, name)
		}
		sort.Strings(tierNames)

		for _, tierName := range tierNames {
			tier := snapshot.Catalog.Tiers[tierName]
			fmt.Fprintf(&sb, "**%s**: %.1f\n", tierName, tier.PointsSubtotal)
			for _, src := range tier.Sources {
				if src.PointsSubtotal > 0 {
					top = append(top, sourceScore{tierName, src.Name, src.PointsSubtotal})
				}
			}
		}

		sort.Slice(top, func(a, b int) bool { return top[a].score > top[b].score })
		if len(top) > teamTopSources {
			top = top[:teamTopSources]
		}
		if len(top) > 0 {
			sb.WriteString("\n**Top sources**\n")
			for _, t := range top {
				fmt.Fprintf(&sb, "• %s (%s): %.1f\n", t.name, t.tier, t.score)
			}
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🛡️ %s", team),
			Description: sb.String(),
			Color:       0x1abc9c, // teal
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
