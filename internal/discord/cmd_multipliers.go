package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MultipliersCommand returns the source multiplier report command.
func (b *Bot) MultipliersCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "multipliers",
		Description: "Show the effective point multiplier for every source",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team to inspect",
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

		factors, err := client.GetSourceMultipliers(team)
		if err != nil {
			slog.Error("Failed to get source multipliers", "error", err, "team", team)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		for _, f := range factors {
			if f.Factor == 1.0 {
				continue
			}
			line := fmt.Sprintf("**%s** (%s): ×%.2f", f.Source, f.Tier, f.Factor)
			if len(f.AppliedBy) > 0 {
				line += " via " + strings.Join(f.AppliedBy, ", ")
			}
			if f.Completed {
				line += " 🎉"
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if sb.Len() == 0 {
			sb.WriteString("No multipliers active yet. Go unlock some!")
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("⚡ Active Multipliers — %s", team),
			Description: sb.String(),
			Color:       0x3498db, // blue
			Footer: &discordgo.MessageEmbedFooter{
				Text: "FrenzyBot • 🎉 = completion bonus",
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

// teamChoices builds option choices from the configured team list.
func (b *Bot) teamChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(b.Teams))
	for _, team := range b.Teams {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  team,
			Value: team,
		})
	}
	return choices
}
