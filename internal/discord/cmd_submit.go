package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// SubmitCommand returns the drop submission command definition and handler.
// The submission is posted to the review channel for a reviewer decision; no
// points change hands until a reviewer accepts it.
func (b *Bot) SubmitCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "submit",
		Description: "Submit a drop for review",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Your team",
				Required:    true,
				Choices:     b.teamChoices(),
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "tier",
				Description:  "Content tier",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "source",
				Description:  "Boss or activity the item dropped from",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item name",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "screenshot",
				Description: "Screenshot of the drop",
				Required:    false,
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

		data := i.ApplicationCommandData()
		var team, tier, source, item, screenshotURL string
		for _, opt := range data.Options {
			switch opt.Name {
			case "team":
				team = opt.StringValue()
			case "tier":
				tier = opt.StringValue()
			case "source":
				source = opt.StringValue()
			case "item":
				item = opt.StringValue()
			case "screenshot":
				if id, ok := opt.Value.(string); ok && data.Resolved != nil {
					if att, ok := data.Resolved.Attachments[id]; ok {
						screenshotURL = att.URL
					}
				}
			}
		}

		// Register up front so the submitter shows on the leaderboard even
		// before their first accepted drop.
		if _, err := client.RegisterParticipant(user.ID, user.Username, team); err != nil {
			slog.Error("Failed to register participant", "error", err)
			respondError(s, i, "Error connecting to the scoring server.")
			return
		}

		pendingID := b.pending.Add(&PendingSubmission{
			Team:          team,
			Tier:          tier,
			Source:        source,
			Item:          item,
			DiscordID:     user.ID,
			Username:      user.Username,
			ScreenshotURL: screenshotURL,
		})

		embed := &discordgo.MessageEmbed{
			Title: "📥 Drop Submission",
			Description: fmt.Sprintf("**%s** submitted **%s**\n%s › %s › %s",
				user.Username, item, team, tier, source),
			Color: embedColorPending,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "FrenzyBot",
			},
		}
		if screenshotURL != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: screenshotURL}
		}

		_, err := s.ChannelMessageSendComplex(b.ReviewChannelID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept",
							Style:    discordgo.SuccessButton,
							CustomID: componentIDAccept + pendingID,
						},
						discordgo.Button{
							Label:    "Deny",
							Style:    discordgo.DangerButton,
							CustomID: componentIDDeny + pendingID,
						},
					},
				},
			},
		})
		if err != nil {
			slog.Error("Failed to post review message", "error", err, "channel", b.ReviewChannelID)
			respondError(s, i, "Could not reach the review channel.")
			return
		}

		confirmation := fmt.Sprintf("✅ **%s** submitted for review. You'll get a DM once it's decided.", item)
		respondContent(s, i, confirmation)
	}

	return cmd, handler
}
