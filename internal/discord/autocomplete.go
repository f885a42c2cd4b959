package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxAutocompleteChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func (b *Bot) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "submit":
		b.handleCatalogAutocomplete(s, i)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleCatalogAutocomplete suggests tier, source or item names depending on
// which option has focus, narrowing by the options already filled in.
func (b *Bot) handleCatalogAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var team, tier, source string
	var focusedName, focusedValue string
	for _, opt := range data.Options {
		if opt.Focused {
			focusedName = opt.Name
			focusedValue = strings.ToLower(opt.StringValue())
			continue
		}
		switch opt.Name {
		case "team":
			team = opt.StringValue()
		case "tier":
			tier = opt.StringValue()
		case "source":
			source = opt.StringValue()
		}
	}

	var names []string
	var err error
	switch focusedName {
	case "tier":
		names, err = b.Client.ListTiers(team)
	case "source":
		names, err = b.Client.ListSources(team, tier)
	case "item":
		names, err = b.Client.ListItems(team, tier, source)
	default:
		return
	}
	if err != nil {
		slog.Error("Failed to fetch autocomplete names", "error", err, "option", focusedName)
		// Respond with no choices rather than letting the interaction hang
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxAutocompleteChoices)
	for _, name := range names {
		if focusedValue != "" && !strings.Contains(strings.ToLower(name), focusedValue) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
