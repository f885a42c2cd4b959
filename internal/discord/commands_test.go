package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	base := func() *discordgo.ApplicationCommand {
		return &discordgo.ApplicationCommand{
			Name:        "submit",
			Description: "Submit a drop for review",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "Your team",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "ironfoundry", Value: "ironfoundry"},
					},
				},
			},
		}
	}

	t.Run("Identical sets are equal", func(t *testing.T) {
		assert.True(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{base()},
		))
	})

	t.Run("Different lengths are unequal", func(t *testing.T) {
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			nil,
		))
	})

	t.Run("Changed description is unequal", func(t *testing.T) {
		changed := base()
		changed.Description = "Something else"
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{changed},
		))
	})

	t.Run("Changed option choice is unequal", func(t *testing.T) {
		changed := base()
		changed.Options[0].Choices[0].Value = "ironclad"
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{changed},
		))
	})

	t.Run("Added option is unequal", func(t *testing.T) {
		changed := base()
		changed.Options = append(changed.Options, &discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionString,
			Name: "extra",
		})
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{changed},
		))
	})
}

func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()
	cmd := &discordgo.ApplicationCommand{Name: "ping", Description: "test"}

	called := false
	registry.Register(cmd, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		called = true
	})

	assert.Contains(t, registry.Commands, "ping")
	assert.Contains(t, registry.Handlers, "ping")

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
		},
	}
	registry.Handle(nil, i, nil)
	assert.True(t, called)
}
