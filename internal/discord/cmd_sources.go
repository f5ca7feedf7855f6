package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

// SourcesCommand lists the items that can be recycled into a material
func SourcesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minDepth := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "sources",
		Description: "Find items that recycle into a material",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "material",
				Description:  "Material to obtain",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "sort",
				Description: "Ordering of the results",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Efficiency", Value: string(recycling.SortByEfficiency)},
					{Name: "Fewest steps", Value: string(recycling.SortBySteps)},
					{Name: "Most material", Value: string(recycling.SortByQuantity)},
					{Name: "Cheapest", Value: string(recycling.SortByValue)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "max_depth",
				Description: "Maximum recycling steps",
				MinValue:    &minDepth,
				MaxValue:    domain.MaxChainDepth,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		id, err := resolveItemID(client, stringOption(opts, "material"))
		if err != nil {
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		paths, err := client.FindSources(id, intOption(opts, "max_depth", 0), stringOption(opts, "sort"))
		if err != nil {
			slog.Warn("Source search failed", "item", id, "error", err)
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		title := "🔎 Sources of " + id
		if len(paths) == 0 {
			sendEmbed(s, i, createEmbed(title, MsgNoSources, ColorNeutral))
			return
		}
		lang := client.Language
		title = "🔎 Sources of " + paths[0].TargetMaterial.Name.Resolve(lang)
		sendEmbed(s, i, createEmbed(title, formatPaths(paths, lang, maxSourcesShown), ColorSources))
	}

	return cmd, handler
}
