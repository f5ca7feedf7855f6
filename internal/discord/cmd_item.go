package discord

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/handler"
)

// ItemCommand shows an item with its recycling metrics
func ItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "item",
		Description: "Look up an item and its recycling value",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item name",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		id, err := resolveItemID(client, stringOption(optionMap(i), "item"))
		if err != nil {
			slog.Warn("Item lookup failed", "error", err)
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		item, err := client.GetItem(id)
		if err != nil {
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}
		metrics, err := client.GetItemMetrics(id)
		if err != nil {
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		sendEmbed(s, i, itemEmbed(item, metrics))
	}

	return cmd, handler
}

func itemEmbed(item *handler.ItemView, m *domain.RecyclingMetrics) *discordgo.MessageEmbed {
	embed := createEmbed("📦 "+item.Name, item.Description, ColorInfo)

	rarity := string(item.Rarity)
	if rarity == "" {
		rarity = "-"
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Category", Value: item.Category, Inline: true},
		{Name: "Rarity", Value: rarity, Inline: true},
		{Name: "Value", Value: strconv.Itoa(item.Value), Inline: true},
	}

	if m.CanBeRecycled {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Recycle efficiency", Value: fmt.Sprintf("%d%%", m.Efficiency), Inline: true},
			&discordgo.MessageEmbedField{Name: "Chain depth", Value: strconv.Itoa(m.Depth), Inline: true},
			&discordgo.MessageEmbedField{Name: "Output value", Value: strconv.Itoa(m.TotalValue), Inline: true},
		)
	} else {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Recycling", Value: "Terminal material", Inline: false})
	}
	return embed
}
