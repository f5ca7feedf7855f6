package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RecycleCommand shows the recycling tree of an item and what it finally breaks down into
func RecycleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minQty := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "recycle",
		Description: "Show what an item recycles into",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item to recycle",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				MinValue:    &minQty,
				MaxValue:    10000,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		quantity := intOption(opts, "quantity", 1)

		id, err := resolveItemID(client, stringOption(opts, "item"))
		if err != nil {
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		chain, err := client.GetChain(id, quantity)
		if err != nil {
			slog.Warn("Chain lookup failed", "item", id, "error", err)
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}
		terminals, err := client.GetTerminals(id, quantity)
		if err != nil {
			respondFriendlyError(s, i, err, MsgItemNotFound)
			return
		}

		lang := client.Language
		title := fmt.Sprintf("♻️ Recycling %dx %s", quantity, chain.Item.Name.Resolve(lang))
		embed := createEmbed(title, formatChainTree(chain, lang), ColorRecycle)
		if len(terminals) > 0 && !chain.IsLeaf() {
			embed.Fields = []*discordgo.MessageEmbedField{{
				Name:  "Final materials",
				Value: truncate(formatMaterials(terminals, chainNames(chain, lang)), 1024),
			}}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
