package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// QuestCommand shows a quest with its objectives and item requirements
func QuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest",
		Description: "Look up a quest",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "quest",
				Description:  "Quest name",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		state, err := client.GetQuest(stringOption(optionMap(i), "quest"))
		if err != nil {
			slog.Warn("Quest lookup failed", "error", err)
			respondFriendlyError(s, i, err, MsgQuestNotFound)
			return
		}

		// item names are best effort; ids are shown when the list is unavailable
		names := make(map[string]string)
		if items, err := client.ListItems(); err == nil {
			for _, it := range items {
				names[it.ID] = it.Name
			}
		}

		sendEmbed(s, i, questEmbed(state, names, client.Language))
	}

	return cmd, handler
}

func questEmbed(state *domain.QuestState, itemNames map[string]string, lang string) *discordgo.MessageEmbed {
	q := state.Quest

	var objectives strings.Builder
	for _, o := range q.Objectives {
		fmt.Fprintf(&objectives, "• %s\n", o.Resolve(lang))
	}

	embed := createEmbed("📜 "+q.Name.Resolve(lang), objectives.String(), ColorQuest)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Trader", Value: q.Trader, Inline: true},
		{Name: "XP", Value: fmt.Sprint(q.XP), Inline: true},
	}
	if len(q.RequiredItems) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Required items", Value: formatQuantities(q.RequiredItems, itemNames),
		})
	}
	if len(q.RewardItems) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Rewards", Value: formatQuantities(q.RewardItems, itemNames),
		})
	}
	if len(state.NextQuestIDs) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Unlocks", Value: strings.Join(state.NextQuestIDs, ", "),
		})
	}
	return embed
}

func formatQuantities(items []domain.ItemQuantity, names map[string]string) string {
	materials := make(map[string]int, len(items))
	for _, it := range items {
		materials[it.ItemID] += it.Quantity
	}
	return truncate(formatMaterials(materials, names), 1024)
}
