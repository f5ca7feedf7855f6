package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch data.Name {
	case "item", "recycle", "sources":
		choices = itemChoices(client, focusedValue(i))
	case "quest":
		choices = questChoices(client, focusedValue(i))
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Warn("Failed to send autocomplete choices", "command", data.Name, "error", err)
	}
}

// focusedValue returns the text the user is typing
func focusedValue(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}

// itemChoices suggests items through the fuzzy search, or the first catalog items
// while nothing has been typed
func itemChoices(client *APIClient, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)

	if query == "" {
		items, err := client.ListItems()
		if err != nil {
			slog.Warn("Failed to list items for autocomplete", "error", err)
			return choices
		}
		for _, it := range items {
			if len(choices) == maxChoices {
				break
			}
			choices = append(choices, choice(it.Name, it.ID))
		}
		return choices
	}

	matches, err := client.SearchItems(query, maxChoices)
	if err != nil {
		slog.Warn("Failed to search items for autocomplete", "error", err)
		return choices
	}
	for _, m := range matches {
		choices = append(choices, choice(m.Item.Name, m.Item.ID))
	}
	return choices
}

// questChoices suggests quests whose name, trader or id contains the query
func questChoices(client *APIClient, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)

	board, err := client.GetQuestBoard()
	if err != nil {
		slog.Warn("Failed to load quests for autocomplete", "error", err)
		return choices
	}

	query = strings.ToLower(query)
	for _, trader := range board.Traders {
		for _, st := range trader.Quests {
			name := st.Quest.Name.Resolve(client.Language)
			if query != "" &&
				!strings.Contains(strings.ToLower(name), query) &&
				!strings.Contains(strings.ToLower(trader.Trader), query) &&
				!strings.Contains(strings.ToLower(st.Quest.ID), query) {
				continue
			}
			choices = append(choices, choice(name+" ("+trader.Trader+")", st.Quest.ID))
			if len(choices) == maxChoices {
				return choices
			}
		}
	}
	return choices
}

func choice(name, value string) *discordgo.ApplicationCommandOptionChoice {
	return &discordgo.ApplicationCommandOptionChoice{
		Name:  truncate(name, maxChoiceNameLength),
		Value: value,
	}
}
