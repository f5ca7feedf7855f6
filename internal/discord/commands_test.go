package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCommands_Registered(t *testing.T) {
	registry := NewCommandRegistry()
	for _, factory := range DefaultCommands() {
		registry.Register(factory())
	}

	for _, name := range []string{"ping", "item", "recycle", "sources", "quest"} {
		assert.Contains(t, registry.Commands, name)
		assert.Contains(t, registry.Handlers, name)
	}
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		cmd, _ := RecycleCommand()
		ping, _ := PingCommand()
		return []*discordgo.ApplicationCommand{cmd, ping}
	}

	tests := []struct {
		name   string
		mutate func([]*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand
		want   bool
	}{
		{"identical", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand { return c }, true},
		{"reordered", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			return []*discordgo.ApplicationCommand{c[1], c[0]}
		}, true},
		{"missing command", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand { return c[:1] }, false},
		{"changed description", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			c[0].Description = "something else"
			return c
		}, false},
		{"changed option", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			c[0].Options[0].Required = false
			return c
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandsEqual(base(), tt.mutate(base())))
		})
	}
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &APIError{StatusCode: http.StatusNotFound}, MsgItemNotFound},
		{"bad request", &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid sort"}, MsgBadInput + "\nInvalid sort"},
		{"server error", &APIError{StatusCode: http.StatusServiceUnavailable}, MsgAPIUnavailable},
		{"transport error", errors.New("dial tcp: refused"), MsgAPIUnavailable},
		{"other status", &APIError{StatusCode: http.StatusTooManyRequests, Message: "Too many requests"}, "❌ Too many requests"},
		{"other status without message", &APIError{StatusCode: http.StatusConflict}, MsgGenericError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err, MsgItemNotFound))
		})
	}
}

func TestRecycleCommand(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := RecycleCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "recycle",
		stringOpt("item", "electrical_components"), intOpt("quantity", 2)), client)

	assert.Contains(t, fake.lastCallback(), `"type":5`, "response is deferred")
	edit := fake.lastEdit()
	require.NotEmpty(t, edit)
	assert.Contains(t, edit, "Recycling 2x Electrical Components")
	assert.Contains(t, edit, "4x **Wires**")
	assert.Contains(t, edit, "Final materials")
	assert.Contains(t, edit, "8x Plastic Parts")
}

func TestRecycleCommand_FreeTextItem(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := RecycleCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "recycle",
		stringOpt("item", "rusted toolbx")), client)

	assert.Contains(t, fake.lastEdit(), "Recycling 1x Rusted Toolbox")
}

func TestItemCommand_UnknownItem(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := ItemCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "item",
		stringOpt("item", "zzzzzzzzzzzzzzzz")), client)

	assert.Contains(t, fake.lastEdit(), "Item Not Found")
}

func TestItemCommand(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := ItemCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "item",
		stringOpt("item", "rusted_toolbox")), client)

	edit := fake.lastEdit()
	assert.Contains(t, edit, "Rusted Toolbox")
	assert.Contains(t, edit, "Recycle efficiency")
	assert.Contains(t, edit, "100%")
}

func TestSourcesCommand(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := SourcesCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "sources",
		stringOpt("material", "fabric"), stringOpt("sort", "steps")), client)

	edit := fake.lastEdit()
	assert.Contains(t, edit, "Sources of Fabric")
	assert.Contains(t, edit, "Durable Cloth")
}

func TestSourcesCommand_NoPaths(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := SourcesCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "sources",
		stringOpt("material", "leaper_pulse_unit")), client)

	assert.Contains(t, fake.lastEdit(), MsgNoSources)
}

func TestQuestCommand(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := QuestCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "quest",
		stringOpt("quest", "trash_into_treasure")), client)

	edit := fake.lastEdit()
	assert.Contains(t, edit, "Trash Into Treasure")
	assert.Contains(t, edit, "Shani")
	assert.Contains(t, edit, "15x Fabric")
	assert.Contains(t, edit, "2x Battery")
}

func TestQuestCommand_Unknown(t *testing.T) {
	client := newTestAPI(t)
	s, fake := newFakeSession(t)
	_, handler := QuestCommand()

	handler(s, newInteraction(discordgo.InteractionApplicationCommand, "quest",
		stringOpt("quest", "missing")), client)

	assert.Contains(t, fake.lastEdit(), "Quest Not Found")
}

func TestRegistryHandle_CountsCommands(t *testing.T) {
	client := newTestAPI(t)
	s, _ := newFakeSession(t)
	registry := NewCommandRegistry()
	registry.Register(PingCommand())

	before := commandCounter.Load()
	registry.Handle(s, newInteraction(discordgo.InteractionApplicationCommand, "ping"), client)
	registry.Handle(s, newInteraction(discordgo.InteractionApplicationCommand, "unknown"), client)

	assert.Equal(t, before+1, commandCounter.Load())
}
