package discord

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/bootstrap"
	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/server"
)

// newTestAPI serves the real API router over in-memory storage and the bundled catalog
func newTestAPI(t *testing.T) *APIClient {
	t.Helper()

	cfg := &config.Config{
		Port:            8080,
		LogLevel:        "error",
		LogFormat:       "text",
		Environment:     "test",
		Version:         "test",
		Storage:         config.StorageMemory,
		CatalogCacheTTL: time.Minute,
		PathCacheSize:   16,
		PathCacheTTL:    time.Minute,
		DefaultLanguage: "en",
		PathMaxDepth:    10,
	}
	repos, err := bootstrap.InitializeRepositories(context.Background(), cfg)
	require.NoError(t, err)
	svc := bootstrap.InitializeServices(cfg, repos)

	ts := httptest.NewServer(server.NewRouter(bootstrap.ServerOptions(cfg), svc.ServerServices(repos)))
	t.Cleanup(ts.Close)

	client := NewAPIClient(ts.URL, "")
	client.RetryDelay = time.Millisecond
	return client
}

// recordedCall is one request the bot sent to Discord
type recordedCall struct {
	Method string
	Path   string
	Body   string
}

// fakeDiscord answers every Discord REST call with an empty object and records it
type fakeDiscord struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeDiscord) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Method: req.Method, Path: req.URL.Path, Body: string(body)})
	f.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

// lastEdit returns the body of the last interaction response edit
func (f *fakeDiscord) lastEdit() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == http.MethodPatch && strings.HasSuffix(f.calls[i].Path, "/messages/@original") {
			return f.calls[i].Body
		}
	}
	return ""
}

// lastCallback returns the body of the last interaction callback
func (f *fakeDiscord) lastCallback() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if strings.HasSuffix(f.calls[i].Path, "/callback") {
			return f.calls[i].Body
		}
	}
	return ""
}

func newFakeSession(t *testing.T) (*discordgo.Session, *fakeDiscord) {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	fake := &fakeDiscord{}
	s.Client = &http.Client{Transport: fake}
	return s, fake
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value),
	}
}

func newInteraction(typ discordgo.InteractionType, command string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Type:  typ,
			Token: "interaction-token",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    command,
				Options: opts,
			},
		},
	}
}
