package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand counts a handled command
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().Unix())
}

// HandleHealth reports the gateway connection and API reachability
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady
	apiReachable := h.bot.Client != nil && h.bot.Client.Healthz()

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if ts := lastCommandUnix.Load(); ts > 0 {
		health.LastCommandTime = time.Unix(ts, 0).UTC()
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to write health response", "error", err)
	}
}
