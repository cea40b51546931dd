package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/slack-go/slack/slackevents"

	"github.com/kubestellar/slackbot/pkg/blocks"
	"github.com/kubestellar/slackbot/pkg/bus"
	"github.com/kubestellar/slackbot/pkg/logger"
)

// requiredCommandFields must be present on every slash-command post.
// Presence checking only; Slack's cryptographic signature is not
// verified here.
var requiredCommandFields = []string{"command", "user_id", "user_name"}

func (g *Gateway) handleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Composition can't leak internals to the chat surface: any panic
	// becomes a generic ephemeral apology.
	defer func() {
		if rec := recover(); rec != nil {
			logger.ErrorCF("gateway", "Error handling slash command", map[string]interface{}{
				"panic": rec,
			})
			writeJSON(w, http.StatusInternalServerError, Response{
				ResponseType: respondEphemeral,
				Text:         "Sorry, something went wrong. Please try again later.",
			})
		}
	}()

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid request"})
		return
	}
	if !validateCommandForm(r.PostForm) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid request"})
		return
	}

	command := strings.TrimSpace(r.PostForm.Get("command"))
	userID := r.PostForm.Get("user_id")
	username := r.PostForm.Get("user_name")

	writeJSON(w, http.StatusOK, g.dispatch(command, userID, username))
}

func validateCommandForm(form url.Values) bool {
	for _, field := range requiredCommandFields {
		if !form.Has(field) {
			return false
		}
	}
	return true
}

func (g *Gateway) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.ErrorCF("gateway", "Failed to read event body", map[string]interface{}{
			"error": err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		// Unknown event types still get acknowledged; only a body that
		// isn't JSON at all is an error.
		if !json.Valid(body) {
			logger.ErrorCF("gateway", "Failed to parse event", map[string]interface{}{
				"error": err.Error(),
			})
			writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		logger.DebugCF("gateway", "Ignoring unrecognized event", map[string]interface{}{
			"error": err.Error(),
		})
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	if event.Type == slackevents.URLVerification {
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"challenge": challenge.Challenge})
		return
	}

	if event.Type == slackevents.CallbackEvent {
		switch inner := event.InnerEvent.Data.(type) {
		case *slackevents.TeamJoinEvent:
			g.handleTeamJoin(inner)
		case *slackevents.MemberJoinedChannelEvent:
			// Deliberate no-op: welcoming on every channel join would
			// spam active workspaces.
			logger.InfoCF("gateway", "User joined channel", map[string]interface{}{
				"user_id":    inner.User,
				"channel_id": inner.Channel,
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTeamJoin queues the welcome DM. Delivery is decoupled from the
// event acknowledgment; a failed send never fails this request.
func (g *Gateway) handleTeamJoin(event *slackevents.TeamJoinEvent) {
	if event.User == nil || event.User.ID == "" {
		return
	}

	cfg := g.store.Load()
	g.broker.PublishOutbound(bus.OutboundMessage{
		UserID:    event.User.ID,
		Blocks:    blocks.Welcome(event.User.ID, cfg.Organization),
		Username:  "KubeStellar Bot",
		IconEmoji: ":rocket:",
	})

	logger.InfoCF("gateway", "Welcome DM queued", map[string]interface{}{
		"user_id": event.User.ID,
	})
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (g *Gateway) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Kubestellar Slack Bot is running!",
		"endpoints": map[string]string{
			"/slack/commands": "POST - Handle slash commands",
			"/slack/events":   "POST - Handle Slack events",
			"/health":         "GET - Health check",
		},
	})
}
