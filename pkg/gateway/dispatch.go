package gateway

import (
	"github.com/slack-go/slack"

	"github.com/kubestellar/slackbot/pkg/blocks"
	"github.com/kubestellar/slackbot/pkg/logger"
	"github.com/kubestellar/slackbot/pkg/utils"
)

// Command is a recognized slash command. Matching is exact and
// case-sensitive after trimming.
type Command string

const (
	CommandContribute  Command = "/contribute"
	CommandKubestellar Command = "/kubestellar"
	CommandKubeflex    Command = "/kubeflex"
	CommandUI          Command = "/ui"
	CommandA2A         Command = "/a2a"
	CommandInternship  Command = "/know-about-internship"
	CommandHelp        Command = "/help"
	CommandMeeting     Command = "/meeting"
)

const (
	respondInChannel = "in_channel"
	respondEphemeral = "ephemeral"
)

// Response is the JSON payload returned to Slack for a slash command.
type Response struct {
	ResponseType string        `json:"response_type"`
	Text         string        `json:"text,omitempty"`
	Blocks       []slack.Block `json:"blocks,omitempty"`
}

// dispatch maps a command to its composer. It is total: any input
// produces a well-formed response, unrecognized commands included. The
// registry is re-read per invocation so config edits apply immediately.
func (g *Gateway) dispatch(command, userID, username string) Response {
	logger.InfoCF("gateway", "Received command", map[string]interface{}{
		"command": utils.Truncate(command, 50),
		"user":    username,
	})

	cfg := g.store.Load()

	var blockSet []slack.Block
	switch Command(command) {
	case CommandContribute:
		blockSet = blocks.Project(userID, g.store.ProjectInfo("default"), cfg.Organization)
	case CommandKubestellar:
		blockSet = blocks.Project(userID, g.store.ProjectInfo("kubestellar"), cfg.Organization)
	case CommandKubeflex:
		blockSet = blocks.Project(userID, g.store.ProjectInfo("kubeflex"), cfg.Organization)
	case CommandUI:
		blockSet = blocks.Project(userID, g.store.ProjectInfo("ui"), cfg.Organization)
	case CommandA2A:
		blockSet = blocks.Project(userID, g.store.ProjectInfo("a2a"), cfg.Organization)
	case CommandInternship:
		blockSet = blocks.Internship(userID, cfg.Organization)
	case CommandHelp:
		blockSet = blocks.Help(cfg)
	case CommandMeeting:
		blockSet = blocks.Meeting(userID, cfg)
	default:
		blockSet = blocks.Unknown(command)
	}

	return Response{
		ResponseType: respondInChannel,
		Blocks:       blockSet,
	}
}
