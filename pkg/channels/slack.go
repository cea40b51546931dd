package channels

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/slack-go/slack"

	"github.com/kubestellar/slackbot/pkg/bus"
	"github.com/kubestellar/slackbot/pkg/logger"
)

// messagePoster is the slice of the Slack API the channel needs.
// *slack.Client satisfies it.
type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackChannel delivers queued direct messages through the Slack Web
// API. Failures are logged and dropped; nothing upstream waits on a
// delivery.
type SlackChannel struct {
	api     messagePoster
	broker  bus.Broker
	cancel  context.CancelFunc
	running atomic.Bool
}

func NewSlackChannel(botToken string, broker bus.Broker) (*SlackChannel, error) {
	if botToken == "" {
		return nil, fmt.Errorf("slack bot token is required")
	}

	return &SlackChannel{
		api:    slack.New(botToken),
		broker: broker,
	}, nil
}

func (c *SlackChannel) Start(ctx context.Context) error {
	logger.InfoC("slack", "Starting Slack delivery channel")

	ctx, c.cancel = context.WithCancel(ctx)
	c.running.Store(true)

	go c.deliveryLoop(ctx)

	return nil
}

func (c *SlackChannel) Stop() {
	logger.InfoC("slack", "Stopping Slack delivery channel")
	if c.cancel != nil {
		c.cancel()
	}
	c.running.Store(false)
}

func (c *SlackChannel) IsRunning() bool {
	return c.running.Load()
}

func (c *SlackChannel) deliveryLoop(ctx context.Context) {
	for {
		msg, ok := c.broker.SubscribeOutbound(ctx)
		if !ok {
			return
		}
		c.deliver(ctx, msg)
	}
}

// deliver posts one DM. Errors stay here: delivery is best-effort and
// the inbound event has already been acknowledged.
func (c *SlackChannel) deliver(ctx context.Context, msg bus.OutboundMessage) {
	if err := c.Send(ctx, msg); err != nil {
		logger.ErrorCF("slack", "Failed to send direct message", map[string]interface{}{
			"user_id": msg.UserID,
			"error":   err.Error(),
		})
		return
	}

	logger.InfoCF("slack", "Direct message sent", map[string]interface{}{
		"user_id": msg.UserID,
	})
}

func (c *SlackChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	if msg.UserID == "" {
		return fmt.Errorf("outbound message has no user ID")
	}

	opts := []slack.MsgOption{}
	if len(msg.Blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(msg.Blocks...))
	}
	if msg.Text != "" {
		opts = append(opts, slack.MsgOptionText(msg.Text, false))
	}
	if msg.Username != "" {
		opts = append(opts, slack.MsgOptionUsername(msg.Username))
	}
	if msg.IconEmoji != "" {
		opts = append(opts, slack.MsgOptionIconEmoji(msg.IconEmoji))
	}

	_, _, err := c.api.PostMessageContext(ctx, msg.UserID, opts...)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}

	return nil
}
