package channels

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubestellar/slackbot/pkg/bus"
)

type fakePoster struct {
	mu       sync.Mutex
	channels []string
	optCount []int
	err      error
}

func (f *fakePoster) PostMessageContext(_ context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels = append(f.channels, channelID)
	f.optCount = append(f.optCount, len(options))
	return "", "", f.err
}

func (f *fakePoster) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.channels...)
}

func TestNewSlackChannelRequiresToken(t *testing.T) {
	_, err := NewSlackChannel("", bus.NewMessageBus())
	assert.Error(t, err)
}

func TestSendPostsToUser(t *testing.T) {
	poster := &fakePoster{}
	c := &SlackChannel{api: poster}

	err := c.Send(context.Background(), bus.OutboundMessage{
		UserID:    "U123",
		Blocks:    []slack.Block{slack.NewDividerBlock()},
		Username:  "KubeStellar Bot",
		IconEmoji: ":rocket:",
	})

	require.NoError(t, err)
	require.Len(t, poster.calls(), 1)
	assert.Equal(t, "U123", poster.calls()[0])
	// blocks + username + icon
	assert.Equal(t, 3, poster.optCount[0])
}

func TestSendRejectsEmptyUserID(t *testing.T) {
	c := &SlackChannel{api: &fakePoster{}}
	err := c.Send(context.Background(), bus.OutboundMessage{Text: "hi"})
	assert.Error(t, err)
}

func TestSendWrapsAPIError(t *testing.T) {
	c := &SlackChannel{api: &fakePoster{err: fmt.Errorf("channel_not_found")}}
	err := c.Send(context.Background(), bus.OutboundMessage{UserID: "U1", Text: "hi"})
	assert.ErrorContains(t, err, "channel_not_found")
}

func TestDeliveryLoopConsumesQueuedMessages(t *testing.T) {
	broker := bus.NewMessageBus()
	defer broker.Close()

	poster := &fakePoster{}
	c := &SlackChannel{api: poster, broker: broker}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	broker.PublishOutbound(bus.OutboundMessage{UserID: "U123", Text: "welcome"})

	require.Eventually(t, func() bool {
		return len(poster.calls()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "U123", poster.calls()[0])
}

func TestDeliveryLoopSurvivesSendFailure(t *testing.T) {
	broker := bus.NewMessageBus()
	defer broker.Close()

	poster := &fakePoster{err: fmt.Errorf("rate_limited")}
	c := &SlackChannel{api: poster, broker: broker}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	broker.PublishOutbound(bus.OutboundMessage{UserID: "U1", Text: "a"})
	broker.PublishOutbound(bus.OutboundMessage{UserID: "U2", Text: "b"})

	// A failed send is logged and dropped; the loop keeps draining.
	require.Eventually(t, func() bool {
		return len(poster.calls()) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestStopEndsDeliveryLoop(t *testing.T) {
	broker := bus.NewMessageBus()
	defer broker.Close()

	c := &SlackChannel{api: &fakePoster{}, broker: broker}
	require.NoError(t, c.Start(context.Background()))
	assert.True(t, c.IsRunning())

	c.Stop()
	assert.False(t, c.IsRunning())
}
