package gateway

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubestellar/slackbot/pkg/bus"
	"github.com/kubestellar/slackbot/pkg/config"
	"github.com/kubestellar/slackbot/pkg/registry"
)

type fakePublisher struct {
	published []bus.OutboundMessage
}

func (f *fakePublisher) PublishOutbound(msg bus.OutboundMessage) {
	f.published = append(f.published, msg)
}

func newTestGateway(t *testing.T, maintainersJSON string) (*Gateway, *fakePublisher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maintainers.json")
	require.NoError(t, os.WriteFile(path, []byte(maintainersJSON), 0644))

	pub := &fakePublisher{}
	g := New(config.Settings{Port: 3000, MaintainersPath: path}, registry.New(path), pub)
	return g, pub
}

const testMaintainers = `{
	"projects": {
		"default": {"project_name": "KubeStellar", "maintainers": ["andy"]},
		"kubeflex": {"project_name": "KubeFlex", "maintainers": ["alice"]},
		"ui": {"maintainers": []}
	},
	"organization": {"name": "KubeStellar", "website": "https://kubestellar.io"}
}`

func renderResponse(t *testing.T, resp Response) string {
	t.Helper()
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestDispatchKnownCommands(t *testing.T) {
	g, _ := newTestGateway(t, testMaintainers)

	tests := []struct {
		command string
		want    string
	}{
		{"/contribute", "KubeStellar"},
		{"/kubestellar", "KubeStellar"},
		{"/kubeflex", "KubeFlex"},
		{"/ui", "Welcome to KubeStellar!"},
		{"/a2a", "Welcome to KubeStellar!"},
		{"/know-about-internship", "Interested in Contributing"},
		{"/help", "KubeStellar Bot"},
		{"/meeting", "Community Meeting"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			resp := g.dispatch(tt.command, "U123", "tester")
			assert.Equal(t, respondInChannel, resp.ResponseType)
			require.NotEmpty(t, resp.Blocks)
			assert.Contains(t, renderResponse(t, resp), tt.want)
		})
	}
}

func TestDispatchIsTotal(t *testing.T) {
	g, _ := newTestGateway(t, testMaintainers)

	for _, command := range []string{"", "/bogus", "garbage", "/HELP", "/help extra", "🦞"} {
		resp := g.dispatch(command, "U123", "tester")
		assert.Equal(t, respondInChannel, resp.ResponseType)
		require.NotEmpty(t, resp.Blocks, "command %q", command)
		assert.Contains(t, renderResponse(t, resp), "Unknown command: `"+command+"`")
	}
}

func TestDispatchHelpListsProjectsInFileOrder(t *testing.T) {
	g, _ := newTestGateway(t, testMaintainers)

	rendered := renderResponse(t, g.dispatch("/help", "U123", "tester"))

	assert.Contains(t, rendered, "*KubeFlex:* @alice")
	assert.Contains(t, rendered, "*Ui:* No maintainers assigned")
}

func TestDispatchSurvivesBrokenRegistry(t *testing.T) {
	g, _ := newTestGateway(t, `{broken`)

	resp := g.dispatch("/contribute", "U123", "tester")

	assert.Equal(t, respondInChannel, resp.ResponseType)
	assert.NotEmpty(t, resp.Blocks)
}
