// Package blocks composes the bot's Block Kit messages. Composers are
// pure: they take resolved registry data and return a block list, and
// every field read goes through a default so a sparse maintainers file
// can never break a reply.
package blocks

import (
	"github.com/slack-go/slack"
)

const (
	DefaultOrgName     = "KubeStellar"
	DefaultWebsite     = "https://kubestellar.io"
	DefaultDocsURL     = "https://docs.kubestellar.io"
	DefaultOrgGithub   = "https://github.com/kubestellar"
	DefaultProjectRepo = "https://github.com/kubestellar/kubestellar"
	DefaultDescription = "A flexible solution for multi-cluster configuration management for edge, multi-cloud, and hybrid cloud."

	joinUsURL    = "http://kubestellar.io/join_us"
	agendaDocURL = "https://docs.google.com/document/d/1XppfxSOD7AOX1lVVVIPWjpFkrxakfBfVzcybRg17-PM/"
	logoURL      = "https://avatars.githubusercontent.com/u/134407106?s=200&v=4"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func header(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(plain(text))
}

func section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(mrkdwn(text), nil, nil)
}

func fieldsSection(texts ...string) *slack.SectionBlock {
	fields := make([]*slack.TextBlockObject, 0, len(texts))
	for _, t := range texts {
		fields = append(fields, mrkdwn(t))
	}
	return slack.NewSectionBlock(nil, fields, nil)
}

func contextLine(text string) *slack.ContextBlock {
	return slack.NewContextBlock("", mrkdwn(text))
}

func linkButton(label, url string, primary bool) *slack.ButtonBlockElement {
	btn := slack.NewButtonBlockElement("", "", plain(label))
	btn.URL = url
	if primary {
		btn.Style = slack.StylePrimary
	}
	return btn
}

func actions(buttons ...slack.BlockElement) *slack.ActionBlock {
	return slack.NewActionBlock("", buttons...)
}
