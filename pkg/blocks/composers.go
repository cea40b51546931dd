package blocks

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/kubestellar/slackbot/pkg/registry"
)

// Project builds the per-project contribution message used by
// /contribute, /kubestellar, /kubeflex, /ui and /a2a.
func Project(userID string, info registry.ProjectInfo, org registry.OrganizationInfo) []slack.Block {
	projectName := orDefault(info.ProjectName, DefaultOrgName)
	docsURL := orDefault(info.DocsURL, DefaultDocsURL)
	githubURL := orDefault(info.GithubURL, DefaultProjectRepo)
	description := orDefault(info.Description, DefaultDescription)
	website := orDefault(org.Website, DefaultWebsite)
	orgName := orDefault(org.Name, DefaultOrgName)

	maintainers := info.Maintainers
	if len(maintainers) == 0 {
		maintainers = []string{"Andy"}
	}

	projectSection := section(fmt.Sprintf("🚀 *%s*\n_%s_", projectName, description))
	projectSection.Accessory = slack.NewAccessory(slack.NewImageBlockElement(logoURL, "KubeStellar logo"))

	return []slack.Block{
		header(fmt.Sprintf("🎉 Welcome to %s!", orgName)),
		section(fmt.Sprintf("Hi <@%s>! 🤖 *I'm the KubeStellar bot* - here to help you get started with contributing to our open source projects!", userID)),
		slack.NewDividerBlock(),
		projectSection,
		section("📚 *Essential Resources*"),
		fieldsSection(
			fmt.Sprintf("*📖 Documentation*\n<%s|View Docs>", docsURL),
			fmt.Sprintf("*🔗 GitHub Repository*\n<%s|View Code>", githubURL),
		),
		section(fmt.Sprintf("*🌐 Main Website*\n<%s|Visit KubeStellar.io>", website)),
		slack.NewDividerBlock(),
		section(fmt.Sprintf("🤝 *Getting Help*\n*New to open source?* No worries! We're here to help you make your first contribution.\n\n*Have questions about this project?* Tag: %s", registry.FormatMaintainers(maintainers))),
		section("💡 *Quick Start Commands*"),
		fieldsSection(
			"`/help`\nView all available commands",
			"`/contribute`\nGeneral contribution guidelines",
			"`/kubeflex`\nKubeFlex project info",
			"`/ui`\nKubeStellar UI project info",
			"`/know-about-internship`\nKubeStellar Internship(IFOS) info",
		),
		actions(
			linkButton("📖 View Documentation", docsURL, true),
			linkButton("🔗 GitHub Repository", githubURL, false),
			linkButton("🌐 Website", website, false),
		),
		contextLine("🚀 *Happy Coding!* We're excited to have you in our community! 🌟"),
	}
}

// Help builds the command reference, including one maintainer line per
// configured project in file order.
func Help(cfg registry.Config) []slack.Block {
	org := cfg.Organization

	out := []slack.Block{
		header("🤖 KubeStellar Bot"),
		section("Your guide to contributing to KubeStellar open source projects!"),
		slack.NewDividerBlock(),
		section("🚀 *Project Commands*"),
		fieldsSection(
			"`/contribute` or `/kubeStellar`\nKubeStellar Core project info",
			"`/kubeflex`\nKubeFlex project contribution guide",
			"`/ui`\nKubeStellar UI project details",
			"`/a2a`\nApp-to-App (A2A) project info",
		),
		section("🔧 *Utility Commands*"),
		fieldsSection(
			"`/know-about-internship`\nOpen source contribution guidance",
			"`/help`\nThis help menu",
		),
		slack.NewDividerBlock(),
		section("👥 *Project Maintainers & Contacts*\n\nNeed help with a specific project? Tag the right people:"),
	}

	out = append(out, maintainerLines(cfg.Projects)...)

	out = append(out,
		slack.NewDividerBlock(),
		section("🌟 *Quick Links*"),
		actions(
			linkButton("🌐 Website", orDefault(org.Website, DefaultWebsite), true),
			linkButton("📖 Documentation", orDefault(org.Docs, DefaultDocsURL), false),
			linkButton("🔗 GitHub Org", orDefault(org.Github, DefaultOrgGithub), false),
			linkButton("✨ Join Us", orDefault(org.Github, joinUsURL), false),
		),
		contextLine("💡 *Pro Tip:* Start with `/contribute` to get familiar with our main project, then explore specific components!"),
		contextLine("🚀 *Welcome to the KubeStellar community!*"),
	)

	return out
}

// Meeting builds the community-meeting message. The logistics section
// is appended inside the per-project loop, so N projects yield N copies
// of it. That repetition matches the shipped behavior and is kept until
// the community decides otherwise (see DESIGN.md).
func Meeting(userID string, cfg registry.Config) []slack.Block {
	org := cfg.Organization

	out := []slack.Block{
		header("🎯 Interested in Joining KubeStellar Community Meeting?"),
		section(fmt.Sprintf("Hi <@%s>! 🌟 *Welcome to our open source community!* We're excited you want to get involved.", userID)),
		slack.NewDividerBlock(),
	}

	for _, key := range cfg.Projects.Keys() {
		info, _ := cfg.Projects.Get(key)
		out = append(out,
			section(fmt.Sprintf("*%s:* %s", registry.DisplayName(key, info), registry.FormatMaintainers(info.Maintainers))),
			section("*📅 Community Meeting Info*\n<"+joinUsURL+"|👉 Get an invite by joining our Google Group>\n\n*📝 Agenda & Meeting Notes*\n<"+agendaDocURL+"|View Document>"),
			slack.NewDividerBlock(),
		)
	}

	out = append(out,
		section("🌟 *Quick Links*"),
		actions(
			linkButton("🌐 Website", orDefault(org.Website, DefaultWebsite), true),
			linkButton("📖 Documentation", orDefault(org.Docs, DefaultDocsURL), false),
			linkButton("🔗 GitHub Org", orDefault(org.Github, DefaultOrgGithub), false),
		),
		contextLine("💡 *Pro Tip:* Start with `/contribute` to get familiar with our main project, then explore specific components!"),
		contextLine("🚀 *Welcome to the KubeStellar community!*"),
	)

	return out
}

// Internship builds the contribution-guidance message. The need-help
// section tags a hardcoded contact rather than the configured
// maintainer list, matching the message the community actually ships.
func Internship(userID string, org registry.OrganizationInfo) []slack.Block {
	return []slack.Block{
		header("🎯 Interested in Contributing to KubeStellar?"),
		section(fmt.Sprintf("Hi <@%s>! 🌟 *Welcome to our open source community!* We're excited you want to get involved.", userID)),
		slack.NewDividerBlock(),
		section("🚀 *Getting Started with Open Source Contributions*"),
		section("📋 *Available Projects*\nChoose a project that matches your interests and skills:"),
		fieldsSection(
			"*KubeStellar Core*\nMulti-cluster Kubernetes management",
			"*KubeFlex*\nFlexible cluster management tools",
			"*KubeStellar UI*\nWeb interface and dashboards",
			"*App-to-App (A2A)*\nCommunication framework",
		),
		section("📚 *Essential Resources*"),
		actions(
			linkButton("📖 Documentation", orDefault(org.Docs, DefaultDocsURL), true),
			linkButton("🔗 GitHub Organization", orDefault(org.Github, DefaultOrgGithub), false),
			linkButton("🌐 Community Website", orDefault(org.Website, DefaultWebsite), false),
		),
		section("🤝 *Need Help?*\n*New to open source?* Perfect! We love helping first-time contributors.\n\n*Questions or need guidance?* Tag: Andy Anderson"),
		section("💡 *Next Steps*\n1. Pick a project that interests you\n2. Check out the GitHub repository\n3. Look for \"good first issue\" labels\n4. Join our community discussions\n5. Don't hesitate to ask questions!"),
		contextLine("🚀✨ *Let's build something amazing together!*"),
	}
}

// Welcome builds the DM sent to users joining the workspace.
func Welcome(userID string, org registry.OrganizationInfo) []slack.Block {
	return []slack.Block{
		header("🎉 Hey there, welcome to KubeStellar!"),
		section(fmt.Sprintf("Hi <@%s>! 🌟 *Welcome to our open source community!* We're thrilled to have you here.", userID)),
		slack.NewDividerBlock(),
		section("🚀 *Getting Started Guide*\n\n📋 *Explore Our Projects*\nChoose what interests you most:"),
		fieldsSection(
			"`/contribute`\nKubeStellar Core (multi-cluster management)",
			"`/kubeflex`\nKubeFlex (flexible cluster tools)",
			"`/ui`\nKubeStellar UI (web interfaces)",
			"`/a2a`\nApp-to-App communication framework",
		),
		actions(
			linkButton("📖 Documentation", orDefault(org.Docs, DefaultDocsURL), true),
			linkButton("🔗 GitHub Organization", orDefault(org.Github, DefaultOrgGithub), false),
			linkButton("🌐 Community Website", orDefault(org.Website, DefaultWebsite), false),
		),
		section("🤝 *Need Help?*\n*New to open source?* Perfect! We're here to guide you.\n\n*Have questions?* Use `/help` to see all commands and find the right maintainers to tag."),
		section("💡 *Pro Tips for New Contributors*\n1. Start with `/contribute` to understand our main project\n2. Look for \"good first issue\" labels on GitHub\n3. Join our community discussions\n4. Don't hesitate to ask questions - we're friendly! 😊"),
		contextLine("🚀✨ *Ready to make an impact?* Let's build the future of Kubernetes together!\n\n*Happy coding!* 🧰"),
	}
}

// Unknown builds the fallback for unrecognized commands, embedding the
// raw command text verbatim.
func Unknown(command string) []slack.Block {
	return []slack.Block{
		section(fmt.Sprintf("❌ Unknown command: `%s`\n\nType `/help` to see available commands.", command)),
	}
}

func maintainerLines(projects registry.ProjectSet) []slack.Block {
	out := make([]slack.Block, 0, projects.Len())
	for _, key := range projects.Keys() {
		info, _ := projects.Get(key)
		out = append(out, section(fmt.Sprintf("*%s:* %s", registry.DisplayName(key, info), registry.FormatMaintainers(info.Maintainers))))
	}
	return out
}
