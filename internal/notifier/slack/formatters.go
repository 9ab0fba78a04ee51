package slack

import (
	"fmt"
	"strings"

	"github.com/flameunter/fanclub/internal/club"
	"github.com/slack-go/slack"
)

// formatNewsNotification creates the Slack message for a published bulletin item using Block Kit.
func formatNewsNotification(item club.TeamNewsItem) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📰 Team news 📰", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", item.Title, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatScheduleNotification creates the Slack message for a replaced schedule.
func formatScheduleNotification(matches []club.MatchInfo) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📅 Match schedule updated 📅", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, m := range matches {
		line := fmt.Sprintf("• %s vs %s — %s %s, %s", m.Competition, m.Opponent, m.Date, m.Time, m.Venue)
		if m.Score != "" {
			line += fmt.Sprintf(" (FT %s)", m.Score)
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerJoinedNotification creates the Slack message for a new roster member.
func formatPlayerJoinedNotification(player club.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🔥 New signing 🔥", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s has joined the squad! Squad number pending.", player.Name)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
