package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"feedbackservice/internal/model"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).Italic(true)
	statLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	statValue     = lipgloss.NewStyle().Bold(true)
	statBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 2)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).Italic(true)
	sourceBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Background(lipgloss.Color("#333333")).Padding(0, 1)
	defaultBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Padding(0, 1)
	negativeBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true).Padding(0, 1)
	positiveBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true).Padding(0, 1)
	highBadge     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true).Padding(0, 1)
)

func sentimentStyle(s model.Sentiment) lipgloss.Style {
	switch s {
	case model.SentimentNegative:
		return negativeBadge
	case model.SentimentPositive:
		return positiveBadge
	default:
		return defaultBadge
	}
}

func urgencyStyle(u model.Urgency) lipgloss.Style {
	if u == model.UrgencyHigh {
		return highBadge
	}
	return defaultBadge
}

// RenderCard draws one feedback item. Unanalyzed items show a pending note
// instead of the analysis badges.
func RenderCard(item *model.FeedbackItem, width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fmt.Sprintf("#%d", item.ID)),
		" ",
		sourceBadge.Render(string(item.Source)),
		" ",
		mutedStyle.Render(item.CreatedAt.Local().Format("2006-01-02 15:04")),
	)

	lines := []string{header, messageStyle.Render(item.Message)}
	if item.IsAnalyzed() {
		badges := []string{titleStyle.Render(*item.Theme)}
		if item.Sentiment != nil {
			badges = append(badges, sentimentStyle(*item.Sentiment).Render(string(*item.Sentiment)))
		}
		if item.Urgency != nil {
			badges = append(badges, urgencyStyle(*item.Urgency).Render(string(*item.Urgency)+" urgency"))
		}
		lines = append(lines, strings.Join(badges, " "))
		if item.Summary != nil {
			lines = append(lines, summaryStyle.Render(*item.Summary))
		}
	} else {
		lines = append(lines, pendingStyle.Render("Analyzing..."))
	}

	return cardStyle.Width(max(20, width)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func RenderCards(items []*model.FeedbackItem, width int) string {
	if len(items) == 0 {
		return mutedStyle.Render("No feedback matches the current filters.")
	}
	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, RenderCard(item, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func RenderStats(stats model.PanelStats) string {
	cell := func(label string, value int, style lipgloss.Style) string {
		return statBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			style.Render(fmt.Sprintf("%d", value)),
			statLabel.Render(label),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Total", stats.Total, statValue),
		cell("Negative", stats.Negative, statValue.Foreground(lipgloss.Color("#FF6B6B"))),
		cell("Positive", stats.Positive, statValue.Foreground(lipgloss.Color("#4CAF50"))),
		cell("High Urgency", stats.HighUrgency, statValue.Foreground(lipgloss.Color("#F7B801"))),
	)
}

func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
