package digest

import (
	"fmt"
	"strings"

	"feedbackservice/internal/model"
)

// Profile is one summary flavour: the instruction, the row format and the
// token budget.
type Profile struct {
	Name      string
	MaxTokens int
	header    string
	line      func(*model.FeedbackItem) string
}

const insightsHeader = `You are a PM assistant. Given this analyzed user feedback, provide a brief executive summary with:
1. Key themes (top 2-3 issues)
2. Overall sentiment breakdown
3. Recommended priorities

Respond in plain text, be concise (max 150 words).

Feedback:
`

const dailyHeader = `You are a PM assistant. Summarize this feedback for a daily digest:
1. Top issues requiring attention
2. Sentiment overview
3. Quick wins

Be concise (100 words max).

`

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func insightsLine(f *model.FeedbackItem) string {
	return fmt.Sprintf("- [%s, %s urgency, %s] %s: %s",
		deref(f.Sentiment), deref(f.Urgency), f.Source, deref(f.Theme), deref(f.Summary))
}

func dailyLine(f *model.FeedbackItem) string {
	return fmt.Sprintf("- [%s, %s] %s: %s",
		deref(f.Sentiment), deref(f.Urgency), deref(f.Theme), deref(f.Summary))
}

func InsightsProfile(maxTokens int) Profile {
	return Profile{Name: "insights", MaxTokens: maxTokens, header: insightsHeader, line: insightsLine}
}

func DailyProfile(maxTokens int) Profile {
	return Profile{Name: "daily", MaxTokens: maxTokens, header: dailyHeader, line: dailyLine}
}

func (p Profile) Prompt(rows []*model.FeedbackItem) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, p.line(row))
	}
	return p.header + strings.Join(lines, "\n")
}
