package model

import (
	"time"
)

type Source string

const (
	SourceEmail          Source = "email"
	SourceSocial         Source = "social"
	SourceTwitter        Source = "twitter"
	SourceReddit         Source = "reddit"
	SourceCommunityForum Source = "community-forum"
	SourceSupport        Source = "support"
)

// FeedbackItem is one row of the feedback table. The four analysis fields
// are either all nil (unanalyzed) or all set.
type FeedbackItem struct {
	ID        int64      `json:"id" db:"id"`
	Message   string     `json:"message" db:"message"`
	Source    Source     `json:"source" db:"source"`
	Theme     *string    `json:"theme" db:"theme"`
	Sentiment *Sentiment `json:"sentiment" db:"sentiment"`
	Urgency   *Urgency   `json:"urgency" db:"urgency"`
	Summary   *string    `json:"summary" db:"summary"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

func (f *FeedbackItem) IsAnalyzed() bool {
	return f.Theme != nil
}

// WithAnalysis returns a copy of the item carrying the given analysis.
func (f FeedbackItem) WithAnalysis(a Analysis) FeedbackItem {
	theme, summary := a.Theme, a.Summary
	sentiment, urgency := a.Sentiment, a.Urgency
	f.Theme = &theme
	f.Sentiment = &sentiment
	f.Urgency = &urgency
	f.Summary = &summary
	return f
}

type CreateFeedbackInput struct {
	Message string `json:"message"`
	Source  Source `json:"source"`
}
