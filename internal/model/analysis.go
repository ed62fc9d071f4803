package model

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	default:
		return false
	}
}

func ToSentiment(s string) Sentiment {
	return Sentiment(strings.ToLower(strings.TrimSpace(s)))
}

func ToUrgency(s string) Urgency {
	return Urgency(strings.ToLower(strings.TrimSpace(s)))
}

// Analysis is the validated classification of one feedback message.
type Analysis struct {
	Theme     string    `json:"theme"`
	Sentiment Sentiment `json:"sentiment"`
	Urgency   Urgency   `json:"urgency"`
	Summary   string    `json:"summary"`
}

// BackfillReport lists the rows a backfill analyzed and why the others failed.
type BackfillReport struct {
	Analyzed []int64          `json:"analyzed"`
	Failed   map[int64]string `json:"failed"`
}
