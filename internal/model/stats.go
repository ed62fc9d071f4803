package model

// DigestStats are the counts posted with every digest.
type DigestStats struct {
	Total       int `json:"total"`
	Negative    int `json:"negative"`
	HighUrgency int `json:"highUrgency"`
}

func ComputeDigestStats(items []*FeedbackItem) DigestStats {
	stats := DigestStats{Total: len(items)}
	for _, item := range items {
		if item.Sentiment != nil && *item.Sentiment == SentimentNegative {
			stats.Negative++
		}
		if item.Urgency != nil && *item.Urgency == UrgencyHigh {
			stats.HighUrgency++
		}
	}
	return stats
}

// PanelStats back the insights panel of the client.
type PanelStats struct {
	Total       int
	Analyzed    int
	Negative    int
	Positive    int
	HighUrgency int
}

func ComputePanelStats(items []*FeedbackItem) PanelStats {
	digest := ComputeDigestStats(items)
	stats := PanelStats{
		Total:       digest.Total,
		Negative:    digest.Negative,
		HighUrgency: digest.HighUrgency,
	}
	for _, item := range items {
		if item.IsAnalyzed() {
			stats.Analyzed++
		}
		if item.Sentiment != nil && *item.Sentiment == SentimentPositive {
			stats.Positive++
		}
	}
	return stats
}
