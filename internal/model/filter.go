package model

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Filter is the conjunction of the three list filters. Empty values behave
// like FilterAll.
type Filter struct {
	Source    string
	Urgency   string
	Sentiment string
}

func (f Filter) Match(item *FeedbackItem) bool {
	if active(f.Source) && string(item.Source) != f.Source {
		return false
	}
	if active(f.Urgency) && (item.Urgency == nil || string(*item.Urgency) != f.Urgency) {
		return false
	}
	if active(f.Sentiment) && (item.Sentiment == nil || string(*item.Sentiment) != f.Sentiment) {
		return false
	}
	return true
}

// Apply keeps the order of items. With every dimension set to "all" it
// returns items unchanged.
func (f Filter) Apply(items []*FeedbackItem) []*FeedbackItem {
	if !active(f.Source) && !active(f.Urgency) && !active(f.Sentiment) {
		return items
	}
	out := make([]*FeedbackItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// Sources lists the distinct sources in first-seen order.
func Sources(items []*FeedbackItem) []Source {
	seen := make(map[Source]struct{})
	var out []Source
	for _, item := range items {
		if _, ok := seen[item.Source]; ok {
			continue
		}
		seen[item.Source] = struct{}{}
		out = append(out, item.Source)
	}
	return out
}
