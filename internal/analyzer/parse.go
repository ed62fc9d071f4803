package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"feedbackservice/internal/errdefs"
	"feedbackservice/internal/model"
)

// RawAnalysis is the model's object before any domain checks.
type RawAnalysis struct {
	Theme     string `json:"theme"`
	Sentiment string `json:"sentiment"`
	Urgency   string `json:"urgency"`
	Summary   string `json:"summary"`
}

// ParseError describes why a completion could not become an Analysis.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", errdefs.ErrAnalysisParse, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return errdefs.ErrAnalysisParse
}

func parseFailure(raw, format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...), Raw: raw}
}

func DecodeAnalysis(raw string) (RawAnalysis, error) {
	var out RawAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return RawAnalysis{}, parseFailure(raw, "invalid json: %v", err)
	}
	return out, nil
}

// Validate checks every field against its domain. Enumerations are
// compared case-insensitively after trimming.
func Validate(raw RawAnalysis) (model.Analysis, error) {
	a := model.Analysis{
		Theme:     strings.TrimSpace(raw.Theme),
		Sentiment: model.ToSentiment(raw.Sentiment),
		Urgency:   model.ToUrgency(raw.Urgency),
		Summary:   strings.TrimSpace(raw.Summary),
	}

	if a.Theme == "" {
		return model.Analysis{}, parseFailure("", "theme is empty")
	}
	if a.Summary == "" {
		return model.Analysis{}, parseFailure("", "summary is empty")
	}
	if !a.Sentiment.IsValid() {
		return model.Analysis{}, parseFailure("", "sentiment %q is not one of positive, negative, neutral", raw.Sentiment)
	}
	if !a.Urgency.IsValid() {
		return model.Analysis{}, parseFailure("", "urgency %q is not one of high, medium, low", raw.Urgency)
	}
	return a, nil
}

// ParseAnalysis turns free-form model output into a validated Analysis.
func ParseAnalysis(completion string) (model.Analysis, error) {
	obj, ok := ExtractJSONObject(completion)
	if !ok {
		return model.Analysis{}, parseFailure(completion, "no json object in response")
	}
	raw, err := DecodeAnalysis(obj)
	if err != nil {
		return model.Analysis{}, err
	}
	a, err := Validate(raw)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Raw = obj
		}
		return model.Analysis{}, err
	}
	return a, nil
}
