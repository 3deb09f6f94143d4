package coach

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/kairos-coach/kairos/core/gateway"
	"github.com/kairos-coach/kairos/core/prompt"
	"github.com/kairos-coach/kairos/core/scrum"
)

// Activity is a generated team activity.
type Activity struct {
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
}

// GenerateIcebreaker produces a single icebreaker question for the
// given vibe.
func (s *Service) GenerateIcebreaker(ctx context.Context, vibe scrum.Vibe) (string, error) {
	if s.Offline() {
		return FallbackQuestion, nil
	}

	resp, err := s.complete(ctx, &gateway.Request{
		SystemPrompt: prompt.Icebreaker(vibe, s.kb),
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: "Generate the icebreaker question now."},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateActivity produces a structured team activity for the given
// vibe. If the provider's JSON cannot be parsed the fixed fallback
// activity is returned instead of an error.
func (s *Service) GenerateActivity(ctx context.Context, vibe scrum.Vibe) (Activity, error) {
	if s.Offline() {
		return FallbackActivity(), nil
	}

	resp, err := s.complete(ctx, &gateway.Request{
		SystemPrompt: prompt.Activity(vibe, s.kb),
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: "Generate the team activity now."},
		},
	})
	if err != nil {
		return Activity{}, err
	}

	activity, ok := parseActivity(resp.Content)
	if !ok {
		s.logger.Warn("activity response was not valid JSON, using fallback",
			zap.String("vibe", string(vibe)),
		)
		return FallbackActivity(), nil
	}
	return activity, nil
}

// parseActivity extracts an Activity from the provider's text, which
// may wrap the JSON object in markdown fences.
func parseActivity(content string) (Activity, bool) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var activity Activity
	if err := json.Unmarshal([]byte(content), &activity); err != nil {
		return Activity{}, false
	}
	if activity.Title == "" {
		return Activity{}, false
	}
	return activity, true
}
