// Package coach generates a short weekly focus recap from the daily
// aggregates, using the configured LLM provider. The feature is
// optional: without an API key the rest of the app is unaffected.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/focusbar/internal/llm"
	"github.com/abhisek/focusbar/internal/store"
)

// Recap is the structured recap the model returns.
type Recap struct {
	Headline   string `json:"headline"`
	Body       string `json:"body"`
	Suggestion string `json:"suggestion"`
}

// recapSchema constrains the model output.
var recapSchema = &llm.Schema{
	Name:        "weekly-recap",
	Description: "A short, encouraging recap of one week of focus sessions.",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"headline", "body", "suggestion"},
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line summary of the week, under 60 characters.",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on what the numbers show.",
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "One concrete suggestion for next week.",
			},
		},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a supportive productivity coach for a Pomodoro timer app.
You receive one week of daily focus statistics and write a short recap.
Be specific about the numbers, keep an encouraging tone, and never invent
data that is not in the input.`

// Service builds recaps.
type Service struct {
	provider llm.Provider
	stats    store.StatsRepo
	now      func() time.Time
}

// New creates a coach Service.
func New(provider llm.Provider, stats store.StatsRepo) *Service {
	return &Service{provider: provider, stats: stats, now: time.Now}
}

// WeeklyRecap generates a recap of the last seven days.
func (s *Service) WeeklyRecap(ctx context.Context) (*Recap, error) {
	days, err := s.lastWeek(ctx)
	if err != nil {
		return nil, fmt.Errorf("load weekly stats: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no sessions recorded in the last seven days")
	}

	ctx = llm.WithPurpose(ctx, "weekly-recap")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(days)}},
		Schema:      recapSchema,
		MaxTokens:   512,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generate recap: %w", err)
	}

	var recap Recap
	if err := json.Unmarshal(resp.Content, &recap); err != nil {
		return nil, fmt.Errorf("parse recap: %w", err)
	}
	return &recap, nil
}

// lastWeek returns the daily aggregates for the trailing seven days,
// oldest first.
func (s *Service) lastWeek(ctx context.Context) ([]store.DailyStatRecord, error) {
	all, err := s.stats.All(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().AddDate(0, 0, -7).Format("2006-01-02")
	var out []store.DailyStatRecord
	for _, d := range all {
		if d.Date > cutoff {
			out = append(out, d)
		}
	}
	return out, nil
}

// buildPrompt renders the stats as one line per day.
func buildPrompt(days []store.DailyStatRecord) string {
	var b strings.Builder
	b.WriteString("My focus stats for the past week:\n\n")
	totalSessions, totalMinutes := 0, 0
	for _, d := range days {
		status := "goal missed"
		if d.StreakMaintained {
			status = "goal met"
		}
		fmt.Fprintf(&b, "- %s: %d pomodoros, %d focus minutes, %d XP, %s\n",
			d.Date, d.PomodorosCompleted, d.TotalFocusMinutes, d.XPEarned, status)
		totalSessions += d.PomodorosCompleted
		totalMinutes += d.TotalFocusMinutes
	}
	fmt.Fprintf(&b, "\nTotals: %d pomodoros, %d focus minutes across %d active days.\n",
		totalSessions, totalMinutes, len(days))
	return b.String()
}
