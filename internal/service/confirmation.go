package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"go.uber.org/zap"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/catalog"
)

// MessageGenerator produces the natural-language confirmation text for
// a booked slot. Implementations must always return a usable string and
// never let an internal failure escape: the message is advisory only.
type MessageGenerator interface {
	ConfirmationMessage(ctx context.Context, slot booking.BookedSlot) string
}

var chineseWeekdays = [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// FallbackMessage builds the fixed-template confirmation text from the
// slot alone. Deterministic, usable in tests without network access.
func FallbackMessage(slot booking.BookedSlot) string {
	dayLabel := ""
	dateLabel := slot.Date
	if date, err := booking.ParseDate(slot.Date); err == nil {
		dateLabel = fmt.Sprintf("%d月%d日", int(date.Month()), date.Day())
		dayLabel = chineseWeekdays[int(date.Weekday())]
	}

	timeLabel := slot.TimeID
	if entry, ok := catalog.ByID(slot.TimeID); ok {
		timeLabel = entry.Label
	}

	return fmt.Sprintf("您好，補課時間已安排於 %s（%s） %s （電腦%s），請您留意時間，若臨時有異動請提前告知，謝謝配合。",
		dateLabel, dayLabel, timeLabel, slot.ComputerID)
}

// TemplateGenerator is the deterministic generator: it always answers
// with the fallback template. Used when no API key is configured and in
// tests.
type TemplateGenerator struct{}

func (TemplateGenerator) ConfirmationMessage(_ context.Context, slot booking.BookedSlot) string {
	return FallbackMessage(slot)
}

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// GeminiGenerator asks the Gemini API to phrase the confirmation
// message. Any failure, from transport to an empty candidate list,
// falls back to the deterministic template.
type GeminiGenerator struct {
	apiKey string
	log    *zap.Logger
}

func NewGeminiGenerator(apiKey string, log *zap.Logger) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, log: log}
}

func (g *GeminiGenerator) ConfirmationMessage(ctx context.Context, slot booking.BookedSlot) string {
	fallback := FallbackMessage(slot)
	if g.apiKey == "" {
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are an assistant for the Sesame Street (芝麻街) school.\n"+
			"Generate a text message exactly following the template below.\n\n"+
			"Template:\n%s\n\n"+
			"Instructions:\n- Output ONLY the message content.\n- Do not add any conversational text or markdown.",
		fallback)

	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	})
	if err != nil {
		g.log.Warn("could not build gemini request", zap.Error(err))
		return fallback
	}

	resp, err := rest.SendWithContext(ctx, rest.Request{
		Method:  rest.Post,
		BaseURL: geminiEndpoint,
		Headers: map[string]string{
			"Content-Type":   "application/json",
			"x-goog-api-key": g.apiKey,
		},
		Body: body,
	})
	if err != nil {
		g.log.Warn("gemini request failed, using fallback message", zap.Error(err))
		return fallback
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Warn("gemini request rejected, using fallback message",
			zap.Int("status", resp.StatusCode))
		return fallback
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &parsed); err != nil {
		g.log.Warn("could not parse gemini response, using fallback message", zap.Error(err))
		return fallback
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallback
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallback
	}
	return text
}
