// Package gemini implements the roadmap generator on top of the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/skill2success/internal/ai"
	"github.com/spigell/skill2success/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel        = "gemini-2.5-flash"
	defaultMaxLogLength = 200
)

//go:embed prompt.md
var promptTemplate string

type chatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type chatCreator interface {
	Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error)
}

type genaiChats struct {
	client *genai.Client
}

func (c genaiChats) Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error) {
	chat, err := c.client.Chats.Create(ctx, model, config, history)
	if err != nil {
		return nil, err
	}
	return chat, nil
}

var _ ai.Generator = (*Generator)(nil)

// Generator produces career roadmaps via the Gemini API backend.
type Generator struct {
	chats     chatCreator
	model     string
	logger    *zap.Logger
	maxLogLen int
}

// NewGenerator creates a Generator for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxLogLength int, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Generator{
		chats:     genaiChats{client: client},
		model:     model,
		logger:    log,
		maxLogLen: maxLogLength,
	}, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

// GenerateRoadmap sends the student profile to Gemini and returns the textual
// reply with markdown fences stripped. The result is still untrusted input
// for the normalizer.
func (g *Generator) GenerateRoadmap(ctx context.Context, profile ai.Profile) (string, error) {
	if g == nil || g.chats == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt, err := buildPrompt(profile)
	if err != nil {
		return "", err
	}

	g.logger.Debug("gemini generate roadmap request",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	chat, err := g.chats.Create(ctx, g.model, nil, nil)
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("generate roadmap: %w", err)
	}

	output := collectText(resp)
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	g.logger.Debug("gemini generate roadmap response",
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", logger.TruncateForLog(output, g.maxLogLen)),
	)

	return extractJSON(output), nil
}

func buildPrompt(profile ai.Profile) (string, error) {
	answersJSON, err := json.MarshalIndent(profile.PsychometricAnswers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal psychometric answers: %w", err)
	}

	skillsJSON, err := json.MarshalIndent(profile.Skills, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal skills: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{PSYCHOMETRIC_JSON}}", string(answersJSON))
	prompt = strings.ReplaceAll(prompt, "{{SKILLS_JSON}}", string(skillsJSON))
	return prompt, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

// extractJSON strips markdown code fences the model wraps around its reply.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
