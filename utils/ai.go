package utils

import (
    "context"
    "strings"

    "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

type AIConfig struct {
    APIKey   string
    GenModel string
}

func NewAIClient(ctx context.Context, cfg AIConfig) (*genai.Client, error) {
    return genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
}

func GenerateText(ctx context.Context, client *genai.Client, model string, parts ...genai.Part) (string, error) {
    m := client.GenerativeModel(model)
    resp, err := m.GenerateContent(ctx, parts...)
    if err != nil {
        return "", err
    }
    var b strings.Builder
    if resp != nil {
        for _, c := range resp.Candidates {
            if c == nil || c.Content == nil {
                continue
            }
            for _, p := range c.Content.Parts {
                if t, ok := p.(genai.Text); ok {
                    b.WriteString(string(t))
                }
            }
        }
    }
    return strings.TrimSpace(b.String()), nil
}

// GeminiGenerator implements the conversation service's reply collaborator
// by linearizing the message history into a single prompt.
type GeminiGenerator struct {
    Cfg AIConfig
}

func (g GeminiGenerator) Reply(ctx context.Context, systemPrompt string, history []models.Message) (string, error) {
    client, err := NewAIClient(ctx, g.Cfg)
    if err != nil {
        return "", err
    }
    defer client.Close()

    parts := make([]genai.Part, 0, len(history)+2)
    parts = append(parts, genai.Text(systemPrompt))
    for _, msg := range history {
        prefix := "User: "
        if msg.Sender == models.SenderAgent {
            prefix = "Assistant: "
        }
        parts = append(parts, genai.Text(prefix+msg.Content))
    }
    parts = append(parts, genai.Text("Assistant:"))

    return GenerateText(ctx, client, g.Cfg.GenModel, parts...)
}
