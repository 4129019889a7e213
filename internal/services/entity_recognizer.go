package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Entity is a tagged span of text, e.g. an organization or product
// name mentioned in a resume.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer tags technology-like entities in free text. It is
// an optional capability: the skill extractor works without one, and
// any failure here only costs enrichment, never the whole extraction.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) ([]Entity, error)
}

const entityPrompt = `Identify every organization, product, or technology name mentioned in the text below.

Return a JSON array of objects with this exact structure, and nothing else:
[{"text": "<entity as it appears in the text>", "label": "<ORG|PRODUCT|TECH>"}]

Text:
%s`

type geminiEntityRecognizer struct {
	client    *genai.Client
	modelName string
}

// NewGeminiEntityRecognizer builds an EntityRecognizer backed by the
// Gemini API.
func NewGeminiEntityRecognizer(apiKey string) (EntityRecognizer, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEntityRecognizer{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// RecognizeEntities implements EntityRecognizer.
func (g *geminiEntityRecognizer) RecognizeEntities(ctx context.Context, text string) ([]Entity, error) {
	// Keep the prompt well under the model's input limit.
	if len(text) > 40000 {
		text = text[:40000]
	}

	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(fmt.Sprintf(entityPrompt, text)), config)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize entities: %w", err)
	}

	if resp == nil {
		return nil, fmt.Errorf("no response generated (nil response)")
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	var entities []Entity
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	return entities, nil
}

// cleanJSON strips the markdown code fences the model sometimes wraps
// around its JSON output.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
