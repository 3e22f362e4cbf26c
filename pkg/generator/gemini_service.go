package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"recipehub/domain"
	"recipehub/internal/utils"
	"strings"
	"time"
)

const systemPrompt = `You are a professional chef assistant that creates recipes based on user requests.
Generate a clear, complete and realistic recipe.
Each recipe must include a concise "title", a short "description" (1-3 sentences), 2-3 "tags" with one of them being "AI",
every necessary ingredient in "ingredients", ordered cooking instructions in "steps" and the total time in minutes as an integer in "preparationTime".
If the request is not related to food, cooking or recipes, return only an object with the key "error" and a helpful message.
Always respond with strict JSON and no text outside of it.`

type (
	GeneratorService interface {
		GenerateRecipe(ctx context.Context, prompt string) (domain.GeneratedRecipe, error)
	}

	geminiService struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}

	disabledService struct{}

	part struct {
		Text string `json:"text"`
	}

	content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}

	generateRequest struct {
		SystemInstruction content          `json:"systemInstruction"`
		Contents          []content        `json:"contents"`
		GenerationConfig  generationConfig `json:"generationConfig"`
	}

	generationConfig struct {
		Temperature      float64        `json:"temperature"`
		ResponseMimeType string         `json:"responseMimeType"`
		ResponseSchema   map[string]any `json:"responseSchema"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

var recipeSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"title":           map[string]any{"type": "STRING"},
		"description":     map[string]any{"type": "STRING"},
		"tags":            map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"ingredients":     map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"steps":           map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"preparationTime": map[string]any{"type": "NUMBER"},
		"error":           map[string]any{"type": "STRING"},
	},
}

// NewGeneratorService returns a service that always fails with
// domain.ErrGeneratorDisabled when no API key is configured.
func NewGeneratorService(cfg *utils.Config) GeneratorService {
	if cfg.GeminiAPIKey == "" {
		return disabledService{}
	}
	return &geminiService{
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		baseURL:    strings.TrimSuffix(cfg.GeminiBaseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (disabledService) GenerateRecipe(context.Context, string) (domain.GeneratedRecipe, error) {
	return nil, domain.ErrGeneratorDisabled
}

func (s *geminiService) GenerateRecipe(ctx context.Context, prompt string) (domain.GeneratedRecipe, error) {
	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: "User prompt: " + prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.7,
			ResponseMimeType: "application/json",
			ResponseSchema:   recipeSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s - %s", domain.ErrGeminiAPIFailed, resp.Status, string(msg))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGeminiAPIFailed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiAPIFailed
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: model returned invalid JSON", domain.ErrGeminiAPIFailed)
	}
	return domain.GeneratedRecipe(text), nil
}
