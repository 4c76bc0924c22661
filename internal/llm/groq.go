package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

const systemInstruction = "Voce e um classificador EXPERT em leiloes com 20 anos de experiencia. " +
	"Analise o CONTEXTO completo e a FUNCAO REAL do item. " +
	"Use bom senso profissional, nao apenas palavras-chave. " +
	"Responda APENAS o nome da categoria."

// groqClient implements the Client interface for the Groq chat-completions
// API (OpenAI wire format).
type groqClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	topP        float64
	maxTokens   int
}

// newGroqClient creates a new Groq API client. The credential is required at
// construction time, not at first use.
func newGroqClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, common.NewConfigError("Groq API key is required", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqURL
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.05
	}

	topP := cfg.TopP
	if topP == 0 {
		topP = 0.85
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 50
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &groqClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: temperature,
		topP:        topP,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Classify sends a classification request to Groq.
func (c *groqClient) Classify(ctx context.Context, prompt string) (ClassificationResponse, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": systemInstruction,
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
		"top_p":       c.topP,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: %v", common.ErrServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return ClassificationResponse{}, fmt.Errorf("%w: Groq API error (status %d): %s",
			common.ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var response groqResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: failed to parse response: %v",
			common.ErrServiceUnavailable, err)
	}

	if len(response.Choices) == 0 {
		return ClassificationResponse{}, fmt.Errorf("%w: no completion choices returned",
			common.ErrServiceUnavailable)
	}

	return ClassificationResponse{
		Answer: strings.TrimSpace(response.Choices[0].Message.Content),
	}, nil
}

// groqResponse represents the Groq API response structure.
type groqResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Created int64 `json:"created"`
}
