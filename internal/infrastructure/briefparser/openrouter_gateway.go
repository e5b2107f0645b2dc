package briefparser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var ErrMissingOpenRouterAPIKey = errors.New("missing OPENROUTER_API_KEY")

// OpenRouterGateway calls an OpenRouter-compatible chat-completions
// endpoint to deconstruct a brief into tool usages.
//
// Retry policy: exponential backoff with jitter on 429 and 5xx, bounded
// attempts; other 4xx are permanent failures. A mock mode serves local
// development without a key.
type OpenRouterGateway struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
	mockMode   bool
	maxRetries uint64
	minBackoff time.Duration
}

var _ interfaces.IBriefParser = (*OpenRouterGateway)(nil)

type Option func(*OpenRouterGateway)

// WithRetryPolicy tightens the retry schedule, mainly for tests.
func WithRetryPolicy(maxRetries uint64, minBackoff time.Duration) Option {
	return func(g *OpenRouterGateway) {
		g.maxRetries = maxRetries
		g.minBackoff = minBackoff
	}
}

func NewOpenRouterGateway(baseURL, apiKey, model string, timeout time.Duration, mock bool, logger *zap.Logger, opts ...Option) (*OpenRouterGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mock {
		logger.Info("brief parser mock mode enabled")
		return &OpenRouterGateway{mockMode: true, logger: logger}, nil
	}
	if apiKey == "" {
		return nil, ErrMissingOpenRouterAPIKey
	}

	g := &OpenRouterGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		maxRetries: 4,
		minBackoff: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

const systemPromptTemplate = `ROLE: PESSIMISTIC AI PRODUCER.
TASK: DECONSTRUCT request into AI tool operations.

TOOLS: %s

RULES:
1. BREAKDOWN: Video = 'video' tool + 'audio' tool.
2. MATH (GENERATORS - Image/Video/Song):
   - User wants "1 result" -> Estimate 4 ATTEMPTS.
   - Formula: (Target Items) * 4 = Count.
   - FOR VIDEO CLIPS: 1 clip = 5 seconds.
3. MATH (STREAMING - Avatar/LipSync):
   - User wants "Duration" -> Count = SECONDS.
   - DO NOT MULTIPLY SECONDS.

OUTPUT: JSON Array ONLY. Format: [{"tool_id": "string", "count": number, "comment": "string"}]
IMPORTANT: Return raw JSON only. Do not wrap in markdown code blocks.`

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *OpenRouterGateway) ParseBrief(ctx context.Context, brief string, tools []entities.ToolDefinition, attachment *entities.BriefAttachment) ([]entities.ParsedToolUsage, error) {
	if g.mockMode {
		g.logger.Info("brief parser mock parse", zap.Int("brief_len", len(brief)))
		return []entities.ParsedToolUsage{{ToolID: "video_kling", Count: 4, Comment: "mock breakdown"}}, nil
	}

	toolsInfo := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		toolsInfo = append(toolsInfo, map[string]any{
			"id":          t.ID,
			"name":        t.Name,
			"unit":        t.Unit,
			"description": fmt.Sprintf("Category: %s. Unit: %s. Cost: %g lightning/unit.", t.Category, t.Unit, t.UnitPrice),
		})
	}
	toolsJSON, err := json.Marshal(toolsInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal tool listing: %w", err)
	}

	var userContent any = brief
	if attachment != nil {
		if brief == "" {
			brief = "Analyze this image and break down the AI production components required to produce it."
		}
		userContent = []map[string]any{
			{"type": "text", "text": brief},
			{"type": "image_url", "image_url": map[string]string{
				"url": fmt.Sprintf("data:%s;base64,%s", attachment.MimeType, attachment.Data),
			}},
		}
	}

	payload := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPromptTemplate, toolsJSON)},
			{Role: "user", Content: userContent},
		},
		Temperature: 0.1,
		TopP:        0.1,
	}

	content, err := g.completeWithRetry(ctx, payload)
	if err != nil {
		return nil, err
	}

	usages, err := parseUsages(content)
	if err != nil {
		return nil, err
	}
	return deduplicateUsages(usages), nil
}

// completeWithRetry performs the chat-completion call under the gateway's
// retry policy.
func (g *OpenRouterGateway) completeWithRetry(ctx context.Context, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.InitialInterval = g.minBackoff
	retryPolicy.MaxInterval = 30 * time.Second
	retryPolicy.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	attempt := 0
	operation := func() (string, error) {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Title", "Anti-Doshirak App")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("do request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			errText, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return "", fmt.Errorf("model %s status %d: %s", g.model, resp.StatusCode, errText)
		}
		if resp.StatusCode != http.StatusOK {
			errText, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return "", backoff.Permanent(fmt.Errorf("model %s fatal status %d: %s", g.model, resp.StatusCode, errText))
		}

		var parsed chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return "", backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		if len(parsed.Choices) == 0 {
			return "", backoff.Permanent(errors.New("empty completion"))
		}
		return parsed.Choices[0].Message.Content, nil
	}

	notify := func(err error, next time.Duration) {
		g.logger.Warn("brief parser request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
			zap.Duration("next_attempt_in", next))
	}

	return backoff.RetryNotifyWithData(operation, backoff.WithContext(backoff.WithMaxRetries(retryPolicy, g.maxRetries), ctx), notify)
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseUsages tolerates the usual LLM output quirks: markdown fences and
// prose around the array.
func parseUsages(content string) ([]entities.ParsedToolUsage, error) {
	clean := strings.TrimSpace(content)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, nil
	}

	var usages []entities.ParsedToolUsage
	if err := json.Unmarshal([]byte(clean), &usages); err == nil {
		return usages, nil
	}

	if match := jsonArrayPattern.FindString(clean); match != "" {
		if err := json.Unmarshal([]byte(match), &usages); err == nil {
			return usages, nil
		}
	}
	return nil, errors.New("could not parse model response as a JSON array")
}

// deduplicateUsages merges repeated tool ids, accumulating counts and
// concatenating distinct comments/warnings.
func deduplicateUsages(usages []entities.ParsedToolUsage) []entities.ParsedToolUsage {
	var out []entities.ParsedToolUsage
	index := make(map[string]int)
	for _, u := range usages {
		if i, ok := index[u.ToolID]; ok {
			out[i].Count += u.Count
			if u.Comment != "" && !strings.Contains(out[i].Comment, u.Comment) {
				if out[i].Comment != "" {
					out[i].Comment += ", "
				}
				out[i].Comment += u.Comment
			}
			if u.Warning != "" && !strings.Contains(out[i].Warning, u.Warning) {
				if out[i].Warning != "" {
					out[i].Warning += " | "
				}
				out[i].Warning += u.Warning
			}
			continue
		}
		index[u.ToolID] = len(out)
		out = append(out, u)
	}
	return out
}
