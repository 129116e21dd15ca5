// Package classifier turns transcribed Spanish utterances into classified
// intents with entities by calling the Gemini API. Classification results
// are cached per normalized utterance, and concurrent identical requests
// are collapsed into a single model call.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"hablapp/internal/dispatch"
)

// Classification is the structured output of the cloud model for one
// utterance: an intent label and the entity slots extracted from the text.
type Classification struct {
	Intent   string            `json:"intent"`
	Entities []dispatch.Entity `json:"entities"`
}

type Client struct {
	genai *genai.Client
	model string
	cache *lruCache[Classification]
	group singleflight.Group
}

// New creates a classifier client. The Gemini API key is read from the
// environment by the underlying SDK (GEMINI_API_KEY / GOOGLE_API_KEY).
func New(ctx context.Context, model string, cacheSize int, cacheTTL time.Duration) (*Client, error) {
	if model == "" {
		return nil, fmt.Errorf("classifier: empty model name")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("classifier: create genai client: %w", err)
	}
	return &Client{
		genai: cli,
		model: model,
		cache: newLRUCache[Classification](cacheSize, cacheTTL),
	}, nil
}

// Classify returns the intent and entities for one utterance. Identical
// utterances (ignoring case and spacing) are served from cache; concurrent
// duplicates share a single in-flight model call.
func (c *Client) Classify(ctx context.Context, text string) (Classification, error) {
	key := cacheKey(text)
	if key == "" {
		return Classification{}, fmt.Errorf("classifier: empty utterance")
	}

	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		out, err := c.classify(ctx, text)
		if err != nil {
			return Classification{}, err
		}
		c.cache.Set(key, out)
		return out, nil
	})
	if err != nil {
		return Classification{}, err
	}
	if shared {
		slog.Debug("Classification shared with concurrent caller", "key", key)
	}
	return v.(Classification), nil
}

func (c *Client) classify(ctx context.Context, text string) (Classification, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: classifyPrompt},
				{Text: "Frase del usuario:\n" + text},
			},
		},
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Classification{}, fmt.Errorf("classifier: generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return Classification{}, fmt.Errorf("classifier: empty response from model")
	}

	out, err := decodeClassification(raw)
	if err != nil {
		return Classification{}, fmt.Errorf("classifier: %w\nraw response: %s", err, raw)
	}
	return out, nil
}

// decodeClassification parses the model output, tolerating Markdown fences
// and stray text the model sometimes wraps the JSON object in.
func decodeClassification(raw string) (Classification, error) {
	clean := cleanModelJSON(raw)

	var out Classification
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return Classification{}, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if strings.TrimSpace(out.Intent) == "" {
		return Classification{}, fmt.Errorf("model returned no intent")
	}
	if out.Entities == nil {
		out.Entities = []dispatch.Entity{}
	}
	return out, nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// If there is still junk around the JSON object, keep only from the
	// first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

func cacheKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
