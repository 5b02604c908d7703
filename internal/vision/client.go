// Package vision wraps the Gemini generateContent API behind a tagged
// outcome type. Every upstream failure mode is converted into one of the
// four Status values before it crosses into the diagnosis pipeline; no
// raw transport or parse error escapes this boundary.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/farmassist/farmassist/server/internal/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("farmassist-vision")

// Status is the closed set of classification outcomes.
type Status int

const (
	// StatusOK means the model returned non-empty text.
	StatusOK Status = iota
	// StatusRateLimited means the upstream signaled quota exhaustion.
	StatusRateLimited
	// StatusError covers transport failures, non-success statuses, and
	// unparseable response envelopes.
	StatusError
	// StatusInvalidResponse means the call succeeded but the envelope
	// carried no usable text part.
	StatusInvalidResponse
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusRateLimited:
		return "rate_limited"
	case StatusError:
		return "error"
	case StatusInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Outcome is the result of one classification call. Text is set only
// when Status is StatusOK; Err carries detail for StatusError.
type Outcome struct {
	Status Status
	Text   string
	Err    error
}

// classifyPrompt instructs the model to always commit to a diagnosis and
// to answer in strict JSON matching the pipeline's expected shape.
const classifyPrompt = `You are an expert plant pathologist.

Analyze the crop image and ALWAYS return a diagnosis.
Even if uncertain, make the MOST LIKELY diagnosis.

STRICT RULES:
- Respond ONLY in valid JSON
- Do NOT add explanations outside JSON
- Do NOT say "cannot determine"
- Use best visual judgement

JSON FORMAT:
{
  "isPlant": true or false,
  "crop": "string",
  "disease": "string",
  "risk": "Low | Medium | High",
  "actions": ["action1", "action2", "action3"],
  "warning": "string"
}`

// Client calls the Gemini vision endpoint. It issues exactly one network
// call per Classify invocation; retry policy belongs to the caller.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a vision client from configuration.
func NewClient(cfg config.VisionConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ── Gemini wire types ───────────────────────────────────────

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inline_data,omitempty"`
}

type generateInline struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Classify sends the image to the vision model and returns a tagged
// outcome. It never returns an error; every failure mode is folded into
// the Outcome.
func (c *Client) Classify(ctx context.Context, image []byte, mimeType string) Outcome {
	ctx, span := tracer.Start(ctx, "vision.classify")
	defer span.End()
	span.SetAttributes(
		attribute.String("vision.model", c.model),
		attribute.Int("vision.image_bytes", len(image)),
	)

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	reqBody := generateRequest{
		Contents: []generateContent{{
			Role: "user",
			Parts: []generatePart{
				{Text: classifyPrompt},
				{InlineData: &generateInline{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return c.fail(span, fmt.Errorf("vision: marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return c.fail(span, fmt.Errorf("vision: create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return c.fail(span, fmt.Errorf("vision: request failed: %w", err))
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusTooManyRequests {
		span.SetAttributes(attribute.String("vision.outcome", StatusRateLimited.String()))
		log.Warn().Str("model", c.model).Msg("Vision API rate limited")
		return Outcome{Status: StatusRateLimited}
	}

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return c.fail(span, fmt.Errorf("vision: status %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var genResp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&genResp); err != nil {
		return c.fail(span, fmt.Errorf("vision: decode response: %w", err))
	}

	text := ""
	if len(genResp.Candidates) > 0 {
		for _, p := range genResp.Candidates[0].Content.Parts {
			text += p.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		span.SetAttributes(attribute.String("vision.outcome", StatusInvalidResponse.String()))
		return Outcome{Status: StatusInvalidResponse}
	}

	span.SetAttributes(attribute.String("vision.outcome", StatusOK.String()))
	return Outcome{Status: StatusOK, Text: text}
}

func (c *Client) fail(span trace.Span, err error) Outcome {
	span.SetAttributes(attribute.String("vision.outcome", StatusError.String()))
	log.Warn().Err(err).Str("model", c.model).Msg("Vision call failed")
	return Outcome{Status: StatusError, Err: err}
}
