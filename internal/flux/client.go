// Package flux is the client for the FreeFlux image generation API.
package flux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/fluxgen/service/internal/apperr"
)

const (
	defaultBaseURL = "https://api.freeflux.ai"
	generatePath   = "/v1/images/generate"

	// A generation call that has not answered within this window is a
	// terminal failure for the request; there is no retry.
	requestTimeout = 30 * time.Second

	dataURLPrefix = "data:image/png;base64,"
)

// Fixed generation policy. One model, one aspect ratio, no style, no LoRA —
// not configurable per request.
const (
	modelField = "flux_1_schnell"
	sizeField  = "16_9"
	styleField = "no_style"
)

// Client calls the generation API. It is safe for concurrent use and is
// meant to be created once at startup and shared across requests.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given API key. An empty key is
// tolerated here and reported as a configuration error on first use.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type generateResponse struct {
	Result string `json:"result"`
}

// Generate submits prompt to the generation API and returns the base64
// segment of the resulting PNG data URL. The payload is returned undecoded;
// the uploader owns decoding.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", apperr.Configuration("FLUX_API_KEY environment variable not set")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	fields := map[string]string{
		"prompt": prompt,
		"model":  modelField,
		"size":   sizeField,
		"lora":   "",
		"style":  styleField,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return "", apperr.Internal(fmt.Errorf("write form field %q: %w", name, err))
		}
	}
	if err := form.Close(); err != nil {
		return "", apperr.Internal(fmt.Errorf("close multipart form: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, body)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("build generation request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &apperr.Error{
			Kind:   apperr.KindUpstreamHTTP,
			Status: http.StatusInternalServerError,
			Detail: "image generation failed: upstream request error",
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperr.Upstream(resp.StatusCode,
			fmt.Sprintf("image generation failed: upstream returned status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Protocol("invalid API response format", err)
	}

	if out.Result == "" || !strings.HasPrefix(out.Result, dataURLPrefix) {
		return "", apperr.Protocol("invalid image data response", nil)
	}

	return strings.TrimPrefix(out.Result, dataURLPrefix), nil
}
