// Package llm provides a minimal multi-provider LLM client.
//
// Lanyard treats the model backend as an advisory collaborator: every
// caller is expected to degrade gracefully when no client can be built
// or a completion fails. The policies for that degradation live with
// the callers, not here.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorewood/lanyard/internal/output"
)

// Provider represents an LLM provider.
type Provider string

// Supported LLM providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderLocal     Provider = "local"
)

// Request represents an LLM completion request.
type Request struct {
	System      string  // System prompt
	Prompt      string  // User prompt
	Temperature float64 // Temperature (0 uses default)
	MaxTokens   int     // Max tokens (0 uses default)
}

// Response represents an LLM completion response.
type Response struct {
	Content string // Generated content
	Model   string // Model used
}

// Completer is the capability lanyard's core logic depends on: submit one
// request, get back the eventually-complete text. *Client satisfies it;
// tests substitute doubles.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a provider-agnostic LLM client.
type Client struct {
	provider   Provider
	model      string
	apiKey     string
	httpClient HTTPDoer
}

// New creates a new LLM client for the given model.
// Model can be a combined format like "claude-haiku", "gemini-flash", "gpt-5-nano".
// Provider is inferred from the model name if not specified.
func New(model string, provider Provider) (*Client, error) {
	if provider == "" {
		provider, model = parseProviderPrefix(model)
	}
	if provider == "" {
		provider = inferProvider(model)
	}

	model = resolveModelAlias(model, provider)

	apiKey, err := apiKeyFor(provider)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: provider,
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

// FromEnv builds a client from the environment alone.
//
// LANYARD_MODEL selects the model when set. Otherwise the first cloud
// provider with an API key in the environment is used with its default
// alias. Returns an error when no model is available; callers are
// expected to treat that as "AI unavailable" and take their fallback
// path rather than surfacing a failure.
func FromEnv() (*Client, error) {
	if model := os.Getenv("LANYARD_MODEL"); model != "" {
		return New(model, "")
	}

	for _, p := range cloudProviders {
		if os.Getenv(envVarForProvider[p]) != "" {
			return New(defaultAlias[p], p)
		}
	}

	if os.Getenv("LOCAL_LLM_URL") != "" {
		return New("local", ProviderLocal)
	}

	return nil, output.NewUserError("no model available: set LANYARD_MODEL or an API key (" +
		strings.Join(APIKeyEnvVars(), ", ") + ")")
}

// Complete generates a completion for the given request.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	switch c.provider {
	case ProviderAnthropic:
		return c.completeAnthropic(ctx, req)
	case ProviderOpenAI:
		return c.completeOpenAI(ctx, req, "https://api.openai.com/v1")
	case ProviderGoogle:
		return c.completeGoogle(ctx, req)
	case ProviderLocal:
		return c.completeOpenAI(ctx, req, LocalServerURL())
	default:
		return nil, output.NewUserError(fmt.Sprintf("unsupported provider: %s", c.provider))
	}
}

// Model returns the resolved model name.
func (c *Client) Model() string {
	return c.model
}

// LocalServerURL returns the URL for the local LLM server.
// Defaults to http://localhost:1234/v1 (LM Studio default).
func LocalServerURL() string {
	if url := os.Getenv("LOCAL_LLM_URL"); url != "" {
		return url
	}
	return "http://localhost:1234/v1"
}

// doRequest performs an HTTP POST request with JSON body.
func (c *Client) doRequest(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Truncate error body to prevent sensitive data leakage
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewSystemError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errBody))
	}

	return respBody, nil
}
