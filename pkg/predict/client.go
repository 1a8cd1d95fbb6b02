package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is used when neither an option nor BaseURLEnv is set.
	DefaultBaseURL = "http://localhost:5000"
	// BaseURLEnv overrides the backend base URL.
	BaseURLEnv = "BACKEND_URL"

	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the backend base URL. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the logger used for transport diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithContract overrides the embedded contract.
func WithContract(contract *Contract) Option {
	return func(c *Client) {
		if contract != nil {
			c.contract = contract
		}
	}
}

// Health is the backend's liveness report.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Client talks to the prediction backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	contract   *Contract
}

// New constructs a Client. The base URL resolves from WithBaseURL, then
// BaseURLEnv, then DefaultBaseURL.
func New(options ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	c.baseURL = ResolveBaseURL(c.baseURL)

	if c.contract == nil {
		contract, err := DefaultContract()
		if err != nil {
			return nil, err
		}
		c.contract = contract
	}
	return c, nil
}

// ResolveBaseURL applies the option, environment, default precedence and trims
// trailing slashes.
func ResolveBaseURL(explicit string) string {
	base := strings.TrimSpace(explicit)
	if base == "" {
		base = strings.TrimSpace(os.Getenv(BaseURLEnv))
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

// BaseURL reports the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type predictResponse struct {
	Prediction string `json:"prediction"`
	Error      string `json:"error"`
}

// Predict sends payload and returns the prediction text. Errors are either a
// *RemoteRejection or a *TransportError, except for contract violations of the
// outgoing payload.
func (c *Client) Predict(ctx context.Context, payload Payload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("predict: encode payload: %w", err)
	}
	if err := c.contract.CheckRequest(body); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return "", transportErr("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, decoded, err := c.do(req)
	if err != nil {
		return "", err
	}
	if err := c.contract.CheckResponse(decoded); err != nil {
		return "", transportErr("check response", err)
	}

	var out predictResponse
	if err := remarshal(decoded, &out); err != nil {
		return "", transportErr("decode response", err)
	}
	if out.Error != "" {
		return "", &RemoteRejection{Message: out.Error, StatusCode: status}
	}
	return out.Prediction, nil
}

// Health queries GET {base}/health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return Health{}, transportErr("build request", err)
	}
	req.Header.Set("Accept", "application/json")

	status, decoded, err := c.do(req)
	if err != nil {
		return Health{}, err
	}
	if status != http.StatusOK {
		return Health{}, transportErr("health", fmt.Errorf("unexpected status %d", status))
	}
	if err := c.contract.CheckHealth(decoded); err != nil {
		return Health{}, transportErr("check health", err)
	}

	var out Health
	if err := remarshal(decoded, &out); err != nil {
		return Health{}, transportErr("decode health", err)
	}
	return out, nil
}

func (c *Client) do(req *http.Request) (int, any, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, transportErr("send", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, transportErr("read body", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return resp.StatusCode, nil, transportErr("decode body", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("backend response")
	return resp.StatusCode, decoded, nil
}

func remarshal(value any, target any) error {
	if value == nil {
		return errors.New("empty body")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
