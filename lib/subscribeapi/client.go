// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	"github.com/bureau-foundation/techfeed/lib/netutil"
	"github.com/bureau-foundation/techfeed/lib/version"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Client calls the subscription backend. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	encoder    *form.Encoder

	// timeout applies to the default HTTP client only.
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The caller's client
// is used as-is; wrap its transport with gzhttp.Transport to keep
// compressed responses.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// WithLogger sets the logger for per-request debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// It has no effect on a client supplied through WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.timeout = timeout
	}
}

// NewClient returns a client for the backend at baseURL, which must be
// an absolute http or https URL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q: scheme must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q: missing host", baseURL)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")

	client := &Client{
		baseURL: parsed,
		logger:  slog.New(slog.DiscardHandler),
		encoder: form.NewEncoder(),
		timeout: DefaultTimeout,
	}
	for _, option := range options {
		option(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: gzhttp.Transport(http.DefaultTransport),
			Timeout:   client.timeout,
		}
	}
	return client, nil
}

// BaseURL returns the backend base URL.
func (client *Client) BaseURL() string {
	return client.baseURL.String()
}

// Companies returns the company candidate list.
func (client *Client) Companies(ctx context.Context) ([]string, error) {
	var entries []companyEntry
	if err := client.getJSON(ctx, "/companies", nil, &entries); err != nil {
		return nil, err
	}
	companies := make([]string, 0, len(entries))
	for _, entry := range entries {
		companies = append(companies, entry.Company)
	}
	return companies, nil
}

// Categories returns the category candidate list for one company.
func (client *Client) Categories(ctx context.Context, company string) ([]string, error) {
	var categories []string
	query := url.Values{"company": {company}}
	if err := client.getJSON(ctx, "/categories", query, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// TechTeams returns the tech-team candidate list with each name's
// first letter capitalised for display.
func (client *Client) TechTeams(ctx context.Context) ([]string, error) {
	var teams []string
	if err := client.getJSON(ctx, "/techteams", nil, &teams); err != nil {
		return nil, err
	}
	for index, team := range teams {
		teams[index] = Capitalize(team)
	}
	return teams, nil
}

// SubscriptionsForEmail returns the existing subscriptions of email,
// grouped by company or topic. No subscriptions is an empty result,
// not an error.
func (client *Client) SubscriptionsForEmail(ctx context.Context, email string) (Subscriptions, error) {
	var subscriptions Subscriptions
	query := url.Values{"email": {email}}
	if err := client.getJSON(ctx, "/subscriptions_for_email", query, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// Subscribe submits the subscription form. A result whose status is
// not "success" is returned together with a *RejectedError.
func (client *Client) Subscribe(ctx context.Context, request SubscribeRequest) (Result, error) {
	values, err := client.encoder.Encode(request.wire())
	if err != nil {
		return Result{}, fmt.Errorf("encoding subscribe form: %w", err)
	}
	body := strings.NewReader(values.Encode())
	return client.postResult(ctx, "/subscribe", "application/x-www-form-urlencoded", body)
}

// Interested registers interest in upcoming features. Only the status
// code matters; any 2xx is success.
func (client *Client) Interested(ctx context.Context, email string) error {
	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("encoding interest: %w", err)
	}
	response, err := client.do(ctx, http.MethodPost, "/interested", nil, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &StatusError{
			Method:     http.MethodPost,
			Path:       "/interested",
			StatusCode: response.StatusCode,
			Body:       netutil.ErrorBody(response.Body),
		}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, netutil.MaxResponseSize))
	return nil
}

// Feedback sends free-text feedback.
func (client *Client) Feedback(ctx context.Context, text string) (Result, error) {
	payload, err := json.Marshal(map[string]string{"feedback": text})
	if err != nil {
		return Result{}, fmt.Errorf("encoding feedback: %w", err)
	}
	return client.postResult(ctx, "/feedback", "application/json", bytes.NewReader(payload))
}

// Capitalize upper-cases the first letter of name. The backend stores
// tech-team names in lower case.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

func (client *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	response, err := client.do(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &StatusError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: response.StatusCode,
			Body:       netutil.ErrorBody(response.Body),
		}
	}
	if err := netutil.DecodeResponse(response.Body, target); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}

// postResult posts a body and decodes a Result. The backend reports
// rejections with a 4xx status and a Result body, so a decodable JSON
// body wins over the status code.
func (client *Client) postResult(ctx context.Context, path, contentType string, body io.Reader) (Result, error) {
	response, err := client.do(ctx, http.MethodPost, path, nil, contentType, body)
	if err != nil {
		return Result{}, err
	}
	defer response.Body.Close()

	data, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return Result{}, fmt.Errorf("POST %s: reading response body: %w", path, err)
	}

	var result Result
	decodeErr := fmt.Errorf("content type %q is not JSON", response.Header.Get("Content-Type"))
	if netutil.IsJSON(response.Header.Get("Content-Type")) {
		decodeErr = json.Unmarshal(data, &result)
	}
	if decodeErr != nil || result.Status == "" {
		if response.StatusCode < 200 || response.StatusCode > 299 {
			return Result{}, &StatusError{
				Method:     http.MethodPost,
				Path:       path,
				StatusCode: response.StatusCode,
				Body:       string(data),
			}
		}
		if decodeErr != nil {
			return Result{}, fmt.Errorf("POST %s: decoding response body: %w", path, decodeErr)
		}
	}
	if !result.OK() {
		return result, &RejectedError{Path: path, Result: result}
	}
	return result, nil
}

func (client *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (*http.Response, error) {
	target := client.baseURL.JoinPath(path)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	request.Header.Set(netutil.RequestIDHeader, requestID)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", version.UserAgent())
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.DebugContext(ctx, "request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	client.logger.DebugContext(ctx, "request complete",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", response.StatusCode,
		"duration", time.Since(start),
	)
	return response, nil
}
