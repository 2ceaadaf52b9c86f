// Package remote talks to the sibling APIs (zaken, documenten) that hold the
// canonical side of object relations.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

const maxErrorBody = 2048

// ErrNoAPI is returned when no configured API root matches a URL.
var ErrNoAPI = errors.New("no remote API configured")

// StatusError is a non-2xx answer of a remote API.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// Config holds the transport settings of the remote client.
type Config struct {
	// Timeout bounds a single attempt; zero disables the client timeout.
	Timeout  time.Duration
	RetryMax int
}

// Client implements ports.RemoteClient over retryablehttp. Only reads are
// retried; creates and deletes are sent exactly once.
type Client struct {
	retrying *retryablehttp.Client
	once     *retryablehttp.Client
	creds    *Credentials
	logger   zerolog.Logger
}

func NewClient(cfg Config, creds *Credentials, logger zerolog.Logger) *Client {
	build := func(retryMax int) *retryablehttp.Client {
		c := retryablehttp.NewClient()
		c.RetryMax = retryMax
		c.RetryWaitMin = 100 * time.Millisecond
		c.RetryWaitMax = 2 * time.Second
		c.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		c.Logger = leveledLogger{logger: logger}
		c.ErrorHandler = retryablehttp.PassthroughErrorHandler
		return c
	}
	return &Client{
		retrying: build(cfg.RetryMax),
		once:     build(0),
		creds:    creds,
		logger:   logger,
	}
}

var _ ports.RemoteClient = (*Client)(nil)

func (c *Client) List(ctx context.Context, ref, resource string, query map[string]string) ([]ports.Object, error) {
	collection, err := c.collectionURL(ref, resource)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		collection += "?" + values.Encode()
	}

	var raw json.RawMessage
	if err := c.do(ctx, c.retrying, http.MethodGet, collection, resource, "list", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw)
}

func (c *Client) Create(ctx context.Context, ref, resource string, body any) (ports.Object, error) {
	collection, err := c.collectionURL(ref, resource)
	if err != nil {
		return nil, err
	}
	var created ports.Object
	if err := c.do(ctx, c.once, http.MethodPost, collection, resource, "create", body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) Retrieve(ctx context.Context, target string) (ports.Object, error) {
	var obj ports.Object
	if err := c.do(ctx, c.retrying, http.MethodGet, target, resourceOf(target), "retrieve", nil, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (c *Client) Delete(ctx context.Context, target string) error {
	return c.do(ctx, c.once, http.MethodDelete, target, resourceOf(target), "delete", nil, nil)
}

// collectionURL resolves the collection of resource in the API ref lives in.
func (c *Client) collectionURL(ref, resource string) (string, error) {
	cred, ok := c.creds.For(ref)
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrNoAPI, ref)
	}
	return cred.APIRoot + plural(resource), nil
}

func (c *Client) do(ctx context.Context, client *retryablehttp.Client, method, target, resource, operation string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.RemoteRequestsTotal.WithLabelValues(resource, operation, outcome).Inc()
		metrics.RemoteRequestDuration.WithLabelValues(resource, operation).Observe(time.Since(start).Seconds())
	}()

	var payload any
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", resource, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred, ok := c.creds.For(target); ok {
		token, err := c.creds.Token(cred)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, URL: target, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// decodeList accepts both a bare array and a paginated {"results": [...]} body.
func decodeList(raw json.RawMessage) ([]ports.Object, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var items []ports.Object
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}
	var page struct {
		Results []ports.Object `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return page.Results, nil
}

var irregularPlurals = map[string]string{
	"zaak": "zaken",
}

// plural turns a resource name into its collection path segment.
func plural(resource string) string {
	if p, ok := irregularPlurals[resource]; ok {
		return p
	}
	return resource + "en"
}

// resourceOf returns the collection segment of a resource URL, used as a
// metric label.
func resourceOf(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "unknown"
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return "unknown"
	}
	return segments[len(segments)-2]
}
