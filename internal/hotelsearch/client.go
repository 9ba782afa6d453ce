// Package hotelsearch is the client side of the SmartStay hotel search API.
//
// Every call is a single request/response: no retries, no caching. Failures
// come back as *Error values of kind KindHTTP, KindNetwork, or KindParse and
// are reported to the client's ErrorLogger before being returned.
package hotelsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Client talks to a SmartStay API rooted at BaseURL.
// A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     ErrorLogger
}

// New returns a Client for baseURL using http.DefaultClient and logging
// failures through slog.Default().
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Logger:     NewSlogLogger(nil),
	}
}

// Result is a successfully decoded JSON response body. Its shape is defined
// by the server, so the client keeps both the raw bytes and the generic value.
type Result struct {
	Raw   json.RawMessage
	Value any
}

// Decode unmarshals the raw body into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.Raw, v)
}

// RequestOptions customises a call to Do. The zero value is a GET with no body.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   any // JSON-encoded when non-nil
}

// Do issues one request to endpoint and decodes the JSON response.
// Content-Type is only sent when a body is present.
func (c *Client) Do(ctx context.Context, endpoint string, opts *RequestOptions) (Result, error) {
	res, err := c.do(ctx, endpoint, opts)
	if err != nil {
		c.logError(ctx, err)
		return Result{}, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, endpoint string, opts *RequestOptions) (Result, *Error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(opts.Body); err != nil {
			return Result{}, networkError(err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return Result{}, networkError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Caller headers replace the defaults key by key.
	for k, vs := range opts.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Result{}, transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return Result{}, httpError(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, transportError(ctx, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Result{}, parseError(err)
	}
	return Result{Raw: data, Value: v}, nil
}

// baseURL is BaseURL without trailing slashes.
func (c *Client) baseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// transportError maps a failure to send or read a request. Cancellation by
// the caller becomes "aborted"; deadlines keep their own message.
func transportError(ctx context.Context, err error) *Error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return abortedError(err)
	}
	return networkError(err)
}
