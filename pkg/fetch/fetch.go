// Package fetch downloads puzzle inputs from adventofcode.com.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the Advent of Code site.
const DefaultBaseURL = "https://adventofcode.com"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// MaxInputSize bounds the size of a downloaded input.
const MaxInputSize = 16 * 1024 * 1024

// ErrTooLarge is returned when a response body exceeds MaxInputSize.
var ErrTooLarge = errors.New("input exceeds size limit")

// Year is the event year inputs are fetched for.
const Year = 2021

// ErrNoSession is returned when no session cookie is configured.
var ErrNoSession = errors.New("no session configured (run: aoc config set --session <cookie>)")

// PuzzleURL returns the puzzle page for a day.
func PuzzleURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d", DefaultBaseURL, Year, day)
}

// Client downloads puzzle inputs.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for baseURL. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Options configures a download.
type Options struct {
	Session string
	Timeout time.Duration // Request timeout (uses DefaultTimeout if zero)
}

// Response contains the result of a download.
type Response struct {
	StatusCode int
	Bytes      int64
	Duration   time.Duration
	Error      error
}

// Success returns true if the input was downloaded and written.
func (r *Response) Success() bool {
	return r.Error == nil
}

// Download fetches the input for day and writes it to dest. dest is replaced
// only once the whole body has been received.
func (c *Client) Download(ctx context.Context, day int, dest string, opts Options) *Response {
	start := time.Now()
	resp := &Response{}
	fail := func(err error) *Response {
		resp.Error = err
		resp.Duration = time.Since(start)
		return resp
	}

	if opts.Session == "" {
		return fail(ErrNoSession)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, Year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", "github.com/andersquist/aoc2021")
	req.AddCookie(&http.Cookie{Name: "session", Value: opts.Session})

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("request failed: %w", err))
	}
	defer httpResp.Body.Close()

	resp.StatusCode = httpResp.StatusCode
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Drain a little of the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, 4096))
		return fail(fmt.Errorf("server returned status %d", httpResp.StatusCode))
	}

	n, err := writeAtomic(dest, httpResp.Body, MaxInputSize)
	resp.Bytes = n
	if err != nil {
		return fail(err)
	}

	resp.Duration = time.Since(start)
	return resp
}

// writeAtomic copies at most limit bytes of body to dest. A longer body
// leaves dest untouched.
func writeAtomic(dest string, body io.Reader, limit int64) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".input-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(body, limit+1))
	if err != nil {
		_ = tmp.Close()
		return n, fmt.Errorf("failed to read response: %w", err)
	}
	if n > limit {
		_ = tmp.Close()
		return n, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return n, fmt.Errorf("writing %s: %w", dest, err)
	}
	return n, nil
}
