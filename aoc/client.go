package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client fetches puzzle pages and inputs from adventofcode.com, caching them
// under the configured cache directory.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	cfg         *Config
	logger      *zap.SugaredLogger
}

// NewClient returns a client for cfg. Requests are spaced by
// cfg.RequestInterval with a burst of 2 so that fetching an input and its
// description does not stall.
func NewClient(cfg *Config, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Every(cfg.RequestInterval), 2),
		cfg:         cfg,
		logger:      logger,
	}
}

// Input returns the puzzle input for the day.
func (c *Client) Input(ctx context.Context, year, day int) ([]byte, error) {
	return c.fileOrFetch(ctx,
		filepath.Join(c.cfg.CacheDir, fmt.Sprint(year), fmt.Sprintf("%d.input", day)),
		fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day))
}

// Description returns the HTML puzzle page for the day.
func (c *Client) Description(ctx context.Context, year, day int) ([]byte, error) {
	return c.fileOrFetch(ctx,
		filepath.Join(c.cfg.CacheDir, fmt.Sprint(year), fmt.Sprintf("%d.html", day)),
		fmt.Sprintf("%s/%d/day/%d", c.baseURL, year, day))
}

// Submit posts answer for the day's part and reports the verdict.
func (c *Client) Submit(ctx context.Context, year, day int, part, answer string) (Verdict, error) {
	form := url.Values{
		"level":  {part},
		"answer": {answer},
	}
	u := fmt.Sprintf("%s/%d/day/%d/answer", c.baseURL, year, day)
	req, err := c.request(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	body, err := c.do(req)
	if err != nil {
		return Verdict{}, err
	}
	msg, err := articleMarkdown(body)
	if err != nil {
		return Verdict{}, fmt.Errorf("reading submit response: %w", err)
	}
	return Verdict{Outcome: classifyResponse(msg), Message: msg}, nil
}

func (c *Client) request(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	session, err := c.cfg.SessionToken()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if err := c.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	c.logger.Debugw("request", "method", req.Method, "url", req.URL.String())
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return io.ReadAll(res.Body)
}

func (c *Client) fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		c.logger.Debugw("cache hit", "file", filename)
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	req, err := c.request(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	c.logger.Infow("fetched", "url", url, "size", humanize.Bytes(uint64(len(body))))
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

// Outcome classifies the response to an answer submission.
type Outcome string

const (
	OutcomeUnknown     Outcome = "unknown"
	OutcomeCorrect     Outcome = "correct"
	OutcomeWrong       Outcome = "wrong"
	OutcomeTooSoon     Outcome = "too-soon"
	OutcomeAlreadyDone Outcome = "already-done"
)

// Final reports whether resubmitting the same answer is pointless.
func (o Outcome) Final() bool {
	return o == OutcomeCorrect || o == OutcomeWrong || o == OutcomeAlreadyDone
}

// Verdict is the server's response to a submission.
type Verdict struct {
	Outcome Outcome
	Message string
}

func classifyResponse(msg string) Outcome {
	switch {
	case strings.Contains(msg, "That's the right answer"):
		return OutcomeCorrect
	case strings.Contains(msg, "That's not the right answer"):
		return OutcomeWrong
	case strings.Contains(msg, "You gave an answer too recently"):
		return OutcomeTooSoon
	case strings.Contains(msg, "Did you already complete it"):
		return OutcomeAlreadyDone
	}
	return OutcomeUnknown
}
