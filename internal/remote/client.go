package remote

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	userAgent         = "commit-digest-cli/1.0"
	maxRetries        = 3
	baseBackoffMs     = 1000
	requestTimeoutSec = 30
)

// NewClient creates a GitHub client for reading commit history. The token
// is optional: unauthenticated clients work for public repositories at a
// lower rate limit.
func NewClient(token string) *github.Client {
	base := http.RoundTripper(http.DefaultTransport)
	if token != "" {
		base = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   http.DefaultTransport,
		}
	}

	httpClient := &http.Client{
		Timeout:   requestTimeoutSec * time.Second,
		Transport: &retryTransport{base: base},
	}

	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return client
}

// retryTransport retries transient GitHub API failures: 5xx responses with
// exponential backoff, and rate-limited 403s honoring Retry-After.
type retryTransport struct {
	base http.RoundTripper
}

func (rt *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := rt.base.RoundTrip(req.Clone(req.Context()))
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				time.Sleep(calculateBackoff(attempt))
			}
			continue
		}

		if resp.StatusCode >= 500 && attempt < maxRetries {
			resp.Body.Close()
			time.Sleep(calculateBackoff(attempt))
			continue
		}

		if resp.StatusCode == http.StatusForbidden && attempt < maxRetries {
			if retryAfter := rateLimitRetryAfter(resp); retryAfter > 0 {
				resp.Body.Close()
				time.Sleep(retryAfter)
				continue
			}
		}

		return resp, nil
	}

	return nil, lastErr
}

// rateLimitRetryAfter returns the wait for a rate-limited response, zero
// when the 403 is not a rate limit.
func rateLimitRetryAfter(resp *http.Response) time.Duration {
	if retryAfterStr := resp.Header.Get("Retry-After"); retryAfterStr != "" {
		if seconds, err := strconv.Atoi(retryAfterStr); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		if resetStr := resp.Header.Get("X-RateLimit-Reset"); resetStr != "" {
			if reset, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
				if wait := time.Until(time.Unix(reset, 0)); wait > 0 {
					return wait + 5*time.Second
				}
			}
		}
	}

	return 0
}

// calculateBackoff is exponential: base * 2^attempt
func calculateBackoff(attempt int) time.Duration {
	backoffMs := baseBackoffMs * int(math.Pow(2, float64(attempt)))
	return time.Duration(backoffMs) * time.Millisecond
}
