package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"handhelds/internal/config"
	"handhelds/internal/pipeline"
)

var ErrEmptyLocation = errors.New("source location is empty")

// Loader reads sheet exports from disk or over HTTP(S).
type Loader struct {
	httpClient  *http.Client
	limiter     *RateLimiter
	maxAttempts int
	baseDelay   time.Duration
}

func NewLoader(cfg config.Config) *Loader {
	attempts := cfg.SourceMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Loader{
		httpClient:  &http.Client{Timeout: time.Duration(cfg.SourceTimeoutMs) * time.Millisecond},
		limiter:     NewRateLimiter(cfg.SourceRateLimitRPS),
		maxAttempts: attempts,
		baseDelay:   250 * time.Millisecond,
	}
}

func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (l *Loader) Load(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if !IsRemote(location) {
		return os.ReadFile(location)
	}
	return l.fetch(ctx, location)
}

// LoadTable loads a document and extracts its table; .xlsx locations go
// through the workbook reader, everything else is parsed as HTML.
func (l *Loader) LoadTable(ctx context.Context, location string) (pipeline.Table, error) {
	blob, err := l.Load(ctx, location)
	if err != nil {
		return pipeline.Table{}, fmt.Errorf("load %s: %w", location, err)
	}
	if isWorkbook(location) {
		table, err := pipeline.ExtractWorkbook(blob, "")
		if err != nil {
			return pipeline.Table{}, fmt.Errorf("read workbook %s: %w", location, err)
		}
		return table, nil
	}
	return pipeline.ExtractTable(string(blob)), nil
}

func isWorkbook(location string) bool {
	path := location
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

func (l *Loader) fetch(ctx context.Context, target string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		if err := l.limiter.WaitTurn(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/html,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,*/*")

		resp, err := l.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if err := l.backoff(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			if err := l.backoff(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if isRetryableStatus(resp.StatusCode) && attempt < l.maxAttempts {
				lastErr = fmt.Errorf("source status %d", resp.StatusCode)
				if err := l.sleep(ctx, attempt); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("source error: status=%d body=%s", resp.StatusCode, snippet(body))
		}
		return body, nil
	}

	if lastErr == nil {
		lastErr = errors.New("source request failed")
	}
	return nil, lastErr
}

// backoff sleeps before the next attempt; there is nothing to wait for after the last one.
func (l *Loader) backoff(ctx context.Context, attempt int) error {
	if attempt >= l.maxAttempts {
		return nil
	}
	return l.sleep(ctx, attempt)
}

func (l *Loader) sleep(ctx context.Context, attempt int) error {
	backoff := l.baseDelay*time.Duration(1<<(attempt-1)) + time.Duration(rand.Intn(100))*time.Millisecond
	timer := time.NewTimer(backoff)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

func snippet(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
