package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/metrics"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/platform/retry"
)

const defaultEncoderTimeout = 5 * time.Second

// HTTPEncoder calls an out-of-process embedding model server. Per-call
// failures are retried with backoff; sustained failure trips a circuit
// breaker so in-flight classification requests fail fast instead of queuing
// behind a dead model.
type HTTPEncoder struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	policy  retry.Policy
}

// NewHTTPEncoder builds an encoder client for the model server at baseURL.
// The timeout bounds a single HTTP attempt; callers bound the whole request
// through context deadlines.
func NewHTTPEncoder(baseURL string, timeout time.Duration) *HTTPEncoder {
	if timeout <= 0 {
		timeout = defaultEncoderTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "encoder",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Encoder circuit breaker state change", "from", from.String(), "to", to.String())
			metrics.BreakerStateChanges.WithLabelValues(to.String()).Inc()
		},
	})

	return &HTTPEncoder{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		policy: retry.Policy{
			MaxAttempts:      3,
			InitialBackoff:   100 * time.Millisecond,
			RateLimitBackoff: time.Second,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				slog.Debug("Retrying encoder call", "attempt", attempt, "error", err, "backoff", backoff)
			},
		},
	}
}

// Encode requests an embedding vector for text.
func (e *HTTPEncoder) Encode(ctx context.Context, text string) ([]float64, error) {
	return retry.Do(ctx, e.policy, classifyEncodeError, func() ([]float64, error) {
		result, err := e.breaker.Execute(func() (any, error) {
			return e.encodeOnce(ctx, text)
		})
		if err != nil {
			return nil, err
		}
		return result.([]float64), nil
	})
}

func (e *HTTPEncoder) encodeOnce(ctx context.Context, text string) ([]float64, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v1/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(body))}
	}

	var out struct {
		Vector []float64 `json:"vector"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode encoder response: %w", err)
	}
	if len(out.Vector) == 0 {
		return nil, fmt.Errorf("encoder returned empty vector")
	}
	return out.Vector, nil
}

// Ping checks that the model server is reachable, for readiness probes.
func (e *HTTPEncoder) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("encoder health check returned status %d", resp.StatusCode)
	}
	return nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("encoder returned status %d: %s", e.code, e.body)
}

// classifyEncodeError decides retryability: client errors and an open
// breaker are permanent for this request, 429s wait out the rate limit,
// everything else (network failures, 5xx) is transient.
func classifyEncodeError(err error) retry.Action {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return retry.Stop
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retry.Stop
	}
	var status *statusError
	if errors.As(err, &status) {
		switch {
		case status.code == http.StatusTooManyRequests:
			return retry.After
		case status.code >= 400 && status.code < 500:
			return retry.Stop
		}
	}
	return retry.Retry
}
