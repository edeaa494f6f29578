package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"booking-client/domain"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// BackendClient talks to the hotel backend service. Every call goes through
// the circuit breaker; read calls additionally retry with exponential
// backoff before the breaker counts a failure.
type BackendClient struct {
	baseURL        string
	httpClient     *http.Client
	logger         *logrus.Logger
	Tracer         trace.Tracer
	CircuitBreaker *gobreaker.CircuitBreaker
}

func NewBackendClient(baseURL string, logger *logrus.Logger, tr trace.Tracer) *BackendClient {
	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "BackendHTTPRequest",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{"path": "clients/client"}).Warnf("Circuit Breaker state changed from %s to %s", from, to)
		},
	})

	return &BackendClient{
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		logger:         logger,
		Tracer:         tr,
		CircuitBreaker: circuitBreaker,
	}
}

type statusMessage struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (bc *BackendClient) performRequestWithCircuitBreaker(ctx context.Context, token, method, url string, requestBody []byte, retryable bool) (*http.Response, error) {
	_, span := bc.Tracer.Start(ctx, "BackendClient.performRequestWithCircuitBreaker")
	defer span.End()

	maxRetries := 1
	if retryable {
		maxRetries = 3
	}

	operation := func() (interface{}, error) {
		var body io.Reader
		if requestBody != nil {
			body = bytes.NewBuffer(requestBody)
		}

		req, err := http.NewRequest(method, url, body)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if requestBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err := bc.httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return resp, nil
	}

	result, err := bc.CircuitBreaker.Execute(func() (interface{}, error) {
		return retryOperationWithExponentialBackoff(ctx, maxRetries, operation)
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, gobreaker.ErrOpenState) {
			return nil, &domain.TransportError{Err: errors.New("backend service is not available")}
		}
		return nil, &domain.TransportError{Err: err}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		span.SetStatus(codes.Error, "unexpected response type from Circuit Breaker")
		return nil, &domain.TransportError{Err: errors.New("unexpected response type from Circuit Breaker")}
	}
	return resp, nil
}

func retryOperationWithExponentialBackoff(ctx context.Context, maxRetries int, operation func() (interface{}, error)) (interface{}, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err
		backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
		time.Sleep(backoff)
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeRejection turns a non-2xx response into the error taxonomy. The
// server-provided message is propagated verbatim when present; conflict
// responses become overlap rejections.
func decodeRejection(resp *http.Response) error {
	var payload statusMessage
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		message = payload.Message
	}

	backendErr := domain.BackendError{StatusCode: resp.StatusCode, Message: message}
	if resp.StatusCode == http.StatusConflict {
		return &domain.OverlapError{BackendError: backendErr}
	}
	return &backendErr
}

func (bc *BackendClient) url(path string) string {
	return bc.baseURL + path
}
