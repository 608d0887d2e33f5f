package nerhttp

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
	"github.com/civiai/planning-analyzer/internal/infrastructure/resilience"
)

// ResilientRecognizer retries transient NER failures and trips a circuit
// breaker when the service is down. Analysis degrades to pattern-only
// extraction on exhausted retries, so the wrapper only has to bound how
// long a flaky service can stall the pipeline.
type ResilientRecognizer struct {
	inner    ports.EntityRecognizer
	executor *resilience.Executor
}

func NewResilientRecognizer(inner ports.EntityRecognizer, executor *resilience.Executor) *ResilientRecognizer {
	return &ResilientRecognizer{inner: inner, executor: executor}
}

func (r *ResilientRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	var entities map[string][]string
	err := r.executor.Execute(ctx, "ner.recognize", func(ctx context.Context) error {
		var innerErr error
		entities, innerErr = r.inner.Recognize(ctx, text)
		return innerErr
	}, classifyNERError)
	if err != nil {
		return nil, wrapTemporaryIfNeeded("recognize entities", err)
	}
	return entities, nil
}

func classifyNERError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if isRetryableHTTPStatus(statusErr.StatusCode) {
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		}
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}

func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		return err
	}

	class := classifyNERError(err)
	if class.Retryable || resilience.IsCircuitOpen(err) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
