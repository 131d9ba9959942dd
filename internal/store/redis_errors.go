package store

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ErrorClassification indicates whether a failed store operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. the server is still starting or the connection dropped).
	Retryable
)

// ErrorClassificator decides whether an error returned by a backend is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// RedisErrorClassifier implements [ErrorClassificator] for go-redis errors.
type RedisErrorClassifier struct{}

// NewRedisErrorClassifier constructs a [RedisErrorClassifier].
func NewRedisErrorClassifier() *RedisErrorClassifier {
	return &RedisErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Retryable:
//   - network errors (dial refused, timeouts, reset connections);
//   - LOADING, BUSY, TRYAGAIN, CLUSTERDOWN and MASTERDOWN server replies.
//
// Everything else, context cancellation and redis.Nil included, is
// NonRetryable.
func (c *RedisErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil || errors.Is(err, redis.Nil) {
		return NonRetryable
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NonRetryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable
	}

	msg := err.Error()
	for _, reply := range []string{"LOADING", "BUSY", "TRYAGAIN", "CLUSTERDOWN", "MASTERDOWN"} {
		if strings.Contains(msg, reply) {
			return Retryable
		}
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "EOF") {
		return Retryable
	}

	return NonRetryable
}
