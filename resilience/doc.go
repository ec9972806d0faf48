// Package resilience wraps calls to external services with retry and
// circuit-breaker behavior.
//
// A Breaker tracks the outcome of recent calls. While the failure rate stays
// below the configured threshold the breaker is closed and every call runs
// with exponential-backoff retries. Once the rate crosses the threshold the
// breaker opens: calls fail fast with ErrCircuitOpen until a cool-down period
// elapses, after which a single probe call is let through. A successful probe
// closes the breaker again; a failed probe reopens it.
//
//	breaker := resilience.NewBreaker(resilience.DefaultConfig())
//	err := breaker.Do(ctx, func() error {
//	    return client.Call(ctx)
//	})
//	if errors.Is(err, resilience.ErrCircuitOpen) {
//	    // service temporarily unavailable, do not count as a service failure
//	}
package resilience
