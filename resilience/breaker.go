package resilience

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// state is the circuit breaker state machine position.
type state int

const (
	stateClosed state = iota
	stateOpen
	stateHalfOpen
)

func (s state) String() string {
	switch s {
	case stateClosed:
		return "closed"
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker and retry parameters.
type Config struct {
	// MaxAttempts is the number of attempts per call while the breaker is
	// closed. Each failed attempt sleeps with exponential backoff before the
	// next one.
	MaxAttempts int

	// BaseDelay is the initial backoff delay; it doubles on each retry.
	BaseDelay time.Duration

	// FailureThreshold is the failure rate in [0,1] that opens the breaker.
	FailureThreshold float64

	// MinSamples is the minimum number of completed calls before the failure
	// rate is evaluated. Prevents a single early failure from opening the
	// breaker.
	MinSamples int

	// CoolDown is how long the breaker stays open before allowing a probe.
	CoolDown time.Duration

	// WindowSize caps how many recent call outcomes are tracked.
	WindowSize int
}

// DefaultConfig returns breaker parameters suitable for calls to external
// AI services.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      3,
		BaseDelay:        time.Second,
		FailureThreshold: 0.5,
		MinSamples:       10,
		CoolDown:         30 * time.Second,
		WindowSize:       100,
	}
}

// Breaker is a circuit breaker with built-in retry.
// It is safe for concurrent use.
type Breaker struct {
	config Config
	logger *slog.Logger

	mu        sync.Mutex
	state     state
	outcomes  []bool // sliding window of call outcomes, true = failure
	openedAt  time.Time
	probing   bool
	now       func() time.Time
}

// NewBreaker creates a closed circuit breaker with the given configuration.
// Zero-valued config fields are replaced with defaults.
func NewBreaker(config Config) *Breaker {
	def := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = def.MaxAttempts
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = def.BaseDelay
	}
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = def.FailureThreshold
	}
	if config.MinSamples <= 0 {
		config.MinSamples = def.MinSamples
	}
	if config.CoolDown <= 0 {
		config.CoolDown = def.CoolDown
	}
	if config.WindowSize <= 0 {
		config.WindowSize = def.WindowSize
	}
	return &Breaker{
		config: config,
		logger: slog.Default().With("component", "breaker"),
		state:  stateClosed,
		now:    time.Now,
	}
}

// Do runs the operation through the breaker.
//
// Closed: the operation runs with up to MaxAttempts retries; the final
// outcome is recorded and may open the breaker.
// Open: returns ErrCircuitOpen immediately, unless the cool-down has elapsed,
// in which case one probe call is allowed through (half-open).
// Half-open: a successful probe closes the breaker, a failed probe reopens it.
func (b *Breaker) Do(ctx context.Context, operation func() error) error {
	if !b.acquire() {
		return ErrCircuitOpen
	}

	err := b.retry(ctx, operation)
	b.record(err != nil)
	return err
}

// retry runs the operation up to MaxAttempts times, doubling the delay after
// each failed try. Backoff sleeps honor context cancellation, and the error
// of the final attempt is returned unwrapped so callers can match on it.
func (b *Breaker) retry(ctx context.Context, operation func() error) error {
	delay := b.config.BaseDelay
	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := operation()
		if err == nil {
			if attempt > 1 {
				b.logger.Debug("call succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt >= b.config.MaxAttempts {
			return err
		}

		b.logger.Debug("call failed, backing off",
			"attempt", attempt,
			"delay", delay,
			"err", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

// State returns the current breaker state as a string, for logging and
// status endpoints.
func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.String()
}

// acquire reports whether a call may proceed, transitioning open -> half-open
// when the cool-down has elapsed.
func (b *Breaker) acquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.now().Sub(b.openedAt) < b.config.CoolDown {
			return false
		}
		b.state = stateHalfOpen
		b.probing = true
		b.logger.Info("circuit breaker half-open, allowing probe call")
		return true
	case stateHalfOpen:
		// Only one probe at a time
		if b.probing {
			return false
		}
		b.probing = true
		return true
	}
	return false
}

// record stores a call outcome and updates the breaker state.
func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		b.probing = false
		if failed {
			b.state = stateOpen
			b.openedAt = b.now()
			b.logger.Warn("probe call failed, circuit breaker reopened")
		} else {
			b.state = stateClosed
			b.outcomes = b.outcomes[:0]
			b.logger.Info("probe call succeeded, circuit breaker closed")
		}
		return
	}

	b.outcomes = append(b.outcomes, failed)
	if len(b.outcomes) > b.config.WindowSize {
		b.outcomes = b.outcomes[len(b.outcomes)-b.config.WindowSize:]
	}

	if len(b.outcomes) < b.config.MinSamples {
		return
	}

	failures := 0
	for _, f := range b.outcomes {
		if f {
			failures++
		}
	}
	rate := float64(failures) / float64(len(b.outcomes))
	if rate >= b.config.FailureThreshold {
		b.state = stateOpen
		b.openedAt = b.now()
		b.logger.Warn("circuit breaker opened",
			"failureRate", rate,
			"samples", len(b.outcomes))
	}
}
