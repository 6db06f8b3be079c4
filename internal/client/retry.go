package client

import (
	"context"
	"time"

	"filmbox/internal/catalog"
	"filmbox/internal/config"
)

// RetryPolicy is the startup connection policy: a fixed inter-attempt
// delay and a fixed attempt count, no backoff, no jitter.
type RetryPolicy struct {
	Attempts     int
	Delay        time.Duration
	InitialDelay time.Duration
}

// PolicyFromConfig converts the client config section into a RetryPolicy.
func PolicyFromConfig(cfg config.Client) RetryPolicy {
	return RetryPolicy{
		Attempts:     cfg.RetryAttempts,
		Delay:        time.Duration(cfg.RetryDelay) * time.Second,
		InitialDelay: time.Duration(cfg.InitialDelay) * time.Second,
	}
}

// ListWithRetry fetches the full list, retrying transport failures up to
// policy.Attempts times with a fixed delay. notify is called after each
// failed attempt with the attempt number; a later success resets nothing
// because the loop exits. The loop is cancellable through ctx.
func (c *Client) ListWithRetry(ctx context.Context, policy RetryPolicy, notify func(attempt, attempts int, err error)) ([]catalog.Record, error) {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}

	if policy.InitialDelay > 0 {
		if err := sleep(ctx, policy.InitialDelay); err != nil {
			return nil, err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		records, err := c.List(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if notify != nil {
			notify(attempt, policy.Attempts, err)
		}
		if attempt < policy.Attempts {
			if err := sleep(ctx, policy.Delay); err != nil {
				return nil, err
			}
		}
	}
	return nil, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
