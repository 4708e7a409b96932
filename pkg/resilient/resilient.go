// Package resilient adds connect retries and a circuit breaker on top of
// pkg/client, for callers that want them.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// DialPolicy controls Dial. AttemptTimeout bounds every single Connect.
// Zero intervals keep the backoff package defaults; a zero MaxElapsed
// retries until ctx ends.
type DialPolicy struct {
	AttemptTimeout  time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

func (p DialPolicy) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = p.MaxElapsed
	b.Reset()
	return b
}

// Dial retries client.Connect with exponential backoff until it succeeds,
// ctx ends, or MaxElapsed passes. The last ConnectionError is returned.
func Dial(ctx context.Context, endpoint string, p DialPolicy, opts ...client.Option) (*client.Conn, error) {
	b := p.backOff()

	attempt := 0
	connect := func() (*client.Conn, error) {
		attempt++
		attemptCtx := ctx
		if p.AttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, p.AttemptTimeout)
			defer cancel()
		}
		return client.Connect(attemptCtx, endpoint, opts...)
	}
	notify := func(err error, next time.Duration) {
		common.LogWarn("Connect to kobe failed, retrying", map[string]interface{}{
			"endpoint": endpoint,
			"attempt":  attempt,
			"error":    err.Error(),
			"next":     next.String(),
		})
	}

	conn, err := backoff.RetryNotifyWithData(connect, backoff.WithContext(b, ctx), notify)
	if err != nil {
		var connErr *client.ConnectionError
		if errors.As(err, &connErr) {
			return nil, err
		}
		return nil, &client.ConnectionError{Endpoint: endpoint, Err: err}
	}
	return conn, nil
}

// BreakerSettings configures Client.
type BreakerSettings struct {
	Name string
	// MaxFailures consecutive unavailable errors open the breaker.
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
}

// Client guards a client.TaskAPI with a circuit breaker. Only errors that
// mean the service is unreachable count as failures.
type Client struct {
	api client.TaskAPI
	cb  *gobreaker.CircuitBreaker
}

var _ client.TaskAPI = (*Client)(nil)

func NewClient(api client.TaskAPI, s BreakerSettings) *Client {
	if s.Name == "" {
		s.Name = "kobe"
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	cbs := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !client.IsUnavailable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			common.LogWarn("Circuit breaker changed state", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}
	return &Client{api: api, cb: gobreaker.NewCircuitBreaker(cbs)}
}

// IsOpen reports whether err was returned without calling the service
// because the breaker is open or probing.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// State returns the breaker state name.
func (c *Client) State() string {
	return c.cb.State().String()
}

func (c *Client) SubmitAdhoc(ctx context.Context, req *kobe.RunAdhocRequest) (client.TaskHandle, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.api.SubmitAdhoc(ctx, req)
	})
	if err != nil {
		return client.TaskHandle{}, c.wrap(err)
	}
	return res.(client.TaskHandle), nil
}

func (c *Client) SubmitPlaybook(ctx context.Context, req *kobe.RunPlaybookRequest) (client.TaskHandle, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.api.SubmitPlaybook(ctx, req)
	})
	if err != nil {
		return client.TaskHandle{}, c.wrap(err)
	}
	return res.(client.TaskHandle), nil
}

func (c *Client) FetchResult(ctx context.Context, taskID string) (*client.TaskResult, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.api.FetchResult(ctx, taskID)
	})
	if err != nil {
		return nil, c.wrap(err)
	}
	return res.(*client.TaskResult), nil
}

func (c *Client) wrap(err error) error {
	if IsOpen(err) {
		return fmt.Errorf("breaker %s: %w", c.cb.Name(), err)
	}
	return err
}
