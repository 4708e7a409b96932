package resilient

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobetest"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

type fakeAPI struct {
	calls int
	err   error
}

func (f *fakeAPI) SubmitAdhoc(context.Context, *kobe.RunAdhocRequest) (client.TaskHandle, error) {
	f.calls++
	if f.err != nil {
		return client.TaskHandle{}, f.err
	}
	return client.TaskHandle{ID: "t1"}, nil
}

func (f *fakeAPI) SubmitPlaybook(context.Context, *kobe.RunPlaybookRequest) (client.TaskHandle, error) {
	f.calls++
	if f.err != nil {
		return client.TaskHandle{}, f.err
	}
	return client.TaskHandle{ID: "t2"}, nil
}

func (f *fakeAPI) FetchResult(_ context.Context, id string) (*client.TaskResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &client.TaskResult{ID: id, Finished: true}, nil
}

func TestBreakerOpensOnUnavailable(t *testing.T) {
	api := &fakeAPI{err: &client.RemoteError{Op: "RunAdhoc", Code: codes.Unavailable, Message: "down"}}
	c := NewClient(api, BreakerSettings{Name: "test", MaxFailures: 3, OpenTimeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.SubmitAdhoc(ctx, &kobe.RunAdhocRequest{})
		assert.False(t, IsOpen(err))
	}
	assert.Equal(t, "open", c.State())

	_, err := c.FetchResult(ctx, "t1")
	assert.True(t, IsOpen(err))
	assert.Equal(t, 3, api.calls)
}

func TestBreakerIgnoresNotFound(t *testing.T) {
	api := &fakeAPI{err: &client.NotFoundError{TaskID: "x"}}
	c := NewClient(api, BreakerSettings{MaxFailures: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := c.FetchResult(context.Background(), "x")
		assert.ErrorIs(t, err, client.ErrNotFound)
	}
	assert.Equal(t, "closed", c.State())
	assert.Equal(t, 3, api.calls)
}

func TestBreakerPassesResults(t *testing.T) {
	c := NewClient(&fakeAPI{}, BreakerSettings{})
	h, err := c.SubmitPlaybook(context.Background(), &kobe.RunPlaybookRequest{})
	require.NoError(t, err)
	assert.Equal(t, "t2", h.ID)

	r, err := c.FetchResult(context.Background(), "t2")
	require.NoError(t, err)
	assert.True(t, r.Finished)
}

func TestDialRetries(t *testing.T) {
	srv := kobetest.NewServer()
	defer srv.Close()

	var dials atomic.Int32
	flaky := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		if dials.Add(1) == 1 {
			return nil, errors.New("connection refused")
		}
		return srv.Dial(ctx)
	})

	p := DialPolicy{
		AttemptTimeout:  200 * time.Millisecond,
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     20 * time.Millisecond,
		MaxElapsed:      5 * time.Second,
	}
	conn, err := Dial(context.Background(), kobetest.Endpoint, p, client.WithDialOptions(flaky))
	require.NoError(t, err)
	defer conn.Close()
	assert.GreaterOrEqual(t, dials.Load(), int32(2))

	_, err = client.New(conn).FetchResult(context.Background(), "missing")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestDialGivesUp(t *testing.T) {
	refused := grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})
	p := DialPolicy{
		AttemptTimeout:  50 * time.Millisecond,
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		MaxElapsed:      200 * time.Millisecond,
	}
	_, err := Dial(context.Background(), kobetest.Endpoint, p, client.WithDialOptions(refused))
	var connErr *client.ConnectionError
	assert.True(t, errors.As(err, &connErr))
}

func TestDialPolicyBackOff(t *testing.T) {
	b := DialPolicy{}.backOff()
	assert.Equal(t, backoff.DefaultInitialInterval, b.InitialInterval)
	assert.Equal(t, backoff.DefaultMaxInterval, b.MaxInterval)
	assert.Zero(t, b.MaxElapsedTime)

	b = DialPolicy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsed:      time.Minute,
	}.backOff()
	assert.Equal(t, 100*time.Millisecond, b.InitialInterval)
	assert.Equal(t, time.Second, b.MaxInterval)
	assert.Equal(t, time.Minute, b.MaxElapsedTime)
}

func TestDialUntilContextDone(t *testing.T) {
	refused := grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	p := DialPolicy{
		AttemptTimeout:  50 * time.Millisecond,
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     20 * time.Millisecond,
	}
	_, err := Dial(ctx, kobetest.Endpoint, p, client.WithDialOptions(refused))
	var connErr *client.ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Error(t, ctx.Err())
}
