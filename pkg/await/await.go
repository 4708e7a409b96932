// Package await polls a task until the service reports it finished.
package await

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/cenkalti/backoff/v4"
)

// Fetcher is the part of client.TaskAPI that polling needs.
type Fetcher interface {
	FetchResult(ctx context.Context, taskID string) (*client.TaskResult, error)
}

// Policy bounds the polling loop. A zero MaxElapsed polls until ctx ends.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

// ErrNotFinished is returned once the policy gives up on a task that is
// still running or not yet known to the service.
var ErrNotFinished = errors.New("task did not finish in time")

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = p.MaxElapsed
	b.Reset()
	return backoff.WithContext(b, ctx)
}

// Wait fetches taskID until its result is finished. NotFound answers are
// retried, since the service may not have registered the task yet; any other
// error stops the loop and is returned unchanged.
func Wait(ctx context.Context, f Fetcher, taskID string, p Policy) (*client.TaskResult, error) {
	attempt := 0
	var last *client.TaskResult

	op := func() (*client.TaskResult, error) {
		attempt++
		result, err := f.FetchResult(ctx, taskID)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		last = result
		if !result.Finished {
			return nil, ErrNotFinished
		}
		return result, nil
	}

	notify := func(err error, next time.Duration) {
		common.LogDebug("Task not finished yet", map[string]interface{}{
			"task_id": taskID,
			"attempt": attempt,
			"reason":  err.Error(),
			"next":    next.String(),
		})
	}

	result, err := backoff.RetryNotifyWithData(op, p.backOff(ctx), notify)
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return last, fmt.Errorf("waiting for task %s: %w", taskID, ctxErr)
	}
	if errors.Is(err, ErrNotFinished) {
		return last, fmt.Errorf("task %s after %d attempts: %w", taskID, attempt, err)
	}
	if errors.Is(err, client.ErrNotFound) {
		return nil, fmt.Errorf("task %s still unknown after %d attempts: %w", taskID, attempt, errors.Join(ErrNotFinished, err))
	}
	return nil, err
}
