package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("task result not found")
	// ErrClosed is wrapped by the ConnectionError returned after Close.
	ErrClosed = errors.New("connection closed")
	// ErrNilRequest is wrapped by the RemoteError returned for a nil request.
	ErrNilRequest = errors.New("nil request")
)

// ConnectionError reports an endpoint that could not be reached, or a
// connection that is no longer usable.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("kobe not available at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RemoteError is returned when the service rejects a call or the call
// cannot complete.
type RemoteError struct {
	Op      string
	Code    codes.Code
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("kobe %s failed (%s): %s", e.Op, e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned by FetchResult for a task id the service does
// not know about.
type NotFoundError struct {
	TaskID string
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.TaskID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// nilRequest is returned for a missing request, without calling the service.
func nilRequest(op string) *RemoteError {
	return &RemoteError{
		Op:      op,
		Code:    codes.InvalidArgument,
		Message: "request is nil",
		Err:     ErrNilRequest,
	}
}

func newRemoteError(op string, err error) *RemoteError {
	st, _ := status.FromError(err)
	return &RemoteError{
		Op:      op,
		Code:    st.Code(),
		Message: st.Message(),
		Err:     err,
	}
}

// IsUnavailable reports whether err means the service could not be reached,
// either while connecting or on an established channel.
func IsUnavailable(err error) bool {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return true
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Code == codes.Unavailable
	}
	return false
}
