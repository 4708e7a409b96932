package client

import (
	"context"

	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TaskHandle identifies a submitted task. The client keeps no record of it.
type TaskHandle struct {
	ID string `json:"id"`
}

// TaskResult is the outcome of a task as reported by the service.
type TaskResult struct {
	ID        string `json:"id"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Content   string `json:"content"`
	Finished  bool   `json:"finished"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Project   string `json:"project,omitempty"`
}

// TaskAPI is the set of operations offered by Client.
type TaskAPI interface {
	SubmitAdhoc(ctx context.Context, req *kobe.RunAdhocRequest) (TaskHandle, error)
	SubmitPlaybook(ctx context.Context, req *kobe.RunPlaybookRequest) (TaskHandle, error)
	FetchResult(ctx context.Context, taskID string) (*TaskResult, error)
}

var _ TaskAPI = (*Client)(nil)

// Client issues task calls over a Conn.
type Client struct {
	conn *Conn
}

func New(conn *Conn) *Client {
	return &Client{conn: conn}
}

// SubmitAdhoc runs a module against the hosts matching req.Pattern.
func (c *Client) SubmitAdhoc(ctx context.Context, req *kobe.RunAdhocRequest) (TaskHandle, error) {
	api, err := c.conn.kobeAPI()
	if err != nil {
		return TaskHandle{}, err
	}
	if req == nil {
		return TaskHandle{}, nilRequest("RunAdhoc")
	}

	resp, err := api.RunAdhoc(ctx, req)
	if err != nil {
		return TaskHandle{}, newRemoteError("RunAdhoc", err)
	}
	handle, err := handleFrom("RunAdhoc", resp.GetResult())
	if err != nil {
		return TaskHandle{}, err
	}

	metrics.Inc("kobe_tasks_submitted_total", map[string]string{"kind": "adhoc"})
	common.LogDebug("Submitted adhoc task", map[string]interface{}{
		"task_id": handle.ID,
		"pattern": req.Pattern,
		"module":  req.Module,
	})
	return handle, nil
}

// SubmitPlaybook runs a playbook body against the request inventory.
func (c *Client) SubmitPlaybook(ctx context.Context, req *kobe.RunPlaybookRequest) (TaskHandle, error) {
	api, err := c.conn.kobeAPI()
	if err != nil {
		return TaskHandle{}, err
	}
	if req == nil {
		return TaskHandle{}, nilRequest("RunPlaybook")
	}

	resp, err := api.RunPlaybook(ctx, req)
	if err != nil {
		return TaskHandle{}, newRemoteError("RunPlaybook", err)
	}
	handle, err := handleFrom("RunPlaybook", resp.GetResult())
	if err != nil {
		return TaskHandle{}, err
	}

	metrics.Inc("kobe_tasks_submitted_total", map[string]string{"kind": "playbook"})
	common.LogDebug("Submitted playbook task", map[string]interface{}{
		"task_id":  handle.ID,
		"project":  req.Project,
		"playbook": req.Playbook,
	})
	return handle, nil
}

// FetchResult looks up the current result of a task. An id the service does
// not know yields *NotFoundError.
func (c *Client) FetchResult(ctx context.Context, taskID string) (*TaskResult, error) {
	api, err := c.conn.kobeAPI()
	if err != nil {
		return nil, err
	}
	if taskID == "" {
		return nil, &NotFoundError{TaskID: taskID}
	}

	resp, err := api.GetResult(ctx, &kobe.GetResultRequest{TaskId: taskID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			metrics.Inc("kobe_result_lookups_total", map[string]string{"outcome": "not_found"})
			return nil, &NotFoundError{TaskID: taskID, Err: err}
		}
		metrics.Inc("kobe_result_lookups_total", map[string]string{"outcome": "error"})
		return nil, newRemoteError("GetResult", err)
	}
	if resp.GetItem() == nil {
		metrics.Inc("kobe_result_lookups_total", map[string]string{"outcome": "not_found"})
		return nil, &NotFoundError{TaskID: taskID}
	}

	metrics.Inc("kobe_result_lookups_total", map[string]string{"outcome": "found"})
	return resultFrom(taskID, resp.GetItem()), nil
}

func handleFrom(op string, r *kobe.Result) (TaskHandle, error) {
	if r.GetId() == "" {
		return TaskHandle{}, &RemoteError{
			Op:      op,
			Code:    codes.Internal,
			Message: "response carried no task id",
		}
	}
	return TaskHandle{ID: r.Id}, nil
}

func resultFrom(taskID string, r *kobe.Result) *TaskResult {
	id := r.Id
	if id == "" {
		id = taskID
	}
	return &TaskResult{
		ID:        id,
		Success:   r.Success,
		Message:   r.Message,
		Content:   r.Content,
		Finished:  r.Finished,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Project:   r.Project,
	}
}
