package api

import (
	"context"
	"fmt"
	"net/http"

	"crud-dashboard/internal/domain"
)

const tasksPath = "/tasks"

// ListTasks handles GET /tasks
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.Do(ctx, tasksPath, RequestOptions{}, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask handles GET /tasks/{id}
func (c *Client) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	if err := c.Do(ctx, fmt.Sprintf("%s/%d", tasksPath, id), RequestOptions{}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask handles POST /tasks
func (c *Client) CreateTask(ctx context.Context, in domain.NewTask) error {
	return c.Do(ctx, tasksPath, RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// DeleteTask handles DELETE /tasks/{id}
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.Do(ctx, fmt.Sprintf("%s/%d", tasksPath, id), RequestOptions{Method: http.MethodDelete}, nil)
}
