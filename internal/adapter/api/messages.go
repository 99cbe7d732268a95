package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"crud-dashboard/internal/domain"
)

const (
	messagesPath = "/messages"

	// UserIDHeader identifies the acting user on message deletion.
	UserIDHeader = "x-user-id"
)

// ListMessages handles GET /messages
func (c *Client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	var messages []domain.Message
	if err := c.Do(ctx, messagesPath, RequestOptions{}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessage handles GET /messages/{id}
func (c *Client) GetMessage(ctx context.Context, id int64) (*domain.Message, error) {
	var m domain.Message
	if err := c.Do(ctx, fmt.Sprintf("%s/%d", messagesPath, id), RequestOptions{}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMessage handles POST /messages
func (c *Client) CreateMessage(ctx context.Context, in domain.NewMessage) error {
	return c.Do(ctx, messagesPath, RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// DeleteMessage handles DELETE /messages/{id} on behalf of actingUserID.
func (c *Client) DeleteMessage(ctx context.Context, id, actingUserID int64) error {
	return c.Do(ctx, fmt.Sprintf("%s/%d", messagesPath, id), RequestOptions{
		Method: http.MethodDelete,
		Headers: map[string]string{
			UserIDHeader: strconv.FormatInt(actingUserID, 10),
		},
	}, nil)
}
