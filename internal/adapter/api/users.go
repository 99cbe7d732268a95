package api

import (
	"context"
	"fmt"
	"net/http"

	"crud-dashboard/internal/domain"
)

const usersPath = "/users"

// ListUsers handles GET /users
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.Do(ctx, usersPath, RequestOptions{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser handles GET /users/{id}
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := c.Do(ctx, fmt.Sprintf("%s/%d", usersPath, id), RequestOptions{}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser handles POST /users
func (c *Client) CreateUser(ctx context.Context, in domain.NewUser) error {
	return c.Do(ctx, usersPath, RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// DeleteUser handles DELETE /users/{id}
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Do(ctx, fmt.Sprintf("%s/%d", usersPath, id), RequestOptions{Method: http.MethodDelete}, nil)
}
