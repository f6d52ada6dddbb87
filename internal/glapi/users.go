package glapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// UserFilter narrows a user listing. Zero-value fields are omitted from the
// query except Limit/Offset, which are always sent.
type UserFilter struct {
	Status string
	Query  string
	Limit  int
	Offset int
}

// ListUsers returns a page of user accounts
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) (*model.UserList, error) {
	query := CleanQuery(map[string]any{
		"status": filter.Status,
		"q":      filter.Query,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	var list model.UserList
	if err := c.get(ctx, "/admin/users", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetUser returns one user account
func (c *Client) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%s", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserStatus transitions a user's account status with an audit reason
func (c *Client) SetUserStatus(ctx context.Context, id model.UserID, status, reason string) (*model.User, error) {
	body := map[string]string{"status": status, "reason": reason}

	var user model.User
	if err := c.patch(ctx, fmt.Sprintf("/admin/users/%s/status", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserRole changes a user's role
func (c *Client) SetUserRole(ctx context.Context, id model.UserID, role string) (*model.User, error) {
	body := map[string]string{"role": role}

	var user model.User
	if err := c.patch(ctx, fmt.Sprintf("/admin/users/%s/role", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser soft-deletes a user account
func (c *Client) DeleteUser(ctx context.Context, id model.UserID) error {
	return c.delete(ctx, fmt.Sprintf("/admin/users/%s", id), nil)
}

// GetUserMain reads the user's main-character sub-resource
func (c *Client) GetUserMain(ctx context.Context, id model.UserID) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%s/main", id), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// GetUserWallet reads the user's wallet sub-resource
func (c *Client) GetUserWallet(ctx context.Context, id model.UserID) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%s/wallet", id), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// GetUserSessions reads the user's active game sessions sub-resource
func (c *Client) GetUserSessions(ctx context.Context, id model.UserID) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/admin/users/%s/sessions", id), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
