package kimloan

import (
	"context"
	"fmt"
	"net/url"
)

// UserFilter narrows ListUsers results.
type UserFilter struct {
	Role     Role
	BranchID int64
	Skip     int
	Limit    int
}

// ListUsers returns users visible to the current session, newest first.
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	q := paging(filter.Skip, filter.Limit)
	if filter.Role != "" {
		q.Set("role", string(filter.Role))
	}

	if filter.BranchID > 0 {
		q.Set("branch_id", fmt.Sprint(filter.BranchID))
	}

	var users []User
	if err := c.get(ctx, "/users/", q, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}

	return &user, nil
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/users/", req, &user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &user, nil
}

// UpdateUser updates an existing user. Unset fields are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}

	return &user, nil
}

// StaffForAssignment returns staff users eligible for branch assignment.
func (c *Client) StaffForAssignment(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/users/staff-for-assignment", url.Values{}, &users); err != nil {
		return nil, fmt.Errorf("listing assignable staff: %w", err)
	}

	return users, nil
}
