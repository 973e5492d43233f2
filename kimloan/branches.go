package kimloan

import (
	"context"
	"fmt"
)

// ListBranches returns all branches visible to the current session.
func (c *Client) ListBranches(ctx context.Context) ([]Branch, error) {
	var branches []Branch
	if err := c.get(ctx, "/branches/", nil, &branches); err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	return branches, nil
}

// GetBranch returns a single branch by ID.
func (c *Client) GetBranch(ctx context.Context, id int64) (*Branch, error) {
	var branch Branch
	if err := c.get(ctx, fmt.Sprintf("/branches/%d", id), nil, &branch); err != nil {
		return nil, fmt.Errorf("fetching branch %d: %w", id, err)
	}

	return &branch, nil
}

// CreateBranch creates a new branch. The backend rejects duplicate names
// or codes with a 400.
func (c *Client) CreateBranch(ctx context.Context, req CreateBranchRequest) (*Branch, error) {
	var branch Branch
	if err := c.post(ctx, "/branches/", req, &branch); err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}

	return &branch, nil
}

// UpdateBranch updates a branch. Only the non-nil fields of req are sent.
func (c *Client) UpdateBranch(ctx context.Context, id int64, req UpdateBranchRequest) (*Branch, error) {
	var branch Branch
	if err := c.put(ctx, fmt.Sprintf("/branches/%d", id), req, &branch); err != nil {
		return nil, fmt.Errorf("updating branch %d: %w", id, err)
	}

	return &branch, nil
}

// ListGroups returns customer groups, optionally scoped to one branch.
func (c *Client) ListGroups(ctx context.Context, branchID int64) ([]Group, error) {
	q := paging(0, 0)
	if branchID > 0 {
		q.Set("branch_id", fmt.Sprint(branchID))
	}

	var groups []Group
	if err := c.get(ctx, "/groups/", q, &groups); err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return groups, nil
}
