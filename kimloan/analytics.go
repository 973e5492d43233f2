package kimloan

import (
	"context"
	"fmt"
	"net/url"
)

// Dashboard returns the aggregated dashboard statistics. branchID scopes
// the stats to one branch when > 0 (admin only); daysBack bounds the
// reporting window and defaults to 30 on the backend when 0.
func (c *Client) Dashboard(ctx context.Context, branchID int64, daysBack int) (*DashboardStats, error) {
	q := url.Values{}
	if branchID > 0 {
		q.Set("branch_id", fmt.Sprint(branchID))
	}

	if daysBack > 0 {
		q.Set("days_back", fmt.Sprint(daysBack))
	}

	var stats DashboardStats
	if err := c.get(ctx, "/analytics/dashboard", q, &stats); err != nil {
		return nil, fmt.Errorf("fetching dashboard stats: %w", err)
	}

	return &stats, nil
}
