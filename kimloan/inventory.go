package kimloan

import (
	"context"
	"fmt"
	"net/url"
)

// InventoryFilter narrows ListInventory results. Non-admin sessions are
// scoped to their own branch by the backend regardless of BranchID.
type InventoryFilter struct {
	BranchID    int64
	Status      string // ok, low or critical
	ProductName string
}

// ListInventory returns branch stock levels for loan products.
func (c *Client) ListInventory(ctx context.Context, filter InventoryFilter) ([]InventoryItem, error) {
	q := url.Values{}
	if filter.BranchID > 0 {
		q.Set("branch_id", fmt.Sprint(filter.BranchID))
	}

	if filter.Status != "" {
		q.Set("status_filter", filter.Status)
	}

	if filter.ProductName != "" {
		q.Set("product_name", filter.ProductName)
	}

	var items []InventoryItem
	if err := c.get(ctx, "/inventory/", q, &items); err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	return items, nil
}
