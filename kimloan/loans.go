package kimloan

import (
	"context"
	"fmt"
	"strconv"
)

// LoanFilter narrows ListLoans results.
type LoanFilter struct {
	Status      string
	BranchID    int64
	GroupID     int64
	OverdueOnly bool
	Skip        int
	Limit       int
}

// ListLoans returns loans visible to the current session. The backend
// scopes results by role: customers see their own loans, loan officers
// their groups', branch staff their branch's.
func (c *Client) ListLoans(ctx context.Context, filter LoanFilter) ([]Loan, error) {
	q := paging(filter.Skip, filter.Limit)
	if filter.Status != "" {
		q.Set("status_filter", filter.Status)
	}

	if filter.BranchID > 0 {
		q.Set("branch_id", fmt.Sprint(filter.BranchID))
	}

	if filter.GroupID > 0 {
		q.Set("group_id", fmt.Sprint(filter.GroupID))
	}

	if filter.OverdueOnly {
		q.Set("overdue_only", strconv.FormatBool(true))
	}

	var loans []Loan
	if err := c.get(ctx, "/loans/", q, &loans); err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}

	return loans, nil
}

// GetLoan returns a single loan by ID.
func (c *Client) GetLoan(ctx context.Context, id int64) (*Loan, error) {
	var loan Loan
	if err := c.get(ctx, fmt.Sprintf("/loans/%d", id), nil, &loan); err != nil {
		return nil, fmt.Errorf("fetching loan %d: %w", id, err)
	}

	return &loan, nil
}

// PaymentSchedule returns the installment schedule for a loan.
func (c *Client) PaymentSchedule(ctx context.Context, loanID int64) ([]ScheduleEntry, error) {
	var schedule struct {
		Entries []ScheduleEntry `json:"schedule"`
	}

	if err := c.get(ctx, fmt.Sprintf("/loans/%d/payment-schedule", loanID), nil, &schedule); err != nil {
		return nil, fmt.Errorf("fetching payment schedule for loan %d: %w", loanID, err)
	}

	return schedule.Entries, nil
}

// ListLoanProducts returns the loan product catalogue. Buying prices are
// only present for admin sessions.
func (c *Client) ListLoanProducts(ctx context.Context) ([]LoanProduct, error) {
	var products []LoanProduct
	if err := c.get(ctx, "/loan-products/", nil, &products); err != nil {
		return nil, fmt.Errorf("listing loan products: %w", err)
	}

	return products, nil
}

// ListProductCategories returns the active product categories.
func (c *Client) ListProductCategories(ctx context.Context) ([]ProductCategory, error) {
	var categories []ProductCategory
	if err := c.get(ctx, "/loan-products/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("listing product categories: %w", err)
	}

	return categories, nil
}
