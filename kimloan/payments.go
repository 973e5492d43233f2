package kimloan

import (
	"context"
	"fmt"
)

// PaymentFilter narrows ListPayments results.
type PaymentFilter struct {
	LoanID        int64
	Status        string
	PaymentMethod string
	Skip          int
	Limit         int
}

// ListPayments returns payments visible to the current session.
func (c *Client) ListPayments(ctx context.Context, filter PaymentFilter) ([]Payment, error) {
	q := paging(filter.Skip, filter.Limit)
	if filter.LoanID > 0 {
		q.Set("loan_id", fmt.Sprint(filter.LoanID))
	}

	if filter.Status != "" {
		q.Set("status_filter", filter.Status)
	}

	if filter.PaymentMethod != "" {
		q.Set("payment_method", filter.PaymentMethod)
	}

	var payments []Payment
	if err := c.get(ctx, "/payments/", q, &payments); err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}

// PendingPayments returns payments awaiting confirmation.
func (c *Client) PendingPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.get(ctx, "/payments/pending", nil, &payments); err != nil {
		return nil, fmt.Errorf("listing pending payments: %w", err)
	}

	return payments, nil
}

// RecordManualPayment records a payment entered by a loan officer.
func (c *Client) RecordManualPayment(ctx context.Context, req ManualPaymentRequest) (*Payment, error) {
	var payment Payment
	if err := c.post(ctx, "/payments/manual", req, &payment); err != nil {
		return nil, fmt.Errorf("recording manual payment: %w", err)
	}

	return &payment, nil
}

// ConfirmPayment marks a pending payment as confirmed.
func (c *Client) ConfirmPayment(ctx context.Context, id int64) (*Payment, error) {
	var payment Payment
	if err := c.put(ctx, fmt.Sprintf("/payments/%d/confirm", id), nil, &payment); err != nil {
		return nil, fmt.Errorf("confirming payment %d: %w", id, err)
	}

	return &payment, nil
}
