package kimloan

import (
	"context"
	"fmt"
	"strconv"
)

// ListNotifications returns the current user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool, skip, limit int) ([]Notification, error) {
	q := paging(skip, limit)
	if unreadOnly {
		q.Set("unread_only", strconv.FormatBool(true))
	}

	var notifications []Notification
	if err := c.get(ctx, "/notifications/", q, &notifications); err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	return notifications, nil
}

// UnreadNotifications returns the current user's unread notification count.
func (c *Client) UnreadNotifications(ctx context.Context) (int, error) {
	var count UnreadCount
	if err := c.get(ctx, "/notifications/unread-count", nil, &count); err != nil {
		return 0, fmt.Errorf("fetching unread count: %w", err)
	}

	return count.Count, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	if err := c.post(ctx, fmt.Sprintf("/notifications/mark-read/%d", id), nil, nil); err != nil {
		return fmt.Errorf("marking notification %d read: %w", id, err)
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	if err := c.post(ctx, "/notifications/mark-all-read", nil, nil); err != nil {
		return fmt.Errorf("marking all notifications read: %w", err)
	}

	return nil
}
