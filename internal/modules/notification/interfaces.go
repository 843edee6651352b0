package notification

import (
	"context"

	"estateoffice/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

// AdminLister resolves the recipients for back-office fan-out.
type AdminLister interface {
	ListAdmins(ctx context.Context) ([]domain.User, error)
}
