package service

import (
	"context"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/internal/infrastructure/push"
)

type NotificationService interface {
	SendToUser(ctx context.Context, user domain.User, title string, content string) (err error)
}

type NotificationServiceImpl struct {
	sender push.Sender
}

// CreateNewNotificationService wraps a push sender. A nil sender turns the
// service into a no-op, which keeps the API usable when FCM credentials are
// not configured.
func CreateNewNotificationService(sender push.Sender) NotificationService {
	return &NotificationServiceImpl{sender: sender}
}

// SendToUser pushes a message to the user's registered device. Users without
// a device token are silently skipped.
func (s *NotificationServiceImpl) SendToUser(ctx context.Context, user domain.User, title string, content string) (err error) {
	if s.sender == nil {
		return nil
	}

	if user.FcmToken == nil || *user.FcmToken == "" {
		return nil
	}

	return s.sender.Send(ctx, *user.FcmToken, title, content)
}
