package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/config"
	"github.com/spec-kit/edudigital/internal/events"
)

// NotificationService turns domain events into outbound notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     nopIfNil(logger),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEnrollmentCreated, n.handleEnrollmentCreated)
	n.dispatcher.Subscribe(events.EventQuizSubmitted, n.handleQuizSubmitted)
	n.dispatcher.Subscribe(events.EventDiscussionCreated, n.handleDiscussionCreated)
	n.dispatcher.Subscribe(events.EventCourseCreated, n.handleCourseCreated)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
}

func (n *NotificationService) handleEnrollmentCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("EnrollmentCreated", zap.String("user_id", event.Actor.UserID), zap.Any("payload", event.Payload))
	n.sendEmail(ctx, event.Actor.Email, event, "")
	return nil
}

func (n *NotificationService) handleQuizSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("QuizSubmitted", zap.String("user_id", event.Actor.UserID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleDiscussionCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("DiscussionCreated", zap.String("user_id", event.Actor.UserID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleCourseCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("CourseCreated", zap.String("user_id", event.Actor.UserID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return nil
	}
	link := ""
	if n.cfg.ResetURL != "" {
		link = n.cfg.ResetURL + "?token=" + payload.Token
	}
	n.logger.Info("PasswordResetRequested", zap.String("user_id", event.Actor.UserID), zap.Time("expires_at", payload.ExpiresAt))
	n.sendEmail(ctx, event.Actor.Email, event, link)
	return nil
}

// sendEmail is a stub; link is never logged because it carries a secret.
func (n *NotificationService) sendEmail(_ context.Context, to string, event events.Event, link string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || to == "" {
		return
	}
	n.logger.Debug("sendEmail",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.Bool("has_link", link != ""),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhook(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhook",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
