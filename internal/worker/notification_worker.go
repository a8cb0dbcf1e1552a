package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/service"
)

// StartNotificationWorker attaches the notification handlers to the
// dispatcher. Delivery runs inline with the publishing request.
func StartNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) {
	if notifications == nil {
		logger.Warn("notifications disabled")
		return
	}
	notifications.RegisterHandlers()
	logger.Info("notification worker started")
}
