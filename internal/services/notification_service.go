package services

import (
	"context"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/models"
)

// ApplicationNotifier сообщает соискателю о смене статуса отклика.
// Ошибки доставки не возвращаются: уведомление не должно ломать запрос.
type ApplicationNotifier interface {
	ApplicationStatusChanged(ctx context.Context, seeker *models.User, job *models.Job, status models.ApplicationStatus)
}

type EmailNotifier struct {
	provider email.Provider
	metrics  *metrics.Metrics
}

func NewEmailNotifier(provider email.Provider, m *metrics.Metrics) *EmailNotifier {
	return &EmailNotifier{provider: provider, metrics: m}
}

func (n *EmailNotifier) ApplicationStatusChanged(ctx context.Context, seeker *models.User, job *models.Job, status models.ApplicationStatus) {
	if seeker == nil || job == nil {
		return
	}

	data := email.TemplateData{
		"Name":     seeker.Name,
		"JobTitle": job.Title,
		"Company":  job.Company,
		"Status":   string(status),
	}

	err := n.provider.SendTemplate(
		[]string{seeker.Email},
		"Your application status has been updated",
		email.TemplateApplicationStatus,
		data,
	)
	if err != nil {
		n.metrics.NotificationFailed()
		logger.CtxWithError(ctx, "Failed to send application status email", err,
			"job_id", job.ID,
			"job_seeker_id", seeker.ID,
		)
		return
	}

	logger.CtxDebug(ctx, "Application status email sent", "job_id", job.ID, "job_seeker_id", seeker.ID)
}
