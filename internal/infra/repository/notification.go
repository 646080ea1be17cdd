package repository

import (
	"context"
	"time"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
)

// NotificationRepository enqueues outbox jobs; a separate worker drains them.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createJobQuery = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, createJobQuery, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err, infra.Classify(err))
	}
	return nil
}
