package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
)

type outboxRepository struct {
	BaseRepository
}

func NewOutboxRepository(base BaseRepository) repository.OutboxRepository {
	return &outboxRepository{base}
}

func (r *outboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	if event == nil || event.Payload == nil {
		return fmt.Errorf("event and payload cannot be nil")
	}

	event.ID = uuid.New()
	event.Status = model.OutboxStatusPending
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO outbox_events (id, event_type, payload, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID,
		event.EventType,
		event.Payload,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

// ClaimPending atomically marks a batch of due events as processing and
// returns them. SKIP LOCKED keeps concurrent relay workers off each other's
// batches.
func (r *outboxRepository) ClaimPending(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	query := `
		UPDATE outbox_events SET status = $1, updated_at = $2
		WHERE id IN (
			SELECT id FROM outbox_events
			WHERE status = $3 OR (status = $4 AND retry_at <= $2)
			ORDER BY created_at ASC
			LIMIT $5
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, event_type, payload, status, error_message, retry_count,
		          retry_at, created_at, processed_at, updated_at
	`
	var events []*model.OutboxEvent
	err := r.db.SelectContext(ctx, &events, query,
		model.OutboxStatusProcessing, time.Now(),
		model.OutboxStatusPending, model.OutboxStatusRetry, limit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending events: %w", err)
	}
	return events, nil
}

func (r *outboxRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string, retryAt *time.Time) error {
	query := `
		UPDATE outbox_events
		SET status = $1,
		    error_message = $2,
		    retry_at = $3,
		    retry_count = retry_count + CASE WHEN $1 = 'retry' THEN 1 ELSE 0 END,
		    processed_at = CASE WHEN $1 = 'processed' THEN $4 ELSE processed_at END,
		    updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, status, errorMessage, retryAt, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update outbox event: %w", err)
	}
	return nil
}

func (r *outboxRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM outbox_events WHERE status = $1 AND processed_at < $2`,
		model.OutboxStatusProcessed, before,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete processed events: %w", err)
	}
	return result.RowsAffected()
}
