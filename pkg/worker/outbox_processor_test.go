package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/pkg/logger"
	"github.com/salonbase/booking-api/pkg/metrics"
)

type statusUpdate struct {
	id      uuid.UUID
	status  model.OutboxStatus
	retryAt *time.Time
}

type fakeOutboxRepo struct {
	pending []*model.OutboxEvent
	updates []statusUpdate
}

func (f *fakeOutboxRepo) Create(_ context.Context, _ *model.OutboxEvent) error {
	return nil
}

func (f *fakeOutboxRepo) ClaimPending(_ context.Context, limit int) ([]*model.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutboxRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OutboxStatus, _ *string, retryAt *time.Time) error {
	f.updates = append(f.updates, statusUpdate{id: id, status: status, retryAt: retryAt})
	return nil
}

func (f *fakeOutboxRepo) DeleteProcessedBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeBroker struct {
	published []string
	err       error
}

func (f *fakeBroker) Publish(_ context.Context, channel string, _ interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeBroker) Subscribe(_ context.Context, _ string) (<-chan []byte, error) {
	return nil, nil
}

func (f *fakeBroker) Close() error { return nil }

func newProcessor(repo *fakeOutboxRepo, broker *fakeBroker) *OutboxProcessor {
	return NewOutboxProcessor(
		repo,
		broker,
		OutboxProcessorConfig{BatchSize: 10, MaxRetries: 3},
		&logger.Logger{ZL: zerolog.Nop()},
		metrics.NewWith(prometheus.NewRegistry(), "test"),
	)
}

func event(eventType string, retryCount int) *model.OutboxEvent {
	return &model.OutboxEvent{
		ID:         uuid.New(),
		EventType:  eventType,
		Payload:    []byte(`{"id":"x"}`),
		Status:     model.OutboxStatusProcessing,
		RetryCount: retryCount,
	}
}

func TestProcessBatchPublishesAndMarksProcessed(t *testing.T) {
	repo := &fakeOutboxRepo{pending: []*model.OutboxEvent{
		event(model.EventBookingCreated, 0),
		event(model.EventBookingStatusChanged, 0),
	}}
	broker := &fakeBroker{}
	p := newProcessor(repo, broker)

	require.NoError(t, p.processBatch(context.Background()))

	assert.Equal(t, []string{model.EventBookingCreated, model.EventBookingStatusChanged}, broker.published)
	require.Len(t, repo.updates, 2)
	for _, u := range repo.updates {
		assert.Equal(t, model.OutboxStatusProcessed, u.status)
	}
}

func TestProcessBatchSchedulesRetryOnPublishFailure(t *testing.T) {
	evt := event(model.EventBookingCreated, 0)
	repo := &fakeOutboxRepo{pending: []*model.OutboxEvent{evt}}
	broker := &fakeBroker{err: errors.New("redis unavailable")}
	p := newProcessor(repo, broker)

	require.NoError(t, p.processBatch(context.Background()))

	require.Len(t, repo.updates, 1)
	assert.Equal(t, model.OutboxStatusRetry, repo.updates[0].status)
	assert.Equal(t, evt.ID, repo.updates[0].id)
	require.NotNil(t, repo.updates[0].retryAt)
	assert.True(t, repo.updates[0].retryAt.After(time.Now()))
}

func TestProcessBatchGivesUpAfterMaxRetries(t *testing.T) {
	evt := event(model.EventBookingCreated, 2)
	repo := &fakeOutboxRepo{pending: []*model.OutboxEvent{evt}}
	broker := &fakeBroker{err: errors.New("redis unavailable")}
	p := newProcessor(repo, broker)

	require.NoError(t, p.processBatch(context.Background()))

	require.Len(t, repo.updates, 1)
	assert.Equal(t, model.OutboxStatusFailed, repo.updates[0].status)
}

func TestProcessBatchHonorsBatchSize(t *testing.T) {
	repo := &fakeOutboxRepo{}
	for i := 0; i < 25; i++ {
		repo.pending = append(repo.pending, event(model.EventBookingCreated, 0))
	}
	broker := &fakeBroker{}
	p := newProcessor(repo, broker)

	require.NoError(t, p.processBatch(context.Background()))
	assert.Len(t, broker.published, 10)
}
