package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
	"github.com/salonbase/booking-api/pkg/logger"
	"github.com/salonbase/booking-api/pkg/messaging"
	"github.com/salonbase/booking-api/pkg/metrics"
)

type OutboxProcessorConfig struct {
	BatchSize    int
	PollInterval time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
}

// OutboxProcessor relays committed booking events from the outbox table to
// the broker. It claims batches so multiple instances can run side by side.
type OutboxProcessor struct {
	repo    repository.OutboxRepository
	broker  messaging.Broker
	config  OutboxProcessorConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewOutboxProcessor(
	repo repository.OutboxRepository,
	broker messaging.Broker,
	config OutboxProcessorConfig,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *OutboxProcessor {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 5 * time.Second
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 5 * time.Second
	}

	return &OutboxProcessor{
		repo:    repo,
		broker:  broker,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *OutboxProcessor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	p.logger.Info("starting outbox processor")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("shutting down outbox processor")
			return
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error(err, "failed to process outbox batch")
			}
		}
	}
}

func (p *OutboxProcessor) processBatch(ctx context.Context) error {
	timer := prometheus.NewTimer(p.metrics.OutboxProcessingLatency)
	defer timer.ObserveDuration()

	events, err := p.repo.ClaimPending(ctx, p.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to claim pending events: %w", err)
	}

	for _, event := range events {
		p.processEvent(ctx, event)
	}
	return nil
}

func (p *OutboxProcessor) processEvent(ctx context.Context, event *model.OutboxEvent) {
	err := p.broker.Publish(ctx, event.EventType, messaging.Message{
		Type:    event.EventType,
		Payload: json.RawMessage(event.Payload),
	})
	if err != nil {
		p.metrics.OutboxEventsFailed.Inc()
		errMsg := err.Error()

		// Past the retry budget the event parks as failed; otherwise it is
		// rescheduled with a linear backoff.
		if event.RetryCount+1 >= p.config.MaxRetries {
			if updateErr := p.repo.UpdateStatus(ctx, event.ID, model.OutboxStatusFailed, &errMsg, nil); updateErr != nil {
				p.logger.Error(updateErr, "failed to mark event as failed", "event_id", event.ID.String())
			}
			p.logger.Error(err, "giving up on outbox event",
				"event_id", event.ID.String(),
				"event_type", event.EventType)
			return
		}

		p.metrics.OutboxRetries.WithLabelValues(event.EventType).Inc()
		retryAt := time.Now().Add(p.config.RetryDelay * time.Duration(event.RetryCount+1))
		if updateErr := p.repo.UpdateStatus(ctx, event.ID, model.OutboxStatusRetry, &errMsg, &retryAt); updateErr != nil {
			p.logger.Error(updateErr, "failed to schedule event retry", "event_id", event.ID.String())
		}
		return
	}

	if err := p.repo.UpdateStatus(ctx, event.ID, model.OutboxStatusProcessed, nil, nil); err != nil {
		p.logger.Error(err, "failed to mark event as processed", "event_id", event.ID.String())
		return
	}
	p.metrics.OutboxEventsProcessed.Inc()
}
