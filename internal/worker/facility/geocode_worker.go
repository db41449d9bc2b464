package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"github.com/asmit-inzanist/medic-all-sub000/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // pause when the queue is empty
	retryDelay      = 500 * time.Millisecond
)

// GeocodeWorker resolves coordinates for pharmacy directory rows that only
// carry a street address. Events arrive over a Redis stream; resolved
// coordinates are written back to the directory.
type GeocodeWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	geocoder     repository.GeocodingRepository
	pharmacyRepo repository.PharmacyRepository
	consumerName string
	batchSize    int
	maxRetries   int
	backfillSize int
}

func NewGeocodeWorker(
	streamRepo repository.StreamRepository,
	geocoder repository.GeocodingRepository,
	pharmacyRepo repository.PharmacyRepository,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	backfillSize int,
	logger *zap.Logger,
) *GeocodeWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &GeocodeWorker{
		BaseWorker:   worker.NewBaseWorker("facility-geocode", consumerGroup, logger),
		streamRepo:   streamRepo,
		geocoder:     geocoder,
		pharmacyRepo: pharmacyRepo,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		backfillSize: backfillSize,
	}
}

func (w *GeocodeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting GeocodeWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFacilityGeocode, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Enqueue the backfill only after the consumer group exists, otherwise
	// events added first would never be delivered to the group.
	if err := w.enqueueBackfill(ctx); err != nil {
		logger.Warn("Failed to enqueue backfill", zap.Error(err))
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// enqueueBackfill publishes a geocode event for every directory row that
// still lacks coordinates, up to backfillSize rows per worker start.
func (w *GeocodeWorker) enqueueBackfill(ctx context.Context) error {
	if w.backfillSize <= 0 {
		return nil
	}

	pharmacies, err := w.pharmacyRepo.ListWithoutCoordinates(ctx, w.backfillSize)
	if err != nil {
		return fmt.Errorf("failed to list pharmacies without coordinates: %w", err)
	}

	for _, p := range pharmacies {
		event := domain.FacilityGeocodeEvent{
			PharmacyID: p.ID,
			Address:    p.Address,
			City:       p.City,
		}
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamFacilityGeocode, event); err != nil {
			w.Logger().Error("Failed to enqueue geocode event",
				zap.String("pharmacy_id", p.ID.String()),
				zap.Error(err))
		}
	}

	if len(pharmacies) > 0 {
		w.Logger().Info("Backfill events enqueued", zap.Int("count", len(pharmacies)))
	}
	return nil
}

// processBatch consumes and handles one batch of geocode events. Returns the
// number of messages taken off the stream.
func (w *GeocodeWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamFacilityGeocode,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing geocode batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		var event domain.FacilityGeocodeEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK malformed messages so they do not clog the stream
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.handleEvent(ctx, event); err != nil {
			logger.Warn("Failed to geocode facility",
				zap.String("pharmacy_id", event.PharmacyID.String()),
				zap.String("address", event.Address),
				zap.Error(err))
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamFacilityGeocode, w.ConsumerGroup(), ackIDs); err != nil {
		return len(messages), fmt.Errorf("failed to acknowledge batch: %w", err)
	}

	return len(messages), nil
}

// handleEvent resolves the event's address and writes the coordinates back.
// The geocode call is retried a few times to ride out transient upstream
// failures.
func (w *GeocodeWorker) handleEvent(ctx context.Context, event domain.FacilityGeocodeEvent) error {
	query := event.Address
	if event.City != "" {
		query = strings.TrimSpace(event.Address) + ", " + event.City
	}

	var coords *domain.Coordinate
	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		coords, err = w.geocoder.Geocode(ctx, query)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(retryDelay)
	}
	if err != nil {
		return fmt.Errorf("geocode %q: %w", query, err)
	}

	if err := w.pharmacyRepo.UpdateCoordinates(ctx, event.PharmacyID, coords.Lat, coords.Lon); err != nil {
		return fmt.Errorf("update coordinates: %w", err)
	}

	w.Logger().Debug("Facility geocoded",
		zap.String("pharmacy_id", event.PharmacyID.String()),
		zap.Float64("lat", coords.Lat),
		zap.Float64("lon", coords.Lon))

	return nil
}
