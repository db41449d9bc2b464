package repository

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
)

// StreamRepository wraps Redis streams with consumer-group semantics.
type StreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	PublishToStream(ctx context.Context, stream string, data interface{}) error
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
