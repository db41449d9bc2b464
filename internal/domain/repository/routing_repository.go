package repository

import (
	"context"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
)

// RoutingRepository requests turn-by-turn routes from the directions service.
type RoutingRepository interface {
	GetRoute(ctx context.Context, from, to domain.Coordinate) (*domain.Route, error)
}
