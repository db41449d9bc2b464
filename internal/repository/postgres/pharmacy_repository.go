package postgres

import (
	"context"
	"fmt"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type pharmacyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPharmacyRepository(db *DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *pharmacyRepository) GetAll(ctx context.Context) ([]domain.Pharmacy, error) {
	query := `
		SELECT id, name, address, city, lat, lon, phone, rating,
		       delivery_time, is_verified, created_at, updated_at
		FROM pharmacies
		ORDER BY name
	`

	pharmacies := []domain.Pharmacy{}
	if err := r.db.SelectContext(ctx, &pharmacies, query); err != nil {
		r.logger.Error("Failed to load pharmacies", zap.Error(err))
		return nil, fmt.Errorf("get pharmacies: %w", err)
	}

	return pharmacies, nil
}

func (r *pharmacyRepository) ListWithoutCoordinates(ctx context.Context, limit int) ([]domain.Pharmacy, error) {
	query := `
		SELECT id, name, address, city, lat, lon, phone, rating,
		       delivery_time, is_verified, created_at, updated_at
		FROM pharmacies
		WHERE lat IS NULL OR lon IS NULL
		ORDER BY created_at
		LIMIT $1
	`

	pharmacies := []domain.Pharmacy{}
	if err := r.db.SelectContext(ctx, &pharmacies, query, limit); err != nil {
		r.logger.Error("Failed to list pharmacies without coordinates", zap.Error(err))
		return nil, fmt.Errorf("list pharmacies without coordinates: %w", err)
	}

	return pharmacies, nil
}

func (r *pharmacyRepository) UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	query := `
		UPDATE pharmacies
		SET lat = $2, lon = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, lat, lon)
	if err != nil {
		r.logger.Error("Failed to update pharmacy coordinates",
			zap.String("pharmacy_id", id.String()),
			zap.Error(err))
		return fmt.Errorf("update pharmacy coordinates: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		r.logger.Warn("Pharmacy not found for coordinate update",
			zap.String("pharmacy_id", id.String()))
	}

	return nil
}
