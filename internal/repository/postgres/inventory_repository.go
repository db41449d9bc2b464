package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type inventoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewInventoryRepository(db *DB) repository.InventoryRepository {
	return &inventoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// SearchListings joins the medicine catalog against per-pharmacy stock.
// Only rows marked available are returned; sorting is done by the caller,
// which also owns the distance attribute.
func (r *inventoryRepository) SearchListings(
	ctx context.Context,
	filter domain.InventoryFilter,
	pharmacyIDs []uuid.UUID,
) ([]domain.InventoryListing, error) {
	conditions := []string{"pi.is_available = TRUE"}
	args := []interface{}{}

	if filter.Text != "" {
		args = append(args, "%"+filter.Text+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(m.name ILIKE $%d OR m.brand ILIKE $%d OR m.category ILIKE $%d)", n, n, n))
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("m.category = $%d", len(args)))
	}

	if pharmacyIDs != nil {
		args = append(args, pq.Array(pharmacyIDs))
		conditions = append(conditions, fmt.Sprintf("p.id = ANY($%d)", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT
			m.id AS medicine_id,
			m.name AS medicine_name,
			m.brand,
			m.category,
			p.id AS pharmacy_id,
			p.name AS pharmacy_name,
			p.address AS pharmacy_address,
			pi.price,
			pi.original_price,
			pi.stock_quantity,
			pi.is_available,
			p.rating,
			p.delivery_time
		FROM pharmacy_inventory pi
		JOIN medicines m ON m.id = pi.medicine_id
		JOIN pharmacies p ON p.id = pi.pharmacy_id
		WHERE %s
		ORDER BY m.name, p.name
	`, strings.Join(conditions, " AND "))

	listings := []domain.InventoryListing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		r.logger.Error("Failed to search inventory listings",
			zap.String("text", filter.Text),
			zap.String("category", filter.Category),
			zap.Error(err))
		return nil, fmt.Errorf("search listings: %w", err)
	}

	return listings, nil
}
