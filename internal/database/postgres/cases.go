package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/domain"
)

const listCasesSQL = `SELECT id, name, description, image, rarity,
	price_money, price_donate, min_price, max_price, type_contains
FROM web_cases ORDER BY id`

// CaseStore reads the case catalog from the web_cases table, falling
// back to the built-in configs while the table is empty. No caching:
// admin edits take effect on the next request.
type CaseStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewCaseStore creates a new case store.
func NewCaseStore(db *pgxpool.Pool, timeout time.Duration) *CaseStore {
	return &CaseStore{db: db, timeout: timeout}
}

func (s *CaseStore) ListCases(ctx context.Context) ([]domain.CaseConfig, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.Query(ctx, listCasesSQL)
	if err != nil {
		return nil, storeErr("failed to list cases", err)
	}
	defer rows.Close()

	var configs []domain.CaseConfig
	for rows.Next() {
		var (
			cfg          domain.CaseConfig
			description  pgtype.Text
			image        pgtype.Text
			rarity       pgtype.Text
			minPrice     pgtype.Int4
			maxPrice     pgtype.Int4
			typeContains pgtype.Text
		)
		err := rows.Scan(&cfg.ID, &cfg.Name, &description, &image, &rarity,
			&cfg.PriceMoney, &cfg.PriceDonate, &minPrice, &maxPrice, &typeContains)
		if err != nil {
			return nil, storeErr("failed to scan case row", err)
		}
		cfg.Description = description.String
		cfg.Image = image.String
		cfg.Rarity = rarity.String

		// A type filter takes precedence over the price band.
		if typeContains.Valid && typeContains.String != "" {
			cfg.Eligibility = domain.TypeContains{Substring: typeContains.String}
		} else {
			cfg.Eligibility = domain.PriceBand{Min: int(minPrice.Int32), Max: int(maxPrice.Int32)}
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read case rows", err)
	}

	if len(configs) == 0 {
		return domain.DefaultCases(), nil
	}
	return configs, nil
}

func (s *CaseStore) GetCase(ctx context.Context, id int) (*domain.CaseConfig, error) {
	configs, err := s.ListCases(ctx)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		if configs[i].ID == id {
			return &configs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: case %d", domain.ErrCaseNotFound, id)
}
