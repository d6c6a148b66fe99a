package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type healthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &healthRepository{db: db}
}

// SchemaVersion reports the newest applied migration.
func (r *healthRepository) SchemaVersion(ctx context.Context) (int, error) {
	var version int

	err := r.db.GetContext(ctx, &version, `
			SELECT COALESCE(MAX(version), 0)
			FROM schema_migrations
		`)

	if err != nil {
		return 0, fmt.Errorf("ошибка при чтении версии схемы: %w", err)
	}

	return version, nil
}
