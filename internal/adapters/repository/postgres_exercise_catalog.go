package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var _ domain.ExerciseCatalog = (*PostgresExerciseCatalog)(nil)

type PostgresExerciseCatalog struct {
	db *sqlx.DB
}

func NewPostgresExerciseCatalog(db *sqlx.DB) *PostgresExerciseCatalog {
	return &PostgresExerciseCatalog{db: db}
}

func (c *PostgresExerciseCatalog) Names(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := c.db.SelectContext(ctx, &names, `SELECT name FROM exercises WHERE name <> '' ORDER BY name ASC`); err != nil {
		return nil, domain.StoreError("list exercise names", err)
	}
	return names, nil
}

func (c *PostgresExerciseCatalog) Top(ctx context.Context, limit int) ([]*domain.ExerciseRecord, error) {
	query := `
		SELECT name, max_weight, max_reps, updated_at
		FROM exercises
		ORDER BY max_weight DESC, name ASC
		LIMIT $1`

	records := []*domain.ExerciseRecord{}
	if err := c.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, domain.StoreError("top exercises", err)
	}
	return records, nil
}

func (c *PostgresExerciseCatalog) Upsert(ctx context.Context, rec *domain.ExerciseRecord) error {
	query := `
		INSERT INTO exercises (name, max_weight, max_reps, updated_at)
		VALUES (:name, :max_weight, :max_reps, :updated_at)
		ON CONFLICT (name) DO UPDATE SET
			max_weight = EXCLUDED.max_weight,
			max_reps = EXCLUDED.max_reps,
			updated_at = EXCLUDED.updated_at`

	if _, err := c.db.NamedExecContext(ctx, query, rec); err != nil {
		return domain.StoreError("upsert exercise", err)
	}
	return nil
}
