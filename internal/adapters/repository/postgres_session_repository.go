package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var _ domain.SessionRepository = (*PostgresSessionRepository)(nil)

type PostgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

type sessionRow struct {
	ID          string          `db:"id"`
	Date        time.Time       `db:"date"`
	BodyWeight  sql.NullFloat64 `db:"body_weight"`
	WorkoutType string          `db:"workout_type"`
	Workout     string          `db:"workout"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

const sessionColumns = `id, date, body_weight, workout_type, workout, created_at, updated_at`

func newSessionRow(s *domain.Session) (*sessionRow, error) {
	workout, err := json.Marshal(s.Workout)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workout: %w", err)
	}

	row := &sessionRow{
		ID:          s.ID,
		Date:        s.Date.UTC(),
		WorkoutType: s.WorkoutType,
		Workout:     string(workout),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.BodyWeight != nil {
		row.BodyWeight = sql.NullFloat64{Float64: *s.BodyWeight, Valid: true}
	}
	return row, nil
}

func (r *sessionRow) toDomain() (*domain.Session, error) {
	s := &domain.Session{
		ID:          r.ID,
		Date:        r.Date.UTC(),
		WorkoutType: r.WorkoutType,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
	if r.BodyWeight.Valid {
		bw := r.BodyWeight.Float64
		s.BodyWeight = &bw
	}
	if err := json.Unmarshal([]byte(r.Workout), &s.Workout); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workout of %s: %w", r.ID, err)
	}
	if s.Workout == nil {
		s.Workout = []domain.SessionExercise{}
	}
	return s, nil
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	row, err := newSessionRow(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES (:id, :date, :body_weight, :workout_type, :workout, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: session %s already exists", domain.ErrInvalidInput, s.ID)
		}
		return domain.StoreError("insert session", err)
	}
	return nil
}

func (r *PostgresSessionRepository) Update(ctx context.Context, s *domain.Session) error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return domain.ErrSessionNotFound
	}

	row, err := newSessionRow(s)
	if err != nil {
		return err
	}

	query := `
		UPDATE sessions SET
			date = :date, body_weight = :body_weight, workout_type = :workout_type,
			workout = :workout, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return domain.StoreError("update session", err)
	}
	return requireAffected(res)
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrSessionNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return domain.StoreError("delete session", err)
	}
	return requireAffected(res)
}

func (r *PostgresSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSessionNotFound
	}

	var row sessionRow
	err := r.db.GetContext(ctx, &row, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgErrorCode(err) == pgInvalidTextFormat {
			return nil, domain.ErrSessionNotFound
		}
		return nil, domain.StoreError("get session", err)
	}
	return row.toDomain()
}

func (r *PostgresSessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY date DESC, created_at DESC`)
}

func (r *PostgresSessionRepository) ListByExercise(ctx context.Context, name string) ([]*domain.Session, error) {
	filter, err := json.Marshal([]map[string]string{{"name": name}})
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + sessionColumns + ` FROM sessions
		WHERE workout @> $1::jsonb
		ORDER BY date DESC, created_at DESC`
	return r.list(ctx, query, string(filter))
}

func (r *PostgresSessionRepository) LastByWorkoutType(ctx context.Context, workoutType string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + ` FROM sessions
		WHERE workout_type = $1
		ORDER BY date DESC, created_at DESC
		LIMIT 1`

	var row sessionRow
	if err := r.db.GetContext(ctx, &row, query, workoutType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, domain.StoreError("last session by type", err)
	}
	return row.toDomain()
}

func (r *PostgresSessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.StoreError("list sessions", err)
	}

	sessions := make([]*domain.Session, 0, len(rows))
	for i := range rows {
		s, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StoreError("rows affected", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
