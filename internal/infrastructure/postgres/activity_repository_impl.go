package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ProfJake/lab10/internal/domain/entity"
	"github.com/ProfJake/lab10/internal/domain/repository"
)

const activityColumns = "id, activity_type, weight, distance, duration, user_id"

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *entity.Activity) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activities (id, activity_type, weight, distance, duration, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Type, a.Weight, a.Distance, a.Time, a.UserID)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE id = $1
	`, id)

	a := &entity.Activity{}
	if err := row.Scan(&a.ID, &a.Type, &a.Weight, &a.Distance, &a.Time, &a.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]entity.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE user_id = $1
		ORDER BY seq
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

// FindByField matches on exactly one whitelisted column; the column name
// comes from the closed SearchField set, never from the caller.
func (r *ActivityRepository) FindByField(ctx context.Context, criteria repository.SearchCriteria) ([]entity.Activity, error) {
	col, ok := searchColumn(criteria.Field)
	if !ok {
		return nil, fmt.Errorf("unsearchable field %q", criteria.Field)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE `+col+` = $1
		ORDER BY distance DESC, seq
	`, criteria.Value())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func searchColumn(f repository.SearchField) (string, bool) {
	switch f {
	case repository.FieldUser:
		return "user_id", true
	case repository.FieldActivityType:
		return "activity_type", true
	case repository.FieldWeight:
		return "weight", true
	case repository.FieldDistance:
		return "distance", true
	case repository.FieldTime:
		return "duration", true
	default:
		return "", false
	}
}

func scanActivities(rows pgx.Rows) ([]entity.Activity, error) {
	var out []entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Weight, &a.Distance, &a.Time, &a.UserID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
