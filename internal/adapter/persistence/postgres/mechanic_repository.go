package postgres

import (
	"context"
	"database/sql"
	"errors"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

type MechanicRepository struct {
	db *sql.DB
}

var _ interfaces.IMechanicRepository = (*MechanicRepository)(nil)

func NewMechanicRepository(db *sql.DB) *MechanicRepository {
	return &MechanicRepository{db: db}
}

func (r *MechanicRepository) Create(ctx context.Context, mechanic entities.Mechanic) (entities.Mechanic, error) {
	query := `
		INSERT INTO mechanics (id, name, daily_hours_goal, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		mechanic.ID, mechanic.Name, mechanic.DailyHoursGoal, mechanic.Active, mechanic.CreatedAt.UTC(),
	)
	if err != nil {
		return entities.Mechanic{}, err
	}
	return mechanic, nil
}

func (r *MechanicRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	query := `SELECT id, name, daily_hours_goal, active, created_at FROM mechanics WHERE id = $1`
	m, err := scanMechanic(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Mechanic{}, nil
	}
	return m, err
}

func (r *MechanicRepository) ListActive(ctx context.Context) ([]entities.Mechanic, error) {
	query := `
		SELECT id, name, daily_hours_goal, active, created_at
		FROM mechanics
		WHERE active = TRUE
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Mechanic{}
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMechanic(s rowScanner) (entities.Mechanic, error) {
	var (
		m    entities.Mechanic
		goal sql.NullFloat64
	)
	if err := s.Scan(&m.ID, &m.Name, &goal, &m.Active, &m.CreatedAt); err != nil {
		return entities.Mechanic{}, err
	}
	m.DailyHoursGoal = entities.DefaultDailyHoursGoal
	if goal.Valid {
		m.DailyHoursGoal = goal.Float64
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}

type CustomerRepository struct {
	db *sql.DB
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []string) (map[string]entities.Customer, error) {
	out := make(map[string]entities.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `SELECT id, name, is_priority FROM customers WHERE id IN (` + placeholders(1, len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, stringsToArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c entities.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.IsPriority); err != nil {
			return nil, err
		}
		out[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
