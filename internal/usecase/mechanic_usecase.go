package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrInvalidMechanicName = errors.New("mechanic name is required")
	ErrInvalidHoursGoal    = errors.New("daily hours goal must not be negative")
)

type IMechanicUseCase interface {
	ListActive(ctx context.Context) ([]entities.Mechanic, error)
	GetMechanic(ctx context.Context, id string) (entities.Mechanic, error)
	CreateMechanic(ctx context.Context, name string, dailyHoursGoal *float64) (entities.Mechanic, error)
}

type MechanicUseCase struct {
	repo        interfaces.IMechanicRepository
	cache       interfaces.IBoardCache
	defaultGoal float64
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

// NewMechanicUseCase uses defaultGoal for mechanics created without a goal;
// a non-positive value falls back to entities.DefaultDailyHoursGoal.
func NewMechanicUseCase(repo interfaces.IMechanicRepository, cache interfaces.IBoardCache, defaultGoal float64) *MechanicUseCase {
	if defaultGoal <= 0 {
		defaultGoal = entities.DefaultDailyHoursGoal
	}
	return &MechanicUseCase{repo: repo, cache: cache, defaultGoal: defaultGoal}
}

func (u *MechanicUseCase) ListActive(ctx context.Context) ([]entities.Mechanic, error) {
	return u.repo.ListActive(ctx)
}

func (u *MechanicUseCase) GetMechanic(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) CreateMechanic(ctx context.Context, name string, dailyHoursGoal *float64) (entities.Mechanic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Mechanic{}, ErrInvalidMechanicName
	}
	goal := u.defaultGoal
	if dailyHoursGoal != nil {
		if *dailyHoursGoal < 0 {
			return entities.Mechanic{}, ErrInvalidHoursGoal
		}
		goal = *dailyHoursGoal
	}

	m := entities.Mechanic{
		ID:             uuid.NewString(),
		Name:           name,
		DailyHoursGoal: goal,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if u.cache != nil {
		// New row on every board; a failed flush only delays it until the TTL.
		_ = u.cache.InvalidateAll(ctx)
	}
	return created, nil
}
