package usecase

import (
	"context"
	"errors"
	"testing"

	"moto_workshop/internal/domain/entities"
	mock_interfaces "moto_workshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicUseCase_CreateMechanic(t *testing.T) {
	cases := []struct {
		name        string
		defaultGoal float64
		goal        *float64
		wantGoal    float64
		wantErr     error
	}{
		{name: "default goal", defaultGoal: 0, wantGoal: 8},
		{name: "configured default", defaultGoal: 7.5, wantGoal: 7.5},
		{name: "explicit goal", defaultGoal: 8, goal: ptrFloat(6), wantGoal: 6},
		{name: "zero goal allowed", defaultGoal: 8, goal: ptrFloat(0), wantGoal: 0},
		{name: "negative goal", defaultGoal: 8, goal: ptrFloat(-1), wantErr: ErrInvalidHoursGoal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
			cache := mock_interfaces.NewMockIBoardCache(ctrl)
			if tc.wantErr == nil {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mechanic entities.Mechanic) (entities.Mechanic, error) {
						return mechanic, nil
					},
				)
				cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)
			}

			uc := NewMechanicUseCase(repo, cache, tc.defaultGoal)
			got, err := uc.CreateMechanic(context.Background(), " Ana ", tc.goal)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if got.ID == "" || got.Name != "Ana" || !got.Active || got.DailyHoursGoal != tc.wantGoal {
				t.Fatalf("unexpected mechanic %+v", got)
			}
		})
	}
}

func TestMechanicUseCase_CreateMechanic_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewMechanicUseCase(repo, nil, 8)

	if _, err := uc.CreateMechanic(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidMechanicName) {
		t.Fatalf("expected ErrInvalidMechanicName, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Mechanic{}, errors.New("db"))
	if _, err := uc.CreateMechanic(context.Background(), "Bo", nil); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestMechanicUseCase_GetMechanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
	uc := NewMechanicUseCase(repo, nil, 8)

	if _, err := uc.GetMechanic(context.Background(), ""); !errors.Is(err, ErrInvalidMechanicID) {
		t.Fatalf("expected ErrInvalidMechanicID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "M9").Return(entities.Mechanic{}, nil)
	if _, err := uc.GetMechanic(context.Background(), "M9"); !errors.Is(err, ErrMechanicNotFound) {
		t.Fatalf("expected ErrMechanicNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "M1").Return(entities.Mechanic{ID: "M1", Name: "Ana"}, nil)
	got, err := uc.GetMechanic(context.Background(), "M1")
	if err != nil || got.Name != "Ana" {
		t.Fatalf("unexpected result %+v %v", got, err)
	}
}

func TestMechanicUseCase_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
	repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Mechanic{{ID: "M1"}, {ID: "M2"}}, nil)

	got, err := NewMechanicUseCase(repo, nil, 8).ListActive(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected result %+v %v", got, err)
	}
}
