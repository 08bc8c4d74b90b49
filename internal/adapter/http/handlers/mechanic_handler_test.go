package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"moto_workshop/internal/adapter/http/handlers/mocks"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase"
)

func TestMechanicHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIMechanicUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIMechanicUseCase(ctrl)
		h := NewMechanicHandler(uc)
		r := gin.New()
		r.GET("/v1/mechanics", h.ListMechanics)
		r.POST("/v1/mechanics", h.CreateMechanic)
		return r, uc
	}

	t.Run("list", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.Mechanic{{ID: "M1", Name: "Ana", DailyHoursGoal: 8, Active: true}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/mechanics", nil))

		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 1 || body[0]["daily_hours_goal"].(float64) != 8 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create keeps explicit zero goal", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreateMechanic(gomock.Any(), "Bo", gomock.Any()).DoAndReturn(
			func(_ any, name string, goal *float64) (entities.Mechanic, error) {
				if goal == nil || *goal != 0 {
					t.Fatalf("expected explicit zero goal, got %v", goal)
				}
				return entities.Mechanic{ID: "M2", Name: name, Active: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/mechanics", bytes.NewBufferString(`{"name":"Bo","daily_hours_goal":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create negative goal", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().CreateMechanic(gomock.Any(), "Bo", gomock.Any()).Return(entities.Mechanic{}, usecase.ErrInvalidHoursGoal)

		req := httptest.NewRequest(http.MethodPost, "/v1/mechanics", bytes.NewBufferString(`{"name":"Bo","daily_hours_goal":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
