package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"moto_workshop/internal/adapter/http/handlers/mocks"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase"
)

func newWorkOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkOrderUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	h := NewWorkOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/work-orders", h.CreateWorkOrder)
	r.GET("/v1/work-orders/:id", h.GetWorkOrder)
	r.PATCH("/v1/work-orders/:id/status", h.UpdateStatus)
	return r, uc
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	send := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing description", func(t *testing.T) {
		r, _ := newWorkOrderRouter(t)
		if w := send(r, `{"priority":"high"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().CreateWorkOrder(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, usecase.ErrInvalidPriority)

		if w := send(r, `{"description":"Brakes","priority":"asap"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		hours := 1.5
		uc.EXPECT().CreateWorkOrder(gomock.Any(), usecase.CreateWorkOrderInput{
			Description:     "Brakes",
			Priority:        entities.WorkOrderPriorityUrgent,
			CustomerWaiting: true,
			EstimatedHours:  &hours,
		}).Return(entities.WorkOrder{ID: "wo-1", JobNumber: "WO-1A2B3C4D", Description: "Brakes", Priority: entities.WorkOrderPriorityUrgent, Status: entities.WorkOrderStatusPending, EstimatedHours: &hours}, nil)

		w := send(r, `{"description":"Brakes","priority":" URGENT ","customer_waiting":true,"estimated_hours":1.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["job_number"] != "WO-1A2B3C4D" || body["duration_hours"].(float64) != 1.5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["scheduled_start"]; ok {
			t.Fatalf("new work orders must not carry a start")
		}
	})
}

func TestWorkOrderHandler_GetAndUpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
		{"ok", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run("get "+tc.name, func(t *testing.T) {
			r, uc := newWorkOrderRouter(t)
			uc.EXPECT().GetWorkOrder(gomock.Any(), "wo-1").Return(entities.WorkOrder{ID: "wo-1"}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("status normalized", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "wo-1", entities.WorkOrderStatusWaitingOnParts).
			Return(entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusWaitingOnParts}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/wo-1/status", bytes.NewBufferString(`{"status":"Waiting_On_Parts"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status invalid", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "wo-1", entities.WorkOrderStatus("archived")).Return(entities.WorkOrder{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/wo-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
