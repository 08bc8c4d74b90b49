package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"moto_workshop/internal/adapter/http/handlers/mocks"
	"moto_workshop/internal/domain/billing"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase"
)

func newInvoiceRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase, *time.Location) {
	t.Helper()
	loc := sydney(t)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc, loc)

	r := gin.New()
	r.POST("/v1/invoices", h.CreateInvoice)
	r.GET("/v1/invoices/gst-summary", h.GSTSummary)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.GET("/v1/invoices/:id/pdf", h.GetInvoicePDF)
	return r, uc, loc
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("bad first due", func(t *testing.T) {
		r, _, _ := newInvoiceRouter(t)
		if w := post(r, `{"work_order_id":"wo-1","subtotal":100,"first_due":"31/01/2024"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errs := []struct {
		name string
		err  error
		want int
	}{
		{"too many installments", billing.ErrInvalidInstallmentCount, http.StatusBadRequest},
		{"bad interval", billing.ErrInvalidPlanInterval, http.StatusBadRequest},
		{"work order missing", usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{"duplicate", usecase.ErrInvoiceAlreadyExists, http.StatusConflict},
	}
	for _, tc := range errs {
		t.Run(tc.name, func(t *testing.T) {
			r, uc, _ := newInvoiceRouter(t)
			uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, tc.err)
			if w := post(r, `{"work_order_id":"wo-1","subtotal":100}`); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("created", func(t *testing.T) {
		r, uc, loc := newInvoiceRouter(t)
		first := time.Date(2024, 1, 31, 0, 0, 0, 0, loc)
		uc.EXPECT().CreateInvoice(gomock.Any(), usecase.CreateInvoiceInput{
			WorkOrderID:  "wo-1",
			Subtotal:     100,
			Installments: 3,
			Interval:     entities.PlanIntervalMonthly,
			FirstDue:     first,
		}).Return(entities.Invoice{
			ID: "wo-1", WorkOrderID: "wo-1", Subtotal: 100, GST: 10, Total: 110, Status: entities.InvoiceStatusOpen,
			Installments: []entities.Installment{
				{Number: 1, DueDate: first, Amount: 36.67},
				{Number: 2, DueDate: time.Date(2024, 2, 29, 0, 0, 0, 0, loc), Amount: 36.67},
				{Number: 3, DueDate: time.Date(2024, 3, 31, 0, 0, 0, 0, loc), Amount: 36.66},
			},
		}, nil)

		w := post(r, `{"work_order_id":"wo-1","subtotal":100,"installments":3,"interval":"Monthly","first_due":"2024-01-31"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Total        float64 `json:"total"`
			Installments []struct {
				DueDate string `json:"due_date"`
			} `json:"installments"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Total != 110 || len(body.Installments) != 3 || body.Installments[1].DueDate != "2024-02-29" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GetAndPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, uc, _ := newInvoiceRouter(t)
		uc.EXPECT().GetInvoice(gomock.Any(), "wo-9").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/wo-9", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		r, uc, _ := newInvoiceRouter(t)
		uc.EXPECT().GetInvoice(gomock.Any(), "wo-1").Return(entities.Invoice{ID: "wo-1", Subtotal: 100, GST: 10, Total: 110}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/wo-1/pdf", nil))
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Fatalf("body is not a pdf")
		}
	})
}

func TestInvoiceHandler_GSTSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing period", func(t *testing.T) {
		r, uc, _ := newInvoiceRouter(t)
		uc.EXPECT().GSTSummary(gomock.Any(), time.Time{}, time.Time{}).Return(entities.GSTSummary{}, usecase.ErrInvalidPeriod)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/gst-summary", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("summary", func(t *testing.T) {
		r, uc, loc := newInvoiceRouter(t)
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
		to := time.Date(2024, 4, 1, 0, 0, 0, 0, loc)
		uc.EXPECT().GSTSummary(gomock.Any(), from, to).
			Return(entities.GSTSummary{From: from, To: to, InvoiceCount: 2, TotalSales: 160, GSTCollected: 10, GSTFreeSubtotal: 50}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/gst-summary?from=2024-01-01&to=2024-04-01", nil))

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["gst_collected"].(float64) != 10 || body["to"] != "2024-04-01" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
