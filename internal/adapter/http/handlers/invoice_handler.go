package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	request "moto_workshop/internal/adapter/http/dto/request"
	response "moto_workshop/internal/adapter/http/dto/response"
	"moto_workshop/internal/domain/billing"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/infrastructure/reports"
	"moto_workshop/internal/usecase"
	"moto_workshop/pkg"
)

// InvoiceHandler handles invoices: one per work order, GST on top of the
// ex-GST subtotal, optional installment plan.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	loc     *time.Location
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, loc *time.Location) *InvoiceHandler {
	if loc == nil {
		loc = time.Local
	}
	return &InvoiceHandler{usecase: uc, loc: loc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	firstDue, err := payload.ResolveFirstDue(h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), usecase.CreateInvoiceInput{
		WorkOrderID:  payload.WorkOrderID,
		Subtotal:     payload.Subtotal,
		GSTFree:      payload.GSTFree,
		Installments: payload.Installments,
		Interval:     entities.PlanInterval(strings.ToLower(strings.TrimSpace(payload.Interval))),
		FirstDue:     firstDue,
	})
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv, h.loc))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, h.loc))
}

func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	buf, filename, err := reports.InvoicePDF(inv, h.loc)
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	attachment(c, filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GSTSummary aggregates invoices created in [from, to). Both dates are required.
func (h *InvoiceHandler) GSTSummary(c *gin.Context) {
	from, errFrom := request.ParseDate(c.Query("from"), h.loc)
	to, errTo := request.ParseDate(c.Query("to"), h.loc)
	if errFrom != nil || errTo != nil {
		respondError(c, errInvalidDate)
		return
	}

	summary, err := h.usecase.GSTSummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGSTSummary(summary, h.loc))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceAmount), errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, billing.ErrInvalidInstallmentCount), errors.Is(err, billing.ErrInvalidPlanInterval),
		errors.Is(err, billing.ErrNegativeAmount):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this work order", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
