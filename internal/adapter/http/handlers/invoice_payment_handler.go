package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "moto_workshop/internal/adapter/http/dto/request"
	response "moto_workshop/internal/adapter/http/dto/response"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/usecase"
	"moto_workshop/pkg"
)

// InvoicePaymentHandler settles installments through the payment gateway.
type InvoicePaymentHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
	log      *zap.Logger
}

// NewInvoicePaymentHandler takes mockMode from the payments config: in mock
// mode an unreadable body is replaced by an empty payload instead of a 400.
func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool, log *zap.Logger) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc, mockMode: mockMode, log: logger.OrNop(log).Named("payment.handler")}
}

func (h *InvoicePaymentHandler) PayInstallment(c *gin.Context) {
	invoiceID := c.Param("id")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	log := h.log.With(zap.String("invoice_id", invoiceID), zap.Int("installment", number))

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			respondError(c, errInvalidRequest)
			return
		}
		log.Debug("invalid payload in mock mode, using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayInstallment(c.Request.Context(), invoiceID, number, payload)
	if err != nil {
		log.Info("pay installment failed", zap.Error(err))
		respondError(c, mapInvoicePaymentError(err))
		return
	}
	log.Info("pay installment done", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func (h *InvoicePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseProviderPayload(raw)
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInstallmentNumber),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
