package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"moto_workshop/internal/domain/billing"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrInvoicePaymentNotFound         = errors.New("invoice payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidInstallmentNumber       = errors.New("invalid installment number")
	ErrInstallmentNotFound            = errors.New("installment not found")
	ErrInstallmentAlreadyPaid         = errors.New("installment already paid")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the provider settings the payload rules depend on.
type PaymentOptions struct {
	// Mock relaxes payload validation; the gateway answers approved without a provider call.
	Mock bool
	// Sandbox is true for TEST- access tokens.
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IInvoicePaymentUseCase settles invoice installments through the payment gateway.
type IInvoicePaymentUseCase interface {
	PayInstallment(ctx context.Context, invoiceID string, number int, providerPayload json.RawMessage) (entities.InvoicePayment, error)
	GetPayment(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo        interfaces.IInvoicePaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	opts        PaymentOptions
	log         *zap.Logger
	now         func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, log *zap.Logger) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{
		repo:        repo,
		invoiceRepo: invoiceRepo,
		gateway:     gateway,
		opts:        opts,
		log:         logger.OrNop(log).Named("payment.usecase"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoicePaymentUseCase) PayInstallment(ctx context.Context, invoiceID string, number int, providerPayload json.RawMessage) (entities.InvoicePayment, error) {
	log := u.log.With(zap.String("invoice_id", strings.TrimSpace(invoiceID)), zap.Int("installment", number))
	log.Debug("pay installment start", zap.Int("payload_len", len(providerPayload)))

	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidInvoiceID
	}
	if number < 1 {
		return entities.InvoicePayment{}, ErrInvalidInstallmentNumber
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.opts.Mock {
			log.Info("invalid provider payload")
			return entities.InvoicePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		log.Error("load invoice failed", zap.Error(err))
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	installment, ok := inv.Installment(number)
	if !ok {
		return entities.InvoicePayment{}, ErrInstallmentNotFound
	}
	if installment.Status == entities.InstallmentStatusPaid {
		return entities.InvoicePayment{}, ErrInstallmentAlreadyPaid
	}

	payload, err := u.enrichPayload(providerPayload, inv, installment)
	if err != nil {
		log.Info("provider payload rejected", zap.Error(err))
		return entities.InvoicePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.InvoicePayment{}, classifyGatewayError(err)
	}
	log.Info("payment gateway answered", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	now := u.now()
	p := entities.InvoicePayment{
		ID:                 providerPaymentID,
		InvoiceID:          inv.ID,
		InstallmentNumber:  number,
		Amount:             installment.Amount,
		Date:               now,
		Status:             MapProviderStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		plan, _ := billing.MarkPaid(inv.Installments, number, created.ID, now)
		if _, err := u.invoiceRepo.UpdateInstallments(ctx, inv.ID, plan, billing.ResolveStatus(plan)); err != nil {
			// The payment row exists; the installment can be reconciled from it.
			log.Error("installment update failed", zap.String("payment_id", created.ID), zap.Error(err))
			return created, err
		}
	}
	log.Info("pay installment done", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// enrichPayload links the provider request to the installment. The stored
// installment amount is the source of truth for transaction_amount.
func (u *InvoicePaymentUseCase) enrichPayload(raw json.RawMessage, inv entities.Invoice, in entities.Installment) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		return nil, ErrInvalidProviderPayload
	}

	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return nil, ErrInvalidProviderPayload
		}
	}

	reference := fmt.Sprintf("%s:%d", inv.ID, in.Number)
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = reference
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s installment %d of %d", inv.ID, in.Number, len(inv.Installments))
	}
	req["transaction_amount"] = in.Amount

	return json.Marshal(req)
}

// MapProviderStatus folds Mercado Pago statuses into the three we store.
func MapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; only fill the email when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.Sandbox {
			payer["email"] = "test_user_au@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the test environment expects.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user id to email")
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case isGatewayInvalidUsers(err):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case isGatewayUnauthorized(err):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`)
}

func (u *InvoicePaymentUseCase) GetPayment(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
