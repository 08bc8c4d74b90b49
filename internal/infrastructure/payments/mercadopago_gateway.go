package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	appconfig "moto_workshop/internal/infrastructure/config"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrNotConfigured      = errors.New("mercado pago gateway not configured")
)

// paymentCreator is the part of payment.Client the gateway calls.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges installments through Mercado Pago. In mock mode
// no provider call is made and every payment is approved.
type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = logger.OrNop(log).Named("payment.gateway")
	g := &MercadoPagoGateway{log: log, now: func() time.Time { return time.Now().UTC() }}

	if cfg.MockEnabled() {
		log.Warn("mock mode enabled")
		g.mockMode = true
		return g, nil
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Error("sdk config failed", zap.Error(err))
		return nil, err
	}
	g.client = payment.NewClient(sdkCfg)
	log.Info("client initialized", zap.Bool("sandbox", cfg.Sandbox()))
	return g, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Info("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("create failed", zap.Error(err))
		return "", "", nil, err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("create success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return id, resp.Status, b, nil
}

// mockCreate echoes the request back with an approved status.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil || resp == nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Debug("mock create", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
