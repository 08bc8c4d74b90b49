package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

const invoicePaymentColumns = `id, invoice_id, installment_number, amount, date, status, provider_payload_raw`

// InvoicePaymentRepository stores only the raw provider body; the parsed
// payload is rebuilt from it on read.
type InvoicePaymentRepository struct {
	db *sql.DB
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentRepository)(nil)

func NewInvoicePaymentRepository(db *sql.DB) *InvoicePaymentRepository {
	return &InvoicePaymentRepository{db: db}
}

func (r *InvoicePaymentRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	var raw any
	if len(p.ProviderPayloadRaw) > 0 {
		raw = string(p.ProviderPayloadRaw)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoice_payments (`+invoicePaymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.InvoiceID, p.InstallmentNumber, p.Amount, p.Date.UTC(), string(p.Status), raw)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	p, err := scanInvoicePayment(r.db.QueryRowContext(ctx, `SELECT `+invoicePaymentColumns+` FROM invoice_payments WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.InvoicePayment{}, nil
	}
	return p, err
}

func (r *InvoicePaymentRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invoicePaymentColumns+`
		FROM invoice_payments
		WHERE invoice_id = $1
		ORDER BY date ASC
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.InvoicePayment{}
	for rows.Next() {
		p, err := scanInvoicePayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInvoicePayment(s rowScanner) (entities.InvoicePayment, error) {
	var (
		p      entities.InvoicePayment
		status string
		raw    []byte
	)
	if err := s.Scan(&p.ID, &p.InvoiceID, &p.InstallmentNumber, &p.Amount, &p.Date, &status, &raw); err != nil {
		return entities.InvoicePayment{}, err
	}
	p.Status = entities.PaymentStatus(status)
	p.Date = p.Date.UTC()
	if len(raw) > 0 {
		p.ProviderPayloadRaw = json.RawMessage(raw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p, nil
}
