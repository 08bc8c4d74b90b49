package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

const (
	invoiceColumns     = `id, work_order_id, subtotal, gst, total, gst_free, status, created_at, updated_at`
	installmentColumns = `invoice_id, number, due_date, amount, status, paid_at, payment_id`
)

// InvoiceRepository keeps the invoice header in invoices and its plan in
// installments; both are written in one transaction.
type InvoiceRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db, now: time.Now}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, inv.ID, inv.WorkOrderID, inv.Subtotal, inv.GST, inv.Total, inv.GSTFree, string(inv.Status), inv.CreatedAt.UTC(), inv.UpdatedAt.UTC())
	if err != nil {
		_ = tx.Rollback()
		return entities.Invoice{}, err
	}
	if err := insertInstallments(ctx, tx, inv.ID, inv.Installments); err != nil {
		_ = tx.Rollback()
		return entities.Invoice{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}

	plans, err := r.loadInstallments(ctx, `
		SELECT `+installmentColumns+` FROM installments WHERE invoice_id = $1 ORDER BY number ASC
	`, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Installments = plans[id]
	return inv, nil
}

// UpdateInstallments replaces the plan and sets the status atomically.
func (r *InvoiceRepository) UpdateInstallments(ctx context.Context, id string, installments []entities.Installment, status entities.InvoiceStatus) (entities.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv, err := scanInvoice(tx.QueryRowContext(ctx, `
		UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3
		RETURNING `+invoiceColumns,
		string(status), r.now().UTC(), id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return entities.Invoice{}, nil
	}
	if err != nil {
		_ = tx.Rollback()
		return entities.Invoice{}, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM installments WHERE invoice_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return entities.Invoice{}, err
	}
	if err := insertInstallments(ctx, tx, id, installments); err != nil {
		_ = tx.Rollback()
		return entities.Invoice{}, err
	}
	if err := tx.Commit(); err != nil {
		return entities.Invoice{}, err
	}

	inv.Installments = installments
	return inv, nil
}

func (r *InvoiceRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	plans, err := r.loadInstallments(ctx, `
		SELECT `+installmentColumns+`
		FROM installments
		WHERE invoice_id IN (SELECT id FROM invoices WHERE created_at >= $1 AND created_at < $2)
		ORDER BY invoice_id, number ASC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Installments = plans[out[i].ID]
	}
	return out, nil
}

func (r *InvoiceRepository) loadInstallments(ctx context.Context, query string, args ...any) (map[string][]entities.Installment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]entities.Installment{}
	for rows.Next() {
		var (
			invoiceID, status string
			in                entities.Installment
			paidAt            sql.NullTime
			paymentID         sql.NullString
		)
		if err := rows.Scan(&invoiceID, &in.Number, &in.DueDate, &in.Amount, &status, &paidAt, &paymentID); err != nil {
			return nil, err
		}
		in.DueDate = in.DueDate.UTC()
		in.Status = entities.InstallmentStatus(status)
		in.PaidAt = timePtr(paidAt)
		in.PaymentID = paymentID.String
		out[invoiceID] = append(out[invoiceID], in)
	}
	return out, rows.Err()
}

func insertInstallments(ctx context.Context, tx *sql.Tx, invoiceID string, plan []entities.Installment) error {
	if len(plan) == 0 {
		return nil
	}
	const perRow = 7
	values := make([]string, 0, len(plan))
	args := make([]any, 0, len(plan)*perRow)
	for i, in := range plan {
		values = append(values, "("+placeholders(i*perRow+1, perRow)+")")
		args = append(args, invoiceID, in.Number, in.DueDate.UTC(), in.Amount, string(in.Status), nullTime(in.PaidAt), nullString(in.PaymentID))
	}

	query := `INSERT INTO installments (` + installmentColumns + `) VALUES ` + strings.Join(values, ", ")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert installments: %w", err)
	}
	return nil
}

func scanInvoice(s rowScanner) (entities.Invoice, error) {
	var (
		inv    entities.Invoice
		status string
	)
	err := s.Scan(&inv.ID, &inv.WorkOrderID, &inv.Subtotal, &inv.GST, &inv.Total, &inv.GSTFree, &status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Status = entities.InvoiceStatus(status)
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return inv, nil
}
