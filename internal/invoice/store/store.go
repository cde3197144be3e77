package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	id, client_id, booking_id, total, status, voucher_id, discount_amount, total_after_discount,
	due_at, paid_at, created_at, updated_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var status string

	if err := s.Scan(
		&inv.ID, &inv.ClientID, &inv.BookingID, &inv.Total, &status, &inv.VoucherID,
		&inv.DiscountAmount, &inv.TotalAfterDiscount, &inv.DueAt, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(status)

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (client_id, booking_id, total, status, discount_amount, total_after_discount, due_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.ClientID,
		inv.BookingID,
		inv.Total,
		inv.Status,
		inv.DiscountAmount,
		inv.TotalAfterDiscount,
		inv.DueAt,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return apperr.Storage("creating invoice", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrInvoiceNotFound
		}

		return nil, apperr.Storage("getting invoice", err)
	}

	return inv, nil
}

func (s *Store) ListClientInvoices(ctx context.Context, clientID uuid.UUID) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE client_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, apperr.Storage("listing invoices", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, apperr.Storage("scanning invoice", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating invoices", err)
	}

	return invoices, nil
}

// ApplyDiscount refuses a voucher already sitting on another unpaid invoice, so one
// voucher can never be spread over several open invoices.
func (s *Store) ApplyDiscount(ctx context.Context, a invoice.Applied) (bool, error) {
	query := `
		UPDATE invoices
		SET voucher_id = $2, discount_amount = $3, total_after_discount = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
			AND NOT EXISTS (
				SELECT 1 FROM invoices o
				WHERE o.voucher_id = $2 AND o.id <> $1 AND o.status = $5
			)
	`

	res, err := s.db.ExecContext(ctx, query, a.InvoiceID, a.VoucherID, a.DiscountAmount, a.TotalAfterDiscount, invoice.StatusUnpaid)
	if err != nil {
		return false, apperr.Storage("applying discount", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Storage("applying discount", err)
	}

	if n > 0 {
		return true, nil
	}

	var held bool

	// Only blame the voucher when the invoice itself is still open.
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE voucher_id = $1 AND id <> $2 AND status = $3
		) AND EXISTS (
			SELECT 1 FROM invoices WHERE id = $2 AND status = $3
		)
	`, a.VoucherID, a.InvoiceID, invoice.StatusUnpaid).Scan(&held)
	if err != nil {
		return false, apperr.Storage("checking voucher holder", err)
	}

	if held {
		return false, invoice.ErrVoucherInUse
	}

	return false, nil
}

func (s *Store) ReleaseVoucher(ctx context.Context, id, voucherID uuid.UUID) error {
	query := `
		UPDATE invoices
		SET voucher_id = NULL, discount_amount = 0, total_after_discount = total, updated_at = NOW()
		WHERE id = $1 AND voucher_id = $2 AND status = $3
	`

	if _, err := s.db.ExecContext(ctx, query, id, voucherID, invoice.StatusUnpaid); err != nil {
		return apperr.Storage("releasing voucher", err)
	}

	return nil
}

// MarkPaid settles the invoice and flips its voucher from ACTIVE to USED. Both updates
// are conditional on the current state, so a voucher that reached two invoices (two
// concurrent applies) is only ever consumed by the first one paid.
func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("starting payment transaction", err)
	}
	defer tx.Rollback()

	var voucherID *uuid.UUID

	err = tx.QueryRowContext(ctx, `
		UPDATE invoices
		SET status = $2, paid_at = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING voucher_id
	`, id, invoice.StatusPaid, paidAt, invoice.StatusUnpaid).Scan(&voucherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invoice.ErrInvoicePaid
		}

		return apperr.Storage("marking invoice paid", err)
	}

	if voucherID != nil {
		res, err := tx.ExecContext(ctx, `
			UPDATE rewards_issued
			SET status = 'USED', used_invoice_id = $2, used_at = $3
			WHERE id = $1 AND status = 'ACTIVE'
		`, *voucherID, id, paidAt)
		if err != nil {
			return apperr.Storage("consuming voucher", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return apperr.Storage("consuming voucher", err)
		}

		if n == 0 {
			return invoice.ErrVoucherAlreadyUsed
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("committing payment", err)
	}

	return nil
}
