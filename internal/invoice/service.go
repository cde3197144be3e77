package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListClientInvoices(ctx context.Context, clientID uuid.UUID) ([]*Invoice, error)
	// ApplyDiscount records the voucher and amounts while the invoice is unpaid.
	// It reports whether a row changed, and returns ErrVoucherInUse when another
	// unpaid invoice already carries the voucher.
	ApplyDiscount(ctx context.Context, a Applied) (bool, error)
	// MarkPaid settles the invoice and consumes its voucher, if any, in one transaction.
	// It returns ErrInvoicePaid or ErrVoucherAlreadyUsed when either has already happened.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	// ReleaseVoucher drops voucherID from the unpaid invoice and restores its full total.
	ReleaseVoucher(ctx context.Context, id, voucherID uuid.UUID) error
}

// Vouchers resolves a client's voucher code to the voucher and its campaign.
type Vouchers interface {
	FindVoucher(ctx context.Context, clientID uuid.UUID, code string) (*reward.Voucher, *reward.Campaign, error)
}

type Service struct {
	repo     Repository
	vouchers Vouchers
	now      func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, vouchers Vouchers, opts ...Option) *Service {
	s := &Service{repo: repo, vouchers: vouchers, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateInvoiceParams struct {
	ClientID  uuid.UUID
	BookingID *uuid.UUID
	Total     decimal.Decimal
	DueAt     *time.Time
}

func (s *Service) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	if !params.Total.IsPositive() {
		return nil, ErrInvalidTotal
	}

	total := params.Total.Round(2)
	inv := &Invoice{
		ClientID:           params.ClientID,
		BookingID:          params.BookingID,
		Total:              total,
		Status:             StatusUnpaid,
		DiscountAmount:     decimal.Zero,
		TotalAfterDiscount: total,
		DueAt:              params.DueAt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Get returns the invoice if it belongs to clientID. Another client's invoice is
// reported as not found.
func (s *Service) Get(ctx context.Context, id, clientID uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.ClientID != clientID {
		return nil, ErrInvoiceNotFound
	}

	return inv, nil
}

func (s *Service) ListClientInvoices(ctx context.Context, clientID uuid.UUID) ([]*Invoice, error) {
	return s.repo.ListClientInvoices(ctx, clientID)
}

// ApplyVoucher discounts an unpaid invoice with one of the client's internal vouchers.
// The voucher stays ACTIVE until the invoice is paid.
func (s *Service) ApplyVoucher(ctx context.Context, invoiceID, clientID uuid.UUID, code string) (*Applied, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	inv, err := s.Get(ctx, invoiceID, clientID)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusUnpaid {
		return nil, ErrInvoicePaid
	}

	v, c, err := s.vouchers.FindVoucher(ctx, clientID, code)
	if err != nil {
		return nil, err
	}

	if v.Status == reward.VoucherUsed {
		return nil, ErrVoucherAlreadyUsed
	}

	redemption, ok := c.Redemption.(reward.InternalCode)
	if !ok || v.Kind != reward.VoucherInternal || v.Status != reward.VoucherActive {
		return nil, ErrVoucherNotUsable
	}

	if c.Expired(s.now()) {
		return nil, ErrVoucherExpired
	}

	amount, remaining := redemption.Discount.Apply(inv.Total)
	applied := Applied{
		InvoiceID:          inv.ID,
		VoucherID:          v.ID,
		DiscountAmount:     amount,
		TotalAfterDiscount: remaining,
	}

	changed, err := s.repo.ApplyDiscount(ctx, applied)
	if errors.Is(err, ErrVoucherInUse) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("apply discount: %w", err)
	}

	// Paid between the read and the update.
	if !changed {
		return nil, ErrInvoicePaid
	}

	return &applied, nil
}

func (s *Service) Pay(ctx context.Context, invoiceID, clientID uuid.UUID) (*Invoice, error) {
	inv, err := s.Get(ctx, invoiceID, clientID)
	if err != nil {
		return nil, err
	}

	if inv.Status == StatusPaid {
		return nil, ErrInvoicePaid
	}

	paidAt := s.now()

	err = s.repo.MarkPaid(ctx, inv.ID, paidAt)
	if errors.Is(err, ErrVoucherAlreadyUsed) && inv.VoucherID != nil {
		// The voucher paid for another invoice first. Drop it so this one stays payable.
		if err := s.repo.ReleaseVoucher(ctx, inv.ID, *inv.VoucherID); err != nil {
			return nil, fmt.Errorf("release voucher: %w", err)
		}

		return nil, ErrVoucherReleased
	}

	if err != nil {
		return nil, err
	}

	inv.Status = StatusPaid
	inv.PaidAt = &paidAt

	return inv, nil
}
