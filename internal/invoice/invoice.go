package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

type Invoice struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	BookingID          *uuid.UUID
	Total              decimal.Decimal
	Status             Status
	VoucherID          *uuid.UUID
	DiscountAmount     decimal.Decimal
	TotalAfterDiscount decimal.Decimal
	DueAt              *time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Applied is the outcome of putting a voucher on an invoice.
type Applied struct {
	InvoiceID          uuid.UUID
	VoucherID          uuid.UUID
	DiscountAmount     decimal.Decimal
	TotalAfterDiscount decimal.Decimal
}
