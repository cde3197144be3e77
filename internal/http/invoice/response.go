package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/invoice"
)

type invoiceResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ClientID           uuid.UUID       `json:"client_id"`
	BookingID          *uuid.UUID      `json:"booking_id,omitempty"`
	Total              decimal.Decimal `json:"total"`
	Status             invoice.Status  `json:"status"`
	VoucherID          *uuid.UUID      `json:"voucher_id,omitempty"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
	DueAt              *time.Time      `json:"due_at,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:                 inv.ID,
		ClientID:           inv.ClientID,
		BookingID:          inv.BookingID,
		Total:              inv.Total,
		Status:             inv.Status,
		VoucherID:          inv.VoucherID,
		DiscountAmount:     inv.DiscountAmount,
		TotalAfterDiscount: inv.TotalAfterDiscount,
		DueAt:              inv.DueAt,
		PaidAt:             inv.PaidAt,
		CreatedAt:          inv.CreatedAt,
	}
}
