package invoice

import "github.com/MrJamesThe3rd/walkies/internal/apperr"

var (
	ErrInvoiceNotFound    = apperr.NotFound("invoice not found")
	ErrInvoicePaid        = apperr.InvalidState("invoice already paid")
	ErrVoucherNotUsable   = apperr.InvalidState("voucher is invalid or inactive")
	ErrVoucherAlreadyUsed = apperr.InvalidState("voucher already used")
	ErrVoucherInUse       = apperr.InvalidState("voucher is already applied to another unpaid invoice")
	ErrVoucherReleased    = apperr.InvalidState("voucher was used on another invoice and has been removed, pay again for the full amount")
	ErrVoucherExpired     = apperr.PolicyViolation("voucher expired")

	ErrInvalidTotal = apperr.Validation("invoice total must be greater than zero")
	ErrCodeRequired = apperr.Validation("voucher code is required")
)
