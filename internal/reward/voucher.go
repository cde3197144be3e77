package reward

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherKind string

const (
	VoucherInternal VoucherKind = "INTERNAL"
	VoucherExternal VoucherKind = "EXTERNAL"
)

type VoucherStatus string

const (
	VoucherActive VoucherStatus = "ACTIVE"
	VoucherUsed   VoucherStatus = "USED"
)

// Voucher is one campaign reward granted to one client for one window.
// (CampaignID, ClientID, WindowKey) is unique.
type Voucher struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	ClientID      uuid.UUID
	Code          string
	Kind          VoucherKind
	WindowKey     string
	Status        VoucherStatus
	UsedInvoiceID *uuid.UUID
	UsedAt        *time.Time
	IssuedAt      time.Time
}

func kindFor(r Redemption) VoucherKind {
	if r != nil && r.Mode() == RedemptionExternalLink {
		return VoucherExternal
	}

	return VoucherInternal
}

// EligibleClient is a client whose activity in a window met a campaign threshold.
type EligibleClient struct {
	ClientID  uuid.UUID
	FirstName string
	LastName  string
	Value     decimal.Decimal
}
