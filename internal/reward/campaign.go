package reward

import (
	"net/url"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of campaign.
type Type string

const (
	TypeLoyalty   Type = "LOYALTY"
	TypePromotion Type = "PROMOTION"
	TypeReferral  Type = "REFERRAL"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLoyalty, TypePromotion, TypeReferral:
		return true
	default:
		return false
	}
}

// Scope restricts which clients a campaign targets.
type Scope string

const (
	ScopeAllClients Scope = "ALL_CLIENTS"
	ScopeNewClients Scope = "NEW_CLIENTS"
)

// Metric is what a loyalty campaign measures per client.
type Metric string

const (
	MetricWalks Metric = "WALKS"
	MetricSpend Metric = "SPEND"
)

func (m Metric) Valid() bool {
	return m == MetricWalks || m == MetricSpend
}

// Campaign is a reward definition. Loyalty is set only for LOYALTY campaigns;
// Redemption is always set and is either InternalCode or ExternalLink.
type Campaign struct {
	ID         uuid.UUID
	Name       string
	Type       Type
	Scope      Scope
	Active     bool
	StartsAt   *time.Time
	EndsAt     *time.Time
	Loyalty    *LoyaltyRule
	Redemption Redemption
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Expired reports whether the campaign's validity window closed before now.
func (c *Campaign) Expired(now time.Time) bool {
	return c.EndsAt != nil && c.EndsAt.Before(now)
}

// LoyaltyRule configures the eligibility calculation of a loyalty campaign.
type LoyaltyRule struct {
	Metric     Metric
	Window     Granularity
	Threshold  decimal.Decimal
	CodePrefix string
}

// RedemptionMode tells how a voucher from the campaign is redeemed.
type RedemptionMode string

const (
	RedemptionInternalCode RedemptionMode = "INTERNAL_CODE"
	RedemptionExternalLink RedemptionMode = "EXTERNAL_LINK"
)

// Redemption is the mode-specific payload of a campaign.
type Redemption interface {
	Mode() RedemptionMode
	validate() error
}

// InternalCode vouchers are applied to invoices for a discount.
type InternalCode struct {
	Discount Discount
}

func (InternalCode) Mode() RedemptionMode { return RedemptionInternalCode }

// ExternalLink vouchers send the client to a partner offer.
type ExternalLink struct {
	CTAURL string
}

func (ExternalLink) Mode() RedemptionMode { return RedemptionExternalLink }

func (r InternalCode) validate() error {
	if !r.Discount.Value.IsPositive() {
		return ErrInvalidDiscount
	}

	switch r.Discount.Type {
	case DiscountFixed:
		return nil
	case DiscountPercent:
		if r.Discount.Value.GreaterThan(hundred) {
			return ErrInvalidDiscount
		}

		return nil
	default:
		return ErrInvalidDiscount
	}
}

func (r ExternalLink) validate() error {
	u, err := url.Parse(r.CTAURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidCTAURL
	}

	return nil
}

func (l *LoyaltyRule) validate() error {
	if !l.Metric.Valid() {
		return ErrInvalidMetric
	}

	if !l.Window.Valid() {
		return ErrInvalidWindow
	}

	if !l.Threshold.IsPositive() {
		return ErrInvalidThreshold
	}

	if !validPrefix(l.CodePrefix) {
		return ErrInvalidCodePrefix
	}

	return nil
}

func validPrefix(p string) bool {
	if p == "" || len(p) > 12 {
		return false
	}

	for _, r := range p {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
