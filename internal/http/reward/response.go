package reward

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

type loyaltyResponse struct {
	Metric     reward.Metric      `json:"metric"`
	Window     reward.Granularity `json:"window"`
	Threshold  decimal.Decimal    `json:"threshold"`
	CodePrefix string             `json:"code_prefix"`
}

type campaignResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Type           reward.Type           `json:"type"`
	Scope          reward.Scope          `json:"scope"`
	Active         bool                  `json:"active"`
	StartsAt       *time.Time            `json:"starts_at,omitempty"`
	EndsAt         *time.Time            `json:"ends_at,omitempty"`
	Loyalty        *loyaltyResponse      `json:"loyalty,omitempty"`
	RedemptionMode reward.RedemptionMode `json:"redemption_mode"`
	DiscountType   reward.DiscountType   `json:"discount_type,omitempty"`
	DiscountValue  *decimal.Decimal      `json:"discount_value,omitempty"`
	CTAURL         string                `json:"cta_url,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

type voucherResponse struct {
	ID            uuid.UUID            `json:"id"`
	CampaignID    uuid.UUID            `json:"campaign_id"`
	Code          string               `json:"code"`
	Kind          reward.VoucherKind   `json:"kind"`
	WindowKey     string               `json:"window_key"`
	Status        reward.VoucherStatus `json:"status"`
	UsedInvoiceID *uuid.UUID           `json:"used_invoice_id,omitempty"`
	UsedAt        *time.Time           `json:"used_at,omitempty"`
	IssuedAt      time.Time            `json:"issued_at"`
}

func toCampaignResponse(c *reward.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Scope:     c.Scope,
		Active:    c.Active,
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
		CreatedAt: c.CreatedAt,
	}

	if l := c.Loyalty; l != nil {
		resp.Loyalty = &loyaltyResponse{
			Metric:     l.Metric,
			Window:     l.Window,
			Threshold:  l.Threshold,
			CodePrefix: l.CodePrefix,
		}
	}

	switch r := c.Redemption.(type) {
	case reward.InternalCode:
		resp.RedemptionMode = r.Mode()
		resp.DiscountType = r.Discount.Type
		resp.DiscountValue = func() *decimal.Decimal { v := r.Discount.Value; return &v }()
	case reward.ExternalLink:
		resp.RedemptionMode = r.Mode()
		resp.CTAURL = r.CTAURL
	}

	return resp
}

func toVoucherResponse(v *reward.Voucher) voucherResponse {
	return voucherResponse{
		ID:            v.ID,
		CampaignID:    v.CampaignID,
		Code:          v.Code,
		Kind:          v.Kind,
		WindowKey:     v.WindowKey,
		Status:        v.Status,
		UsedInvoiceID: v.UsedInvoiceID,
		UsedAt:        v.UsedAt,
		IssuedAt:      v.IssuedAt,
	}
}
