package reward

import "github.com/MrJamesThe3rd/walkies/internal/apperr"

var (
	ErrCampaignNotFound     = apperr.NotFound("campaign not found")
	ErrVoucherNotFound      = apperr.NotFound("voucher not found")
	ErrNotLoyalty           = apperr.InvalidState("campaign is not a loyalty campaign")
	ErrCampaignNotActive    = apperr.InvalidState("campaign is not active")
	ErrCampaignEnded        = apperr.InvalidState("campaign has ended")
	ErrLoyaltyAlreadyActive = apperr.PolicyViolation("only one active loyalty campaign allowed")

	ErrNameRequired       = apperr.Validation("campaign name is required")
	ErrInvalidType        = apperr.Validation("campaign type must be LOYALTY, PROMOTION or REFERRAL")
	ErrInvalidScope       = apperr.Validation("campaign scope must be ALL_CLIENTS or NEW_CLIENTS")
	ErrInvalidPeriod      = apperr.Validation("campaign end must be after its start")
	ErrLoyaltyRequired    = apperr.Validation("loyalty campaigns need a metric, window, threshold and code prefix")
	ErrLoyaltyNotAllowed  = apperr.Validation("only loyalty campaigns take a loyalty rule")
	ErrInvalidMetric      = apperr.Validation("metric must be WALKS or SPEND")
	ErrInvalidWindow      = apperr.Validation("window must be MONTH, QUARTER, SIX_MONTH or TWELVE_MONTH")
	ErrInvalidThreshold   = apperr.Validation("threshold must be greater than zero")
	ErrInvalidCodePrefix  = apperr.Validation("code prefix must be 1 to 12 letters or digits")
	ErrRedemptionRequired = apperr.Validation("redemption mode is required")
	ErrInvalidDiscount    = apperr.Validation("discount must be FIXED or PERCENT with a positive value, at most 100 percent")
	ErrInvalidCTAURL      = apperr.Validation("cta url must be an absolute http or https url")
)
