package reward

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	"github.com/MrJamesThe3rd/walkies/internal/http/respond"
	"github.com/MrJamesThe3rd/walkies/internal/reward"
)

type Handler struct {
	svc *reward.Service
}

func NewHandler(svc *reward.Service) *Handler {
	return &Handler{svc: svc}
}

// AdminRoutes mounts under /admin/campaigns.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleAdmin))
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}/activate", h.activate)
	r.Post("/{id}/deactivate", h.deactivate)
	r.Post("/{id}/run", h.run)
}

// VoucherRoutes mounts under /vouchers.
func (h *Handler) VoucherRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleClient))
	r.Get("/", h.listVouchers)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id")
	}

	return id, nil
}

type loyaltyRequest struct {
	Metric     reward.Metric      `json:"metric" validate:"required,oneof=WALKS SPEND"`
	Window     reward.Granularity `json:"window" validate:"required,oneof=MONTH QUARTER SIX_MONTH TWELVE_MONTH"`
	Threshold  decimal.Decimal    `json:"threshold"`
	CodePrefix string             `json:"code_prefix" validate:"required,max=12"`
}

type createCampaignRequest struct {
	Name           string                `json:"name" validate:"required,max=200"`
	Type           reward.Type           `json:"type" validate:"required"`
	Scope          reward.Scope          `json:"scope"`
	StartsAt       *time.Time            `json:"starts_at,omitempty"`
	EndsAt         *time.Time            `json:"ends_at,omitempty"`
	Loyalty        *loyaltyRequest       `json:"loyalty,omitempty"`
	RedemptionMode reward.RedemptionMode `json:"redemption_mode" validate:"required,oneof=INTERNAL_CODE EXTERNAL_LINK"`
	DiscountType   reward.DiscountType   `json:"discount_type,omitempty"`
	DiscountValue  decimal.Decimal       `json:"discount_value"`
	CTAURL         string                `json:"cta_url,omitempty"`
}

func (req createCampaignRequest) redemption() reward.Redemption {
	if req.RedemptionMode == reward.RedemptionExternalLink {
		return reward.ExternalLink{CTAURL: req.CTAURL}
	}

	return reward.InternalCode{Discount: reward.Discount{Type: req.DiscountType, Value: req.DiscountValue}}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := reward.CreateCampaignParams{
		Name:       req.Name,
		Type:       req.Type,
		Scope:      req.Scope,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Redemption: req.redemption(),
	}
	if l := req.Loyalty; l != nil {
		params.Loyalty = &reward.LoyaltyRule{
			Metric:     l.Metric,
			Window:     l.Window,
			Threshold:  l.Threshold,
			CodePrefix: l.CodePrefix,
		}
	}

	c, err := h.svc.CreateCampaign(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]campaignResponse, len(campaigns))
	for i, c := range campaigns {
		resp[i] = toCampaignResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.ActivateCampaign(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeactivateCampaign(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type runResponse struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	WindowKey     string    `json:"window_key"`
	EligibleCount int       `json:"eligible_count"`
	IssuedCount   int       `json:"issued_count"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.svc.RunLoyaltyCalculation(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	slog.Info("loyalty calculation finished",
		"campaign_id", res.CampaignID, "window", res.WindowKey, "eligible", res.Eligible, "issued", res.Issued)

	respond.JSON(w, http.StatusOK, runResponse{
		CampaignID:    res.CampaignID,
		WindowKey:     res.WindowKey,
		EligibleCount: res.Eligible,
		IssuedCount:   res.Issued,
	})
}

func (h *Handler) listVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.svc.ListClientVouchers(r.Context(), auth.MustFromContext(r.Context()).UserID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]voucherResponse, len(vouchers))
	for i, v := range vouchers {
		resp[i] = toVoucherResponse(v)
	}

	respond.JSON(w, http.StatusOK, resp)
}
