package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	"github.com/MrJamesThe3rd/walkies/internal/http/respond"
	"github.com/MrJamesThe3rd/walkies/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts under /invoices for clients.
func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleClient))
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/voucher", h.applyVoucher)
	r.Post("/{id}/pay", h.pay)
}

// AdminRoutes mounts under /admin/invoices.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleAdmin))
	r.Post("/", h.create)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id")
	}

	return id, nil
}

type createInvoiceRequest struct {
	ClientID  uuid.UUID       `json:"client_id" validate:"required"`
	BookingID *uuid.UUID      `json:"booking_id,omitempty"`
	Total     decimal.Decimal `json:"total"`
	DueAt     *time.Time      `json:"due_at,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.CreateInvoice(r.Context(), invoice.CreateInvoiceParams{
		ClientID:  req.ClientID,
		BookingID: req.BookingID,
		Total:     req.Total,
		DueAt:     req.DueAt,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.ListClientInvoices(r.Context(), auth.MustFromContext(r.Context()).UserID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id, auth.MustFromContext(r.Context()).UserID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

type applyVoucherRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

type appliedResponse struct {
	InvoiceID          uuid.UUID       `json:"invoice_id"`
	VoucherID          uuid.UUID       `json:"voucher_id"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
}

func (h *Handler) applyVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req applyVoucherRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	applied, err := h.svc.ApplyVoucher(r.Context(), id, auth.MustFromContext(r.Context()).UserID, req.Code)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, appliedResponse{
		InvoiceID:          applied.InvoiceID,
		VoucherID:          applied.VoucherID,
		DiscountAmount:     applied.DiscountAmount,
		TotalAfterDiscount: applied.TotalAfterDiscount,
	})
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Pay(r.Context(), id, auth.MustFromContext(r.Context()).UserID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}
