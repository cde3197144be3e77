package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/booking"
	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	"github.com/MrJamesThe3rd/walkies/internal/http/respond"
)

// defaultListSpan bounds the slot listing when the caller gives no range.
const defaultListSpan = 14 * 24 * time.Hour

var errInvalidID = apperr.Validation("invalid id")

type Handler struct {
	svc *booking.Service
	now func() time.Time
}

func NewHandler(svc *booking.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

// SlotRoutes mounts under /slots.
func (h *Handler) SlotRoutes(r chi.Router) {
	r.Get("/", h.listSlots)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleWalker, auth.RoleAdmin))
		r.Post("/", h.createSlot)
		r.Post("/{id}/cancel", h.cancelSlot)
	})
}

// BookingRoutes mounts under /bookings.
func (h *Handler) BookingRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleClient))
	r.Post("/", h.create)
	r.Get("/", h.listOwn)
	r.Get("/{id}", h.getOwn)
}

// AdminRoutes mounts under /admin/bookings. Walkers may only mark walks completed.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.With(auth.RequireRole(auth.RoleAdmin, auth.RoleWalker)).Post("/{id}/complete", h.complete)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))
		r.Get("/pending", h.listPending)
		r.Post("/", h.schedule)
		r.Post("/{id}/approve", h.approve)
		r.Post("/{id}/reject", h.reject)
	})
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}

	return id, nil
}

func (h *Handler) listSlots(w http.ResponseWriter, r *http.Request) {
	from := h.now()
	to := from.Add(defaultListSpan)

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			respond.Error(w, r, apperr.Validation("from must be an RFC 3339 timestamp"))
			return
		}

		from = t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			respond.Error(w, r, apperr.Validation("to must be an RFC 3339 timestamp"))
			return
		}

		to = t
	}

	slots, err := h.svc.ListAvailableSlots(r.Context(), from, to)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toAvailabilityList(slots))
}

type createSlotRequest struct {
	WalkerID *uuid.UUID       `json:"walker_id,omitempty"`
	StartsAt time.Time        `json:"starts_at" validate:"required"`
	EndsAt   time.Time        `json:"ends_at" validate:"required"`
	Kind     booking.SlotKind `json:"kind" validate:"required,oneof=GROUP PRIVATE"`
	Capacity int              `json:"capacity" validate:"min=1,max=10"`
}

func (h *Handler) createSlot(w http.ResponseWriter, r *http.Request) {
	var req createSlotRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	id := auth.MustFromContext(r.Context())

	// Walkers always publish their own slots; admins name the walker.
	walkerID := id.UserID
	if id.Role == auth.RoleAdmin {
		if req.WalkerID == nil {
			respond.Error(w, r, apperr.Validation("walker_id is required"))
			return
		}

		walkerID = *req.WalkerID
	}

	slot, err := h.svc.CreateSlot(r.Context(), booking.CreateSlotParams{
		WalkerID: walkerID,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Kind:     req.Kind,
		Capacity: req.Capacity,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSlotResponse(slot))
}

func (h *Handler) cancelSlot(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.CancelSlot(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createBookingRequest struct {
	SlotID uuid.UUID   `json:"slot_id" validate:"required"`
	PetIDs []uuid.UUID `json:"pet_ids" validate:"required,min=1"`
	Notes  string      `json:"notes" validate:"max=1000"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	b, err := h.svc.CreateBooking(r.Context(), booking.CreateBookingParams{
		ClientID: auth.MustFromContext(r.Context()).UserID,
		SlotID:   req.SlotID,
		PetIDs:   req.PetIDs,
		Notes:    req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toBookingResponse(b))
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.ListClientBookings(r.Context(), auth.MustFromContext(r.Context()).UserID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBookingList(bookings))
}

func (h *Handler) getOwn(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if b.ClientID != auth.MustFromContext(r.Context()).UserID {
		respond.Error(w, r, booking.ErrBookingNotFound)
		return
	}

	respond.JSON(w, http.StatusOK, toBookingResponse(b))
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.ListPendingBookings(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBookingList(bookings))
}

type scheduleRequest struct {
	ClientID    uuid.UUID           `json:"client_id" validate:"required"`
	StartsAt    time.Time           `json:"starts_at" validate:"required"`
	EndsAt      time.Time           `json:"ends_at" validate:"required"`
	ServiceType booking.ServiceType `json:"service_type" validate:"required"`
	PetIDs      []uuid.UUID         `json:"pet_ids" validate:"required,min=1"`
	Notes       string              `json:"notes" validate:"max=1000"`
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	b, err := h.svc.ScheduleWalk(r.Context(), booking.ScheduleWalkParams{
		ClientID:    req.ClientID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		ServiceType: req.ServiceType,
		PetIDs:      req.PetIDs,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toBookingResponse(b))
}

type decisionRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.ApproveBooking)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.RejectBooking)
}

type decideFunc func(ctx context.Context, id, adminID uuid.UUID, notes string) error

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, fn decideFunc) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req decisionRequest
	if r.ContentLength != 0 {
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
	}

	if err := fn(r.Context(), id, auth.MustFromContext(r.Context()).UserID, req.Notes); err != nil {
		respond.Error(w, r, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBookingResponse(b))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.CompleteBooking(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
