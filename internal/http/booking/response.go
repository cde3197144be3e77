package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/booking"
)

type slotResponse struct {
	ID        uuid.UUID          `json:"id"`
	WalkerID  uuid.UUID          `json:"walker_id"`
	StartsAt  time.Time          `json:"starts_at"`
	EndsAt    time.Time          `json:"ends_at"`
	Kind      booking.SlotKind   `json:"kind"`
	Capacity  int                `json:"capacity"`
	Status    booking.SlotStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

type availabilityResponse struct {
	slotResponse
	Taken     int `json:"taken"`
	Remaining int `json:"remaining"`
}

type decisionResponse struct {
	Outcome   booking.ApprovalStatus `json:"outcome"`
	DecidedBy uuid.UUID              `json:"decided_by"`
	DecidedAt time.Time              `json:"decided_at"`
	Notes     string                 `json:"notes,omitempty"`
}

type bookingResponse struct {
	ID             uuid.UUID              `json:"id"`
	ClientID       uuid.UUID              `json:"client_id"`
	SlotID         *uuid.UUID             `json:"slot_id,omitempty"`
	StartsAt       time.Time              `json:"starts_at"`
	EndsAt         time.Time              `json:"ends_at"`
	ServiceType    booking.ServiceType    `json:"service_type"`
	Status         booking.Status         `json:"status"`
	ApprovalStatus booking.ApprovalStatus `json:"approval_status"`
	PetIDs         []uuid.UUID            `json:"pet_ids"`
	Notes          string                 `json:"notes,omitempty"`
	Decision       *decisionResponse      `json:"decision,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      *time.Time             `json:"updated_at,omitempty"`
}

func toSlotResponse(s *booking.Slot) slotResponse {
	return slotResponse{
		ID:        s.ID,
		WalkerID:  s.WalkerID,
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		Kind:      s.Kind,
		Capacity:  s.Capacity,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

func toAvailabilityList(slots []*booking.SlotAvailability) []availabilityResponse {
	resp := make([]availabilityResponse, len(slots))
	for i, sa := range slots {
		resp[i] = availabilityResponse{
			slotResponse: toSlotResponse(sa.Slot),
			Taken:        sa.Taken,
			Remaining:    sa.Remaining,
		}
	}

	return resp
}

func toBookingResponse(b *booking.Booking) bookingResponse {
	resp := bookingResponse{
		ID:             b.ID,
		ClientID:       b.ClientID,
		SlotID:         b.SlotID,
		StartsAt:       b.StartsAt,
		EndsAt:         b.EndsAt,
		ServiceType:    b.ServiceType,
		Status:         b.Status,
		ApprovalStatus: b.ApprovalStatus,
		PetIDs:         b.PetIDs,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if resp.PetIDs == nil {
		resp.PetIDs = []uuid.UUID{}
	}

	if d := b.Decision; d != nil {
		resp.Decision = &decisionResponse{
			Outcome:   d.Outcome,
			DecidedBy: d.DecidedBy,
			DecidedAt: d.DecidedAt,
			Notes:     d.Notes,
		}
	}

	return resp
}

func toBookingList(bookings []*booking.Booking) []bookingResponse {
	resp := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = toBookingResponse(b)
	}

	return resp
}
