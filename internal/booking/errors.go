package booking

import "github.com/MrJamesThe3rd/walkies/internal/apperr"

var (
	ErrSlotNotFound        = apperr.NotFound("slot not found")
	ErrSlotCancelled       = apperr.InvalidState("slot is already cancelled")
	ErrLeadTime            = apperr.PolicyViolation("lead time violation: slot starts too soon to book")
	ErrSlotFullyBooked     = apperr.PolicyViolation("slot is fully booked")
	ErrPetNotFound         = apperr.NotFound("pet not found")
	ErrBookingNotFound     = apperr.NotFound("booking not found")
	ErrBookingNotPending   = apperr.InvalidState("booking is not pending approval")
	ErrBookingNotScheduled = apperr.InvalidState("booking is not an approved scheduled walk")
	ErrConcurrentBooking   = apperr.InvalidState("slot is being booked by another request, try again")

	ErrNoPets           = apperr.Validation("at least one pet is required")
	ErrInvalidTimeRange = apperr.Validation("end time must be after start time")
	ErrInvalidCapacity  = apperr.Validation("capacity must be between 1 and 10")
	ErrInvalidSlotKind  = apperr.Validation("slot kind must be GROUP or PRIVATE")
	ErrInvalidService   = apperr.Validation("unknown service type")
	ErrDeciderRequired  = apperr.Validation("approval decisions need the deciding admin's id")
)
