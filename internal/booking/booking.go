package booking

import (
	"time"

	"github.com/google/uuid"
)

// SlotKind is the kind of walk offered in a slot.
type SlotKind string

const (
	SlotKindGroup   SlotKind = "GROUP"
	SlotKindPrivate SlotKind = "PRIVATE"
)

func (k SlotKind) Valid() bool {
	return k == SlotKindGroup || k == SlotKindPrivate
}

// SlotStatus is the lifecycle state of a walk slot. Slots are never deleted.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusCancelled SlotStatus = "CANCELLED"
)

const (
	MinCapacity = 1
	MaxCapacity = 10
)

// Slot is a bookable walk window run by one walker.
type Slot struct {
	ID        uuid.UUID
	WalkerID  uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Kind      SlotKind
	Capacity  int
	Status    SlotStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Remaining returns the free places left given the number of bookings holding one.
func (s *Slot) Remaining(taken int) int {
	return max(s.Capacity-taken, 0)
}

// SlotAvailability is a slot together with its derived remaining capacity.
type SlotAvailability struct {
	Slot      *Slot
	Taken     int
	Remaining int
}

// Status is the scheduling state of a booking.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ApprovalStatus is the admin approval state of a booking.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING_APPROVAL"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// HoldsCapacity reports whether a booking in this state occupies a place in its slot.
func (a ApprovalStatus) HoldsCapacity() bool {
	return a == ApprovalPending || a == ApprovalApproved
}

// ServiceType describes what was booked.
type ServiceType string

const (
	ServiceGroupWalk   ServiceType = "GROUP_WALK"
	ServicePrivateWalk ServiceType = "PRIVATE_WALK"
	ServiceDropIn      ServiceType = "DROP_IN"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceGroupWalk, ServicePrivateWalk, ServiceDropIn:
		return true
	default:
		return false
	}
}

func serviceForSlot(k SlotKind) ServiceType {
	if k == SlotKindPrivate {
		return ServicePrivateWalk
	}

	return ServiceGroupWalk
}

// Booking is a client's claim on a slot, or an ad-hoc walk scheduled by an admin.
type Booking struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	SlotID         *uuid.UUID
	StartsAt       time.Time
	EndsAt         time.Time
	ServiceType    ServiceType
	Status         Status
	ApprovalStatus ApprovalStatus
	PetIDs         []uuid.UUID
	Notes          string
	Decision       *Decision
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Decision records an admin approving or rejecting a pending booking.
type Decision struct {
	BookingID uuid.UUID
	Outcome   ApprovalStatus
	DecidedBy uuid.UUID
	DecidedAt time.Time
	Notes     string
}
