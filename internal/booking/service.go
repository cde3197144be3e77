package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=booking
type Repository interface {
	CreateSlot(ctx context.Context, slot *Slot) error
	GetSlot(ctx context.Context, id uuid.UUID) (*Slot, error)
	CancelSlot(ctx context.Context, id uuid.UUID) error
	ListAvailableSlots(ctx context.Context, from, to time.Time) ([]*SlotAvailability, error)

	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]*Booking, error)
	ListPendingBookings(ctx context.Context) ([]*Booking, error)
	// Decide applies d only while the booking is still pending. It reports whether a row changed.
	Decide(ctx context.Context, d Decision) (bool, error)
	// Complete marks an approved scheduled booking completed. It reports whether a row changed.
	Complete(ctx context.Context, id uuid.UUID) (bool, error)

	BeginBooking(ctx context.Context) (BookingTx, error)
}

// BookingTx is a unit of work for creating one booking with its pet links.
type BookingTx interface {
	// LockSlot loads the slot and holds a row lock on it until the transaction ends.
	LockSlot(ctx context.Context, slotID uuid.UUID) (*Slot, error)
	CountActiveBookings(ctx context.Context, slotID uuid.UUID) (int, error)
	OwnedPets(ctx context.Context, clientID uuid.UUID, petIDs []uuid.UUID) ([]uuid.UUID, error)
	CreateBooking(ctx context.Context, b *Booking) error
	Commit() error
	Rollback() error
}

const DefaultLeadTime = 48 * time.Hour

type Service struct {
	repo     Repository
	leadTime time.Duration
	now      func() time.Time
}

type Option func(*Service)

// WithLeadTime overrides the minimum gap between booking and slot start.
func WithLeadTime(d time.Duration) Option {
	return func(s *Service) { s.leadTime = d }
}

// WithClock replaces the server clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		leadTime: DefaultLeadTime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateSlotParams struct {
	WalkerID uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Kind     SlotKind
	Capacity int
}

func (s *Service) CreateSlot(ctx context.Context, params CreateSlotParams) (*Slot, error) {
	if !params.EndsAt.After(params.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	if params.Capacity < MinCapacity || params.Capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}

	if !params.Kind.Valid() {
		return nil, ErrInvalidSlotKind
	}

	slot := &Slot{
		WalkerID: params.WalkerID,
		StartsAt: params.StartsAt,
		EndsAt:   params.EndsAt,
		Kind:     params.Kind,
		Capacity: params.Capacity,
		Status:   SlotStatusAvailable,
	}
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *Service) CancelSlot(ctx context.Context, id uuid.UUID) error {
	slot, err := s.repo.GetSlot(ctx, id)
	if err != nil {
		return err
	}

	if slot.Status == SlotStatusCancelled {
		return ErrSlotCancelled
	}

	return s.repo.CancelSlot(ctx, id)
}

func (s *Service) ListAvailableSlots(ctx context.Context, from, to time.Time) ([]*SlotAvailability, error) {
	if !to.After(from) {
		return nil, ErrInvalidTimeRange
	}

	slots, err := s.repo.ListAvailableSlots(ctx, from, to)
	if err != nil {
		return nil, err
	}

	for _, sa := range slots {
		sa.Remaining = sa.Slot.Remaining(sa.Taken)
	}

	return slots, nil
}

type CreateBookingParams struct {
	ClientID uuid.UUID
	SlotID   uuid.UUID
	PetIDs   []uuid.UUID
	Notes    string
}

// CreateBooking claims one place in a slot for the client's pets. The slot row stays
// locked from the availability checks until the booking is committed, so concurrent
// requests for the same slot are serialized and capacity cannot be exceeded.
func (s *Service) CreateBooking(ctx context.Context, params CreateBookingParams) (*Booking, error) {
	petIDs := uniqueIDs(params.PetIDs)
	if len(petIDs) == 0 {
		return nil, ErrNoPets
	}

	btx, err := s.repo.BeginBooking(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer btx.Rollback()

	slot, err := btx.LockSlot(ctx, params.SlotID)
	if err != nil {
		return nil, err
	}

	if slot.Status != SlotStatusAvailable {
		return nil, ErrSlotNotFound
	}

	if !slot.StartsAt.After(s.now().Add(s.leadTime)) {
		return nil, ErrLeadTime
	}

	taken, err := btx.CountActiveBookings(ctx, slot.ID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	if slot.Remaining(taken) < 1 {
		return nil, ErrSlotFullyBooked
	}

	if err := checkOwnership(ctx, btx, params.ClientID, petIDs); err != nil {
		return nil, err
	}

	b := &Booking{
		ClientID:       params.ClientID,
		SlotID:         &slot.ID,
		StartsAt:       slot.StartsAt,
		EndsAt:         slot.EndsAt,
		ServiceType:    serviceForSlot(slot.Kind),
		Status:         StatusScheduled,
		ApprovalStatus: ApprovalPending,
		PetIDs:         petIDs,
		Notes:          params.Notes,
	}
	if err := btx.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	return b, nil
}

type ScheduleWalkParams struct {
	ClientID    uuid.UUID
	StartsAt    time.Time
	EndsAt      time.Time
	ServiceType ServiceType
	PetIDs      []uuid.UUID
	Notes       string
}

// ScheduleWalk books a walk directly on behalf of a client. It skips the slot,
// lead time and approval gates.
func (s *Service) ScheduleWalk(ctx context.Context, params ScheduleWalkParams) (*Booking, error) {
	petIDs := uniqueIDs(params.PetIDs)
	if len(petIDs) == 0 {
		return nil, ErrNoPets
	}

	if !params.EndsAt.After(params.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	if !params.ServiceType.Valid() {
		return nil, ErrInvalidService
	}

	btx, err := s.repo.BeginBooking(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer btx.Rollback()

	if err := checkOwnership(ctx, btx, params.ClientID, petIDs); err != nil {
		return nil, err
	}

	b := &Booking{
		ClientID:       params.ClientID,
		StartsAt:       params.StartsAt,
		EndsAt:         params.EndsAt,
		ServiceType:    params.ServiceType,
		Status:         StatusScheduled,
		ApprovalStatus: ApprovalApproved,
		PetIDs:         petIDs,
		Notes:          params.Notes,
	}
	if err := btx.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	return b, nil
}

// RejectBooking moves a pending booking to REJECTED and cancels it. The transition is one-way.
func (s *Service) RejectBooking(ctx context.Context, id, adminID uuid.UUID, notes string) error {
	return s.decide(ctx, id, adminID, ApprovalRejected, notes)
}

func (s *Service) ApproveBooking(ctx context.Context, id, adminID uuid.UUID, notes string) error {
	return s.decide(ctx, id, adminID, ApprovalApproved, notes)
}

func (s *Service) decide(ctx context.Context, id, adminID uuid.UUID, outcome ApprovalStatus, notes string) error {
	if adminID == uuid.Nil {
		return ErrDeciderRequired
	}

	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if b.ApprovalStatus != ApprovalPending {
		return ErrBookingNotPending
	}

	changed, err := s.repo.Decide(ctx, Decision{
		BookingID: id,
		Outcome:   outcome,
		DecidedBy: adminID,
		DecidedAt: s.now(),
		Notes:     notes,
	})
	if err != nil {
		return err
	}

	// Someone else decided between the read and the update.
	if !changed {
		return ErrBookingNotPending
	}

	return nil
}

func (s *Service) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if b.Status != StatusScheduled || b.ApprovalStatus != ApprovalApproved {
		return ErrBookingNotScheduled
	}

	changed, err := s.repo.Complete(ctx, id)
	if err != nil {
		return err
	}

	if !changed {
		return ErrBookingNotScheduled
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *Service) ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]*Booking, error) {
	return s.repo.ListClientBookings(ctx, clientID)
}

func (s *Service) ListPendingBookings(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListPendingBookings(ctx)
}

func checkOwnership(ctx context.Context, btx BookingTx, clientID uuid.UUID, petIDs []uuid.UUID) error {
	owned, err := btx.OwnedPets(ctx, clientID, petIDs)
	if err != nil {
		return fmt.Errorf("check pets: %w", err)
	}

	if len(owned) != len(petIDs) {
		return ErrPetNotFound
	}

	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
