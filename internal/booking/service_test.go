package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/booking"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func newSlot(startIn time.Duration, capacity int) *booking.Slot {
	start := now.Add(startIn)

	return &booking.Slot{
		ID:       uuid.New(),
		WalkerID: uuid.New(),
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
		Kind:     booking.SlotKindGroup,
		Capacity: capacity,
		Status:   booking.SlotStatusAvailable,
	}
}

func TestService_CreateBooking(t *testing.T) {
	clientID := uuid.New()
	petA, petB := uuid.New(), uuid.New()

	type testCase struct {
		name      string
		slot      *booking.Slot
		petIDs    []uuid.UUID
		setupMock func(tx *booking.MockBookingTx, slot *booking.Slot)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			slot:   newSlot(72*time.Hour, 3),
			petIDs: []uuid.UUID{petA, petB, petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
				tx.EXPECT().CountActiveBookings(gomock.Any(), slot.ID).Return(2, nil)
				tx.EXPECT().OwnedPets(gomock.Any(), clientID, []uuid.UUID{petA, petB}).Return([]uuid.UUID{petA, petB}, nil)
				tx.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *booking.Booking) error {
						b.ID = uuid.New()
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
		},
		{
			name:   "JustPastLeadTime",
			slot:   newSlot(48*time.Hour+time.Nanosecond, 1),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
				tx.EXPECT().CountActiveBookings(gomock.Any(), slot.ID).Return(0, nil)
				tx.EXPECT().OwnedPets(gomock.Any(), clientID, gomock.Any()).Return([]uuid.UUID{petA}, nil)
				tx.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
		},
		{
			name:   "ExactlyLeadTime",
			slot:   newSlot(48*time.Hour, 1),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
			},
			wantErr: booking.ErrLeadTime,
		},
		{
			name:   "SlotInThePast",
			slot:   newSlot(-time.Hour, 1),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
			},
			wantErr: booking.ErrLeadTime,
		},
		{
			name:   "SlotMissing",
			slot:   newSlot(72*time.Hour, 1),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(nil, booking.ErrSlotNotFound)
			},
			wantErr: booking.ErrSlotNotFound,
		},
		{
			name: "SlotCancelled",
			slot: func() *booking.Slot {
				s := newSlot(72*time.Hour, 1)
				s.Status = booking.SlotStatusCancelled
				return s
			}(),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
			},
			wantErr: booking.ErrSlotNotFound,
		},
		{
			name:   "FullyBooked",
			slot:   newSlot(72*time.Hour, 2),
			petIDs: []uuid.UUID{petA},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
				tx.EXPECT().CountActiveBookings(gomock.Any(), slot.ID).Return(2, nil)
			},
			wantErr: booking.ErrSlotFullyBooked,
		},
		{
			name:   "PetNotOwned",
			slot:   newSlot(72*time.Hour, 2),
			petIDs: []uuid.UUID{petA, petB},
			setupMock: func(tx *booking.MockBookingTx, slot *booking.Slot) {
				tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
				tx.EXPECT().CountActiveBookings(gomock.Any(), slot.ID).Return(0, nil)
				tx.EXPECT().OwnedPets(gomock.Any(), clientID, gomock.Any()).Return([]uuid.UUID{petA}, nil)
			},
			wantErr: booking.ErrPetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			tx := booking.NewMockBookingTx(ctrl)

			repo.EXPECT().BeginBooking(gomock.Any()).Return(tx, nil)
			tx.EXPECT().Rollback().Return(nil)
			tt.setupMock(tx, tt.slot)

			svc := booking.NewService(repo, booking.WithClock(fixedClock))
			got, err := svc.CreateBooking(context.Background(), booking.CreateBookingParams{
				ClientID: clientID,
				SlotID:   tt.slot.ID,
				PetIDs:   tt.petIDs,
				Notes:    "ring the bell",
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, booking.ApprovalPending, got.ApprovalStatus)
			assert.Equal(t, booking.StatusScheduled, got.Status)
			assert.Equal(t, booking.ServiceGroupWalk, got.ServiceType)
			assert.Equal(t, tt.slot.StartsAt, got.StartsAt)
			assert.Equal(t, &tt.slot.ID, got.SlotID)
			assert.Equal(t, "ring the bell", got.Notes)
		})
	}
}

func TestService_CreateBooking_NoPets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := booking.NewService(booking.NewMockRepository(ctrl))

	_, err := svc.CreateBooking(context.Background(), booking.CreateBookingParams{SlotID: uuid.New()})
	require.ErrorIs(t, err, booking.ErrNoPets)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestService_CreateBooking_CustomLeadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	tx := booking.NewMockBookingTx(ctrl)
	slot := newSlot(30*time.Hour, 1)

	repo.EXPECT().BeginBooking(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback().Return(nil)
	tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)

	svc := booking.NewService(repo, booking.WithClock(fixedClock), booking.WithLeadTime(36*time.Hour))

	_, err := svc.CreateBooking(context.Background(), booking.CreateBookingParams{
		SlotID: slot.ID,
		PetIDs: []uuid.UUID{uuid.New()},
	})
	require.ErrorIs(t, err, booking.ErrLeadTime)
	assert.Equal(t, apperr.KindPolicyViolation, apperr.KindOf(err))
}

func TestService_CreateBooking_CommitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	tx := booking.NewMockBookingTx(ctrl)
	slot := newSlot(72*time.Hour, 1)
	pet := uuid.New()

	repo.EXPECT().BeginBooking(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockSlot(gomock.Any(), slot.ID).Return(slot, nil)
	tx.EXPECT().CountActiveBookings(gomock.Any(), slot.ID).Return(0, nil)
	tx.EXPECT().OwnedPets(gomock.Any(), gomock.Any(), gomock.Any()).Return([]uuid.UUID{pet}, nil)
	tx.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(errors.New("connection reset"))
	tx.EXPECT().Rollback().Return(nil)

	svc := booking.NewService(repo, booking.WithClock(fixedClock))

	_, err := svc.CreateBooking(context.Background(), booking.CreateBookingParams{SlotID: slot.ID, PetIDs: []uuid.UUID{pet}})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestService_RejectBooking(t *testing.T) {
	bookingID, adminID := uuid.New(), uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *booking.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Pending",
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(&booking.Booking{ID: bookingID, ApprovalStatus: booking.ApprovalPending}, nil)
				m.EXPECT().Decide(gomock.Any(), booking.Decision{
					BookingID: bookingID,
					Outcome:   booking.ApprovalRejected,
					DecidedBy: adminID,
					DecidedAt: now,
					Notes:     "walker unavailable",
				}).Return(true, nil)
			},
		},
		{
			name: "AlreadyRejected",
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(&booking.Booking{ID: bookingID, ApprovalStatus: booking.ApprovalRejected}, nil)
			},
			wantErr: booking.ErrBookingNotPending,
		},
		{
			name: "AlreadyApproved",
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(&booking.Booking{ID: bookingID, ApprovalStatus: booking.ApprovalApproved}, nil)
			},
			wantErr: booking.ErrBookingNotPending,
		},
		{
			name: "DecidedConcurrently",
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().GetBooking(gomock.Any(), bookingID).
					Return(&booking.Booking{ID: bookingID, ApprovalStatus: booking.ApprovalPending}, nil)
				m.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: booking.ErrBookingNotPending,
		},
		{
			name: "NotFound",
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().GetBooking(gomock.Any(), bookingID).Return(nil, booking.ErrBookingNotFound)
			},
			wantErr: booking.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := booking.NewService(repo, booking.WithClock(fixedClock))
			err := svc.RejectBooking(context.Background(), bookingID, adminID, "walker unavailable")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_RejectBooking_InvalidStateKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().GetBooking(gomock.Any(), id).
		Return(&booking.Booking{ID: id, ApprovalStatus: booking.ApprovalRejected}, nil)

	err := booking.NewService(repo).RejectBooking(context.Background(), id, uuid.New(), "")
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestService_Decide_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := booking.NewService(booking.NewMockRepository(ctrl))

	err := svc.ApproveBooking(context.Background(), uuid.New(), uuid.Nil, "")
	assert.ErrorIs(t, err, booking.ErrDeciderRequired)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = svc.RejectBooking(context.Background(), uuid.New(), uuid.Nil, "")
	assert.ErrorIs(t, err, booking.ErrDeciderRequired)
}

func TestService_ApproveBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetBooking(gomock.Any(), id).
		Return(&booking.Booking{ID: id, ApprovalStatus: booking.ApprovalPending}, nil)
	repo.EXPECT().Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d booking.Decision) (bool, error) {
			assert.Equal(t, booking.ApprovalApproved, d.Outcome)
			return true, nil
		})

	err := booking.NewService(repo, booking.WithClock(fixedClock)).ApproveBooking(context.Background(), id, uuid.New(), "")
	assert.NoError(t, err)
}

func TestService_CompleteBooking(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		booking *booking.Booking
		changed bool
		wantErr error
	}{
		{
			name:    "Approved",
			booking: &booking.Booking{ID: id, Status: booking.StatusScheduled, ApprovalStatus: booking.ApprovalApproved},
			changed: true,
		},
		{
			name:    "StillPending",
			booking: &booking.Booking{ID: id, Status: booking.StatusScheduled, ApprovalStatus: booking.ApprovalPending},
			wantErr: booking.ErrBookingNotScheduled,
		},
		{
			name:    "Rejected",
			booking: &booking.Booking{ID: id, Status: booking.StatusCancelled, ApprovalStatus: booking.ApprovalRejected},
			wantErr: booking.ErrBookingNotScheduled,
		},
		{
			name:    "CompletedConcurrently",
			booking: &booking.Booking{ID: id, Status: booking.StatusScheduled, ApprovalStatus: booking.ApprovalApproved},
			changed: false,
			wantErr: booking.ErrBookingNotScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			repo.EXPECT().GetBooking(gomock.Any(), id).Return(tt.booking, nil)

			if tt.booking.Status == booking.StatusScheduled && tt.booking.ApprovalStatus == booking.ApprovalApproved {
				repo.EXPECT().Complete(gomock.Any(), id).Return(tt.changed, nil)
			}

			err := booking.NewService(repo).CompleteBooking(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ScheduleWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	tx := booking.NewMockBookingTx(ctrl)
	clientID, pet := uuid.New(), uuid.New()

	repo.EXPECT().BeginBooking(gomock.Any()).Return(tx, nil)
	tx.EXPECT().OwnedPets(gomock.Any(), clientID, []uuid.UUID{pet}).Return([]uuid.UUID{pet}, nil)
	tx.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := booking.NewService(repo, booking.WithClock(fixedClock))

	// Tomorrow is inside the client lead time, which does not apply to admins.
	got, err := svc.ScheduleWalk(context.Background(), booking.ScheduleWalkParams{
		ClientID:    clientID,
		StartsAt:    now.Add(2 * time.Hour),
		EndsAt:      now.Add(3 * time.Hour),
		ServiceType: booking.ServiceDropIn,
		PetIDs:      []uuid.UUID{pet},
	})
	require.NoError(t, err)
	assert.Nil(t, got.SlotID)
	assert.Equal(t, booking.ApprovalApproved, got.ApprovalStatus)
	assert.Equal(t, booking.StatusScheduled, got.Status)
}

func TestService_ScheduleWalk_Validation(t *testing.T) {
	pet := uuid.New()

	tests := []struct {
		name    string
		params  booking.ScheduleWalkParams
		wantErr error
	}{
		{
			name:    "NoPets",
			params:  booking.ScheduleWalkParams{StartsAt: now, EndsAt: now.Add(time.Hour), ServiceType: booking.ServiceDropIn},
			wantErr: booking.ErrNoPets,
		},
		{
			name:    "EndBeforeStart",
			params:  booking.ScheduleWalkParams{StartsAt: now, EndsAt: now, ServiceType: booking.ServiceDropIn, PetIDs: []uuid.UUID{pet}},
			wantErr: booking.ErrInvalidTimeRange,
		},
		{
			name:    "UnknownService",
			params:  booking.ScheduleWalkParams{StartsAt: now, EndsAt: now.Add(time.Hour), ServiceType: "GROOMING", PetIDs: []uuid.UUID{pet}},
			wantErr: booking.ErrInvalidService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := booking.NewService(booking.NewMockRepository(ctrl))
			_, err := svc.ScheduleWalk(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateSlot(t *testing.T) {
	start := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		params  booking.CreateSlotParams
		wantErr error
	}{
		{
			name:   "Valid",
			params: booking.CreateSlotParams{StartsAt: start, EndsAt: start.Add(time.Hour), Kind: booking.SlotKindGroup, Capacity: 6},
		},
		{
			name:    "EndNotAfterStart",
			params:  booking.CreateSlotParams{StartsAt: start, EndsAt: start, Kind: booking.SlotKindGroup, Capacity: 6},
			wantErr: booking.ErrInvalidTimeRange,
		},
		{
			name:    "ZeroCapacity",
			params:  booking.CreateSlotParams{StartsAt: start, EndsAt: start.Add(time.Hour), Kind: booking.SlotKindGroup, Capacity: 0},
			wantErr: booking.ErrInvalidCapacity,
		},
		{
			name:    "CapacityTooLarge",
			params:  booking.CreateSlotParams{StartsAt: start, EndsAt: start.Add(time.Hour), Kind: booking.SlotKindPrivate, Capacity: 11},
			wantErr: booking.ErrInvalidCapacity,
		},
		{
			name:    "UnknownKind",
			params:  booking.CreateSlotParams{StartsAt: start, EndsAt: start.Add(time.Hour), Kind: "SOLO", Capacity: 1},
			wantErr: booking.ErrInvalidSlotKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := booking.NewService(repo).CreateSlot(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, booking.SlotStatusAvailable, got.Status)
		})
	}
}

func TestService_CancelSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	svc := booking.NewService(repo)

	open := newSlot(72*time.Hour, 4)
	repo.EXPECT().GetSlot(gomock.Any(), open.ID).Return(open, nil)
	repo.EXPECT().CancelSlot(gomock.Any(), open.ID).Return(nil)
	assert.NoError(t, svc.CancelSlot(context.Background(), open.ID))

	cancelled := newSlot(72*time.Hour, 4)
	cancelled.Status = booking.SlotStatusCancelled
	repo.EXPECT().GetSlot(gomock.Any(), cancelled.ID).Return(cancelled, nil)
	assert.ErrorIs(t, svc.CancelSlot(context.Background(), cancelled.ID), booking.ErrSlotCancelled)
}

func TestService_ListAvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := booking.NewMockRepository(ctrl)
	from, to := now, now.Add(7*24*time.Hour)

	repo.EXPECT().ListAvailableSlots(gomock.Any(), from, to).Return([]*booking.SlotAvailability{
		{Slot: newSlot(72*time.Hour, 4), Taken: 1},
		{Slot: newSlot(96*time.Hour, 2), Taken: 2},
	}, nil)

	got, err := booking.NewService(repo).ListAvailableSlots(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Remaining)
	assert.Equal(t, 0, got[1].Remaining)

	_, err = booking.NewService(repo).ListAvailableSlots(context.Background(), to, from)
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
}

// memRepo is an in-memory Repository whose BookingTx holds a per-slot lock between
// LockSlot and Commit/Rollback, the same guarantee the Postgres store gets from FOR UPDATE.
type memRepo struct {
	booking.Repository

	mu       sync.Mutex
	slot     *booking.Slot
	slotLock sync.Mutex
	bookings []*booking.Booking
}

func (r *memRepo) BeginBooking(context.Context) (booking.BookingTx, error) {
	return &memTx{repo: r}, nil
}

type memTx struct {
	repo    *memRepo
	locked  bool
	pending *booking.Booking
}

func (tx *memTx) LockSlot(_ context.Context, id uuid.UUID) (*booking.Slot, error) {
	if id != tx.repo.slot.ID {
		return nil, booking.ErrSlotNotFound
	}

	tx.repo.slotLock.Lock()
	tx.locked = true

	return tx.repo.slot, nil
}

func (tx *memTx) CountActiveBookings(context.Context, uuid.UUID) (int, error) {
	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()

	n := 0
	for _, b := range tx.repo.bookings {
		if b.ApprovalStatus.HoldsCapacity() {
			n++
		}
	}

	return n, nil
}

func (tx *memTx) OwnedPets(_ context.Context, _ uuid.UUID, petIDs []uuid.UUID) ([]uuid.UUID, error) {
	return petIDs, nil
}

func (tx *memTx) CreateBooking(_ context.Context, b *booking.Booking) error {
	b.ID = uuid.New()
	tx.pending = b

	return nil
}

func (tx *memTx) Commit() error {
	tx.repo.mu.Lock()
	if tx.pending != nil {
		tx.repo.bookings = append(tx.repo.bookings, tx.pending)
	}
	tx.repo.mu.Unlock()

	tx.release()

	return nil
}

func (tx *memTx) Rollback() error {
	tx.release()
	return nil
}

func (tx *memTx) release() {
	if tx.locked {
		tx.locked = false
		tx.repo.slotLock.Unlock()
	}
}

func TestService_CreateBooking_ConcurrentRequestsNeverOverbook(t *testing.T) {
	const (
		capacity = 4
		clients  = 32
	)

	repo := &memRepo{slot: newSlot(72*time.Hour, capacity)}
	svc := booking.NewService(repo, booking.WithClock(fixedClock))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		full     int
	)

	for range clients {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.CreateBooking(context.Background(), booking.CreateBookingParams{
				ClientID: uuid.New(),
				SlotID:   repo.slot.ID,
				PetIDs:   []uuid.UUID{uuid.New()},
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				accepted++
			case errors.Is(err, booking.ErrSlotFullyBooked):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, capacity, accepted)
	assert.Equal(t, clients-capacity, full)
	assert.Len(t, repo.bookings, capacity)
}
