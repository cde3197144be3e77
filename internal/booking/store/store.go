package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/apperr"
	"github.com/MrJamesThe3rd/walkies/internal/booking"
	"github.com/MrJamesThe3rd/walkies/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectSlotColumns = `id, walker_id, starts_at, ends_at, kind, capacity, status, created_at, updated_at`

func scanSlot(s scanner, extra ...any) (*booking.Slot, error) {
	var slot booking.Slot

	var kind, status string

	dest := []any{
		&slot.ID, &slot.WalkerID, &slot.StartsAt, &slot.EndsAt, &kind, &slot.Capacity, &status,
		&slot.CreatedAt, &slot.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	slot.Kind = booking.SlotKind(kind)
	slot.Status = booking.SlotStatus(status)

	return &slot, nil
}

const selectBookingColumns = `
	id, client_id, slot_id, starts_at, ends_at, service_type, status, booking_status, notes,
	decided_at, decided_by, decision_notes, created_at, updated_at
`

// scanBooking reads a booking row. Pet links are loaded separately by loadPets.
func scanBooking(s scanner) (*booking.Booking, error) {
	var b booking.Booking

	var serviceType, status, approval string

	var decidedAt sql.NullTime

	var decidedBy *uuid.UUID

	var decisionNotes sql.NullString

	if err := s.Scan(
		&b.ID, &b.ClientID, &b.SlotID, &b.StartsAt, &b.EndsAt, &serviceType, &status, &approval, &b.Notes,
		&decidedAt, &decidedBy, &decisionNotes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.ServiceType = booking.ServiceType(serviceType)
	b.Status = booking.Status(status)
	b.ApprovalStatus = booking.ApprovalStatus(approval)

	if decidedAt.Valid && decidedBy != nil {
		b.Decision = &booking.Decision{
			BookingID: b.ID,
			Outcome:   b.ApprovalStatus,
			DecidedBy: *decidedBy,
			DecidedAt: decidedAt.Time,
			Notes:     decisionNotes.String,
		}
	}

	return &b, nil
}

func (s *Store) CreateSlot(ctx context.Context, slot *booking.Slot) error {
	query := `
		INSERT INTO walk_slots (walker_id, starts_at, ends_at, kind, capacity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		slot.WalkerID,
		slot.StartsAt,
		slot.EndsAt,
		slot.Kind,
		slot.Capacity,
		slot.Status,
	).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		return apperr.Storage("creating slot", err)
	}

	return nil
}

func (s *Store) GetSlot(ctx context.Context, id uuid.UUID) (*booking.Slot, error) {
	query := `SELECT ` + selectSlotColumns + ` FROM walk_slots WHERE id = $1`

	slot, err := scanSlot(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrSlotNotFound
		}

		return nil, apperr.Storage("getting slot", err)
	}

	return slot, nil
}

func (s *Store) CancelSlot(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE walk_slots
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := s.db.ExecContext(ctx, query, booking.SlotStatusCancelled, id); err != nil {
		return apperr.Storage("cancelling slot", err)
	}

	return nil
}

func (s *Store) ListAvailableSlots(ctx context.Context, from, to time.Time) ([]*booking.SlotAvailability, error) {
	query := `
		SELECT s.id, s.walker_id, s.starts_at, s.ends_at, s.kind, s.capacity, s.status, s.created_at, s.updated_at,
			COUNT(b.id) FILTER (WHERE b.booking_status IN ($3, $4)) AS taken
		FROM walk_slots s
		LEFT JOIN bookings b ON b.slot_id = s.id
		WHERE s.status = $5 AND s.starts_at >= $1 AND s.starts_at < $2
		GROUP BY s.id
		ORDER BY s.starts_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query,
		from, to, booking.ApprovalPending, booking.ApprovalApproved, booking.SlotStatusAvailable)
	if err != nil {
		return nil, apperr.Storage("listing slots", err)
	}
	defer rows.Close()

	var out []*booking.SlotAvailability

	for rows.Next() {
		var taken int

		slot, err := scanSlot(rows, &taken)
		if err != nil {
			return nil, apperr.Storage("scanning slot", err)
		}

		out = append(out, &booking.SlotAvailability{Slot: slot, Taken: taken})
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating slot rows", err)
	}

	return out, nil
}

func (s *Store) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + selectBookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}

		return nil, apperr.Storage("getting booking", err)
	}

	if err := loadPets(ctx, s.db, []*booking.Booking{b}); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Store) ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]*booking.Booking, error) {
	query := `SELECT ` + selectBookingColumns + `
		FROM bookings
		WHERE client_id = $1
		ORDER BY starts_at DESC`

	return s.listBookings(ctx, query, clientID)
}

func (s *Store) ListPendingBookings(ctx context.Context) ([]*booking.Booking, error) {
	query := `SELECT ` + selectBookingColumns + `
		FROM bookings
		WHERE booking_status = $1
		ORDER BY starts_at ASC`

	return s.listBookings(ctx, query, booking.ApprovalPending)
}

func (s *Store) listBookings(ctx context.Context, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage("listing bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, apperr.Storage("scanning booking", err)
		}

		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating booking rows", err)
	}

	if err := loadPets(ctx, s.db, out); err != nil {
		return nil, err
	}

	return out, nil
}

// loadPets fills PetIDs for the given bookings with one query.
func loadPets(ctx context.Context, q querier, bookings []*booking.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*booking.Booking, len(bookings))
	ids := make([]string, 0, len(bookings))

	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID.String())
	}

	rows, err := q.QueryContext(ctx,
		`SELECT booking_id, pet_id FROM booking_pets WHERE booking_id = ANY($1::uuid[]) ORDER BY pet_id`, ids)
	if err != nil {
		return apperr.Storage("loading booking pets", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID, petID uuid.UUID
		if err := rows.Scan(&bookingID, &petID); err != nil {
			return apperr.Storage("scanning booking pet", err)
		}

		if b, ok := byID[bookingID]; ok {
			b.PetIDs = append(b.PetIDs, petID)
		}
	}

	if err := rows.Err(); err != nil {
		return apperr.Storage("iterating booking pet rows", err)
	}

	return nil
}

// Decide only touches bookings still pending approval, so two admins deciding at once
// cannot both succeed.
func (s *Store) Decide(ctx context.Context, d booking.Decision) (bool, error) {
	status := booking.StatusScheduled
	if d.Outcome == booking.ApprovalRejected {
		status = booking.StatusCancelled
	}

	query := `
		UPDATE bookings
		SET booking_status = $1, status = $2, decided_at = $3, decided_by = $4, decision_notes = $5, updated_at = NOW()
		WHERE id = $6 AND booking_status = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		d.Outcome, status, d.DecidedAt, d.DecidedBy, d.Notes, d.BookingID, booking.ApprovalPending)
	if err != nil {
		return false, apperr.Storage("recording booking decision", err)
	}

	return affected(res)
}

func (s *Store) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND booking_status = $4
	`

	res, err := s.db.ExecContext(ctx, query,
		booking.StatusCompleted, id, booking.StatusScheduled, booking.ApprovalApproved)
	if err != nil {
		return false, apperr.Storage("completing booking", err)
	}

	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperr.Storage("reading affected rows", err)
	}

	return n > 0, nil
}

type bookingTx struct {
	tx *sql.Tx
}

func (s *Store) BeginBooking(ctx context.Context) (booking.BookingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Storage("beginning booking tx", err)
	}

	return &bookingTx{tx: dbTx}, nil
}

func (btx *bookingTx) Commit() error {
	if err := btx.tx.Commit(); err != nil {
		return txError("committing booking", err)
	}

	return nil
}

// txError reports lock conflicts inside the booking transaction as retryable.
func txError(op string, err error) error {
	if database.IsConflict(err) {
		return booking.ErrConcurrentBooking
	}

	return apperr.Storage(op, err)
}

func (btx *bookingTx) Rollback() error { return btx.tx.Rollback() }

func (btx *bookingTx) LockSlot(ctx context.Context, slotID uuid.UUID) (*booking.Slot, error) {
	query := `SELECT ` + selectSlotColumns + ` FROM walk_slots WHERE id = $1 FOR UPDATE`

	slot, err := scanSlot(btx.tx.QueryRowContext(ctx, query, slotID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrSlotNotFound
		}

		return nil, txError("locking slot", err)
	}

	return slot, nil
}

func (btx *bookingTx) CountActiveBookings(ctx context.Context, slotID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE slot_id = $1 AND booking_status IN ($2, $3)`

	var n int
	if err := btx.tx.QueryRowContext(ctx, query, slotID, booking.ApprovalPending, booking.ApprovalApproved).Scan(&n); err != nil {
		return 0, apperr.Storage("counting slot bookings", err)
	}

	return n, nil
}

func (btx *bookingTx) OwnedPets(ctx context.Context, clientID uuid.UUID, petIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]string, len(petIDs))
	for i, id := range petIDs {
		ids[i] = id.String()
	}

	rows, err := btx.tx.QueryContext(ctx,
		`SELECT id FROM pets WHERE client_id = $1 AND id = ANY($2::uuid[])`, clientID, ids)
	if err != nil {
		return nil, apperr.Storage("checking pet ownership", err)
	}
	defer rows.Close()

	var owned []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Storage("scanning pet", err)
		}

		owned = append(owned, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterating pet rows", err)
	}

	return owned, nil
}

func (btx *bookingTx) CreateBooking(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (client_id, slot_id, starts_at, ends_at, service_type, status, booking_status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := btx.tx.QueryRowContext(ctx, query,
		b.ClientID,
		b.SlotID,
		b.StartsAt,
		b.EndsAt,
		b.ServiceType,
		b.Status,
		b.ApprovalStatus,
		b.Notes,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return txError("creating booking", err)
	}

	for _, petID := range b.PetIDs {
		if _, err := btx.tx.ExecContext(ctx,
			`INSERT INTO booking_pets (booking_id, pet_id) VALUES ($1, $2)`, b.ID, petID); err != nil {
			return txError(fmt.Sprintf("linking pet %s", petID), err)
		}
	}

	return nil
}
