package usecase

import (
	"context"
	"errors"
	"time"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

const (
	reasonCanCancel    = "Can cancel up to 24 hours before the booking starts"
	reasonCannotCancel = "Cannot cancel within 24 hours of booking start"
)

// CancellationDecision is the eligibility verdict for one booking.
type CancellationDecision struct {
	BookingID int
	CanCancel bool
	Reason    string
}

// ICancellationUseCase decides whether a booking may still be cancelled.

type ICancellationUseCase interface {
	CanCancel(ctx context.Context, bookingID int) (CancellationDecision, error)
}

type CancellationUseCase struct {
	source interfaces.ISnapshotSource
}

var _ ICancellationUseCase = (*CancellationUseCase)(nil)

func NewCancellationUseCase(source interfaces.ISnapshotSource) *CancellationUseCase {
	return &CancellationUseCase{source: source}
}

func (u *CancellationUseCase) CanCancel(ctx context.Context, bookingID int) (CancellationDecision, error) {
	snap, err := u.source.Snapshot(ctx)
	if err != nil {
		return CancellationDecision{}, err
	}
	booking, ok := snap.BookingByID(bookingID)
	if !ok {
		return CancellationDecision{}, ErrBookingNotFound
	}
	return decideCancellation(booking, time.Now()), nil
}

// decideCancellation applies the strictly-more-than-24h lead time rule.
func decideCancellation(b entities.Booking, now time.Time) CancellationDecision {
	canCancel := floorDays(now, b.StartDate) > 1
	reason := reasonCannotCancel
	if canCancel {
		reason = reasonCanCancel
	}
	return CancellationDecision{BookingID: b.ID, CanCancel: canCancel, Reason: reason}
}
