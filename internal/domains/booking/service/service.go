package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"adbooking/internal/domains/booking/client"
	"adbooking/internal/domains/booking/model"
	"adbooking/internal/domains/booking/model/dto"
	"adbooking/internal/domains/booking/validator"
	"adbooking/shared/failure"
)

// Bookings owns the booking-request cache and the lifecycle rules around it.
// Every mutation applies the server's returned representation; the cache never
// carries a status the server did not confirm. A List issued after a filter
// change may still be overwritten by a late response from the previous filter;
// that last-write-wins race is accepted and not guarded against here.
type Bookings interface {
	StatusFilter() model.StatusFilter
	SetStatusFilter(filter model.StatusFilter)
	List(ctx context.Context) ([]model.BookingRequest, error)
	Bookings() []model.BookingRequest
	Get(ctx context.Context, id string) (model.BookingRequest, error)
	Create(ctx context.Context, draft model.Draft, today time.Time) (model.BookingRequest, error)
	Approve(ctx context.Context, id string) (model.BookingRequest, error)
	Reject(ctx context.Context, id string) (model.BookingRequest, error)
}

type serviceImpl struct {
	client   *client.Client
	filter   model.StatusFilter
	bookings []model.BookingRequest
}

func New(c *client.Client) Bookings {
	return &serviceImpl{
		client: c,
		filter: model.FilterAll,
	}
}

func (s *serviceImpl) StatusFilter() model.StatusFilter {
	return s.filter
}

func (s *serviceImpl) SetStatusFilter(filter model.StatusFilter) {
	s.filter = filter
}

// List fetches bookings with the filter active at the time of the call. On
// success the cache is replaced wholesale, preserving server order; on failure
// it is cleared so no stale data survives the error.
func (s *serviceImpl) List(ctx context.Context) ([]model.BookingRequest, error) {
	bookings, err := s.client.List(ctx, s.filter)
	if err != nil {
		log.Error().Err(err).Str("filter", string(s.filter)).Msg("failed to fetch bookings")
		s.bookings = nil

		return nil, fmt.Errorf("fetching bookings: %w", err)
	}

	s.bookings = bookings

	return s.Bookings(), nil
}

func (s *serviceImpl) Bookings() []model.BookingRequest {
	bookings := make([]model.BookingRequest, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.BookingRequest, error) {
	booking, err := s.client.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("uuid", id).Msg("failed to fetch booking")

		return model.BookingRequest{}, err
	}

	return booking, nil
}

// Create submits a draft. The draft is re-validated here as the final gate:
// with field errors or no selected space, no network call is made. On success
// the server's record, with its authoritative status and total cost, is
// appended to the cache.
func (s *serviceImpl) Create(ctx context.Context, draft model.Draft, today time.Time) (model.BookingRequest, error) {
	if errs := validator.ValidateDraft(draft, today); !errs.Empty() {
		return model.BookingRequest{}, failure.BadRequestFromString("booking draft failed validation") // nolint:wrapcheck
	}

	if draft.AdSpace == nil {
		return model.BookingRequest{}, failure.BadRequestFromString("no ad space selected") // nolint:wrapcheck
	}

	created, err := s.client.Create(ctx, dto.FromDraft(draft))
	if err != nil {
		log.Error().Err(err).Str("adSpace", draft.AdSpace.UUID).Msg("failed to create booking")

		return model.BookingRequest{}, err
	}

	s.bookings = append(s.bookings, created)

	return created, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (model.BookingRequest, error) {
	return s.transition(ctx, id, "approve", s.client.Approve)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (model.BookingRequest, error) {
	return s.transition(ctx, id, "reject", s.client.Reject)
}

type transitionFunc func(ctx context.Context, id string) (model.BookingRequest, error)

// transition guards that the last-known status is PENDING before going to the
// network, then replaces the matching cache entry with the server's returned
// representation. The cache is never flipped ahead of confirmation, so a
// rejected transition needs no rollback.
func (s *serviceImpl) transition(ctx context.Context, id, action string, call transitionFunc) (model.BookingRequest, error) {
	cached, ok := s.find(id)
	if !ok {
		return model.BookingRequest{}, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if cached.Status != model.StatusPending {
		return model.BookingRequest{}, failure.Conflict(fmt.Sprintf("Conflict: cannot %s this booking", action)) // nolint:wrapcheck
	}

	updated, err := call(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("uuid", id).Str("action", action).Msg("failed to update booking status")

		return model.BookingRequest{}, err
	}

	s.replace(updated)

	return updated, nil
}

func (s *serviceImpl) find(id string) (model.BookingRequest, bool) {
	for _, booking := range s.bookings {
		if booking.UUID == id {
			return booking, true
		}
	}

	return model.BookingRequest{}, false
}

func (s *serviceImpl) replace(updated model.BookingRequest) {
	for i, booking := range s.bookings {
		if booking.UUID == updated.UUID {
			s.bookings[i] = updated

			return
		}
	}
}
