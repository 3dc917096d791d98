package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"adbooking/internal/domains/booking/model"
	"adbooking/internal/domains/booking/model/dto"
	"adbooking/shared/failure"
	"adbooking/transport/rest"
)

type Client struct {
	rest *rest.Client
}

func New(rest *rest.Client) *Client {
	return &Client{rest: rest}
}

// List fetches booking requests, optionally constrained to one status. The
// server's ordering is preserved as-is.
func (c *Client) List(ctx context.Context, filter model.StatusFilter) ([]model.BookingRequest, error) {
	query := url.Values{}
	if param := filter.Param(); param != "" {
		query.Set("status", param)
	}

	resp, err := c.rest.Get(ctx, "/booking-requests", query)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}

	if !resp.OK() {
		return nil, failure.FromStatus(resp.StatusCode, "", "Failed to fetch bookings") // nolint:wrapcheck
	}

	var records []dto.BookingResponse
	if err := resp.Decode(&records); err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}

	return dto.ToModels(records), nil
}

func (c *Client) Get(ctx context.Context, id string) (model.BookingRequest, error) {
	resp, err := c.rest.Get(ctx, "/booking-requests/"+url.PathEscape(id), nil)
	if err != nil {
		return model.BookingRequest{}, fmt.Errorf("fetching booking: %w", err)
	}

	if !resp.OK() {
		return model.BookingRequest{}, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	return decodeBooking(resp)
}

// Create submits a draft payload. On failure the backend's message is carried
// verbatim when present.
func (c *Client) Create(ctx context.Context, payload dto.CreateBookingRequest) (model.BookingRequest, error) {
	resp, err := c.rest.Post(ctx, "/booking-requests", payload)
	if err != nil {
		return model.BookingRequest{}, fmt.Errorf("creating booking: %w", err)
	}

	if !resp.OK() {
		return model.BookingRequest{}, failure.FromStatus(resp.StatusCode, resp.BodyText(), "Failed to create booking") // nolint:wrapcheck
	}

	return decodeBooking(resp)
}

// Approve requests the PENDING -> APPROVED transition. A 409 is surfaced as a
// distinct conflict failure; the server is the final arbiter of transitions.
func (c *Client) Approve(ctx context.Context, id string) (model.BookingRequest, error) {
	return c.transition(ctx, id, "approve")
}

// Reject requests the PENDING -> REJECTED transition. Same conflict semantics
// as Approve.
func (c *Client) Reject(ctx context.Context, id string) (model.BookingRequest, error) {
	return c.transition(ctx, id, "reject")
}

func (c *Client) transition(ctx context.Context, id, action string) (model.BookingRequest, error) {
	resp, err := c.rest.Patch(ctx, "/booking-requests/"+url.PathEscape(id)+"/"+action)
	if err != nil {
		return model.BookingRequest{}, fmt.Errorf("%s booking: %w", action, err)
	}

	if resp.StatusCode == http.StatusConflict {
		msg := resp.BodyText()
		if msg == "" {
			msg = fmt.Sprintf("Conflict: cannot %s this booking", action)
		}

		return model.BookingRequest{}, failure.Conflict(msg) // nolint:wrapcheck
	}

	if !resp.OK() {
		return model.BookingRequest{}, failure.FromStatus(resp.StatusCode, resp.BodyText(), fmt.Sprintf("Failed to %s booking", action)) // nolint:wrapcheck
	}

	return decodeBooking(resp)
}

func decodeBooking(resp rest.Response) (model.BookingRequest, error) {
	var record dto.BookingResponse
	if err := resp.Decode(&record); err != nil {
		return model.BookingRequest{}, fmt.Errorf("decoding booking: %w", err)
	}

	return record.ToModel(), nil
}
