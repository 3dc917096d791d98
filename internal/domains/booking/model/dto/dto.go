package dto

import (
	"time"

	adspaceModel "adbooking/internal/domains/adspace/model"
	adspaceDto "adbooking/internal/domains/adspace/model/dto"
	"adbooking/internal/domains/booking/model"
)

type CreateBookingRequest struct {
	AdSpaceUUID     string `json:"adSpaceUuid"`
	AdvertiserName  string `json:"advertiserName"`
	AdvertiserEmail string `json:"advertiserEmail"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
}

// FromDraft builds the create payload from a validated draft. The caller must
// have checked that the draft has a selected ad space.
func FromDraft(draft model.Draft) CreateBookingRequest {
	payload := CreateBookingRequest{
		AdvertiserName:  draft.AdvertiserName,
		AdvertiserEmail: draft.AdvertiserEmail,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
	}

	if draft.AdSpace != nil {
		payload.AdSpaceUUID = draft.AdSpace.UUID
	}

	return payload
}

// BookingResponse is the booking wire record. Older backend versions send only
// a denormalized "adSpaceName" instead of the embedded "adSpace" object; both
// shapes are normalized into the canonical model here.
type BookingResponse struct {
	UUID            string                      `json:"uuid"`
	AdSpace         *adspaceDto.AdSpaceResponse `json:"adSpace"`
	AdSpaceName     string                      `json:"adSpaceName"`
	AdvertiserName  string                      `json:"advertiserName"`
	AdvertiserEmail string                      `json:"advertiserEmail"`
	StartDate       string                      `json:"startDate"`
	EndDate         string                      `json:"endDate"`
	Status          string                      `json:"status"`
	TotalCost       float64                     `json:"totalCost"`
	CreatedAt       string                      `json:"createdAt"`
}

func (r BookingResponse) ToModel() model.BookingRequest {
	booking := model.BookingRequest{
		UUID:            r.UUID,
		AdvertiserName:  r.AdvertiserName,
		AdvertiserEmail: r.AdvertiserEmail,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Status:          model.Status(r.Status),
		TotalCost:       r.TotalCost,
	}

	if r.AdSpace != nil {
		booking.AdSpace = r.AdSpace.ToModel()
	} else if r.AdSpaceName != "" {
		booking.AdSpace = adspaceModel.AdSpace{Name: r.AdSpaceName}
	}

	if createdAt, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		booking.CreatedAt = createdAt
	}

	return booking
}

func ToModels(responses []BookingResponse) []model.BookingRequest {
	bookings := make([]model.BookingRequest, len(responses))
	for i, r := range responses {
		bookings[i] = r.ToModel()
	}

	return bookings
}
