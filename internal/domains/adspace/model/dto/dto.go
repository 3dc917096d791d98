package dto

import (
	"adbooking/internal/domains/adspace/model"
)

// AdSpaceResponse is the catalog wire record. Depending on backend version the
// availability field arrives as either "status" or "availabilityStatus"; both
// are accepted here and normalized into one canonical model.
type AdSpaceResponse struct {
	UUID               string  `json:"uuid"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	City               string  `json:"city"`
	Address            string  `json:"address"`
	PricePerDay        float64 `json:"pricePerDay"`
	Status             string  `json:"status"`
	AvailabilityStatus string  `json:"availabilityStatus"`
}

func (r AdSpaceResponse) ToModel() model.AdSpace {
	status := r.Status
	if status == "" {
		status = r.AvailabilityStatus
	}

	return model.AdSpace{
		UUID:        r.UUID,
		Name:        r.Name,
		Type:        model.Type(r.Type),
		City:        r.City,
		Address:     r.Address,
		PricePerDay: r.PricePerDay,
		Status:      model.AvailabilityStatus(status),
	}
}

func ToModels(responses []AdSpaceResponse) []model.AdSpace {
	spaces := make([]model.AdSpace, len(responses))
	for i, r := range responses {
		spaces[i] = r.ToModel()
	}

	return spaces
}
