package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adbooking/internal/domains/adspace/model"
	"adbooking/internal/domains/adspace/model/dto"
)

func TestAdSpaceResponse_ToModel_StatusFallback(t *testing.T) {
	tests := []struct {
		name     string
		response dto.AdSpaceResponse
		want     model.AvailabilityStatus
	}{
		{
			name:     "status field",
			response: dto.AdSpaceResponse{Status: "AVAILABLE"},
			want:     model.StatusAvailable,
		},
		{
			name:     "availabilityStatus field",
			response: dto.AdSpaceResponse{AvailabilityStatus: "MAINTENANCE"},
			want:     model.StatusMaintenance,
		},
		{
			name:     "status wins when both are present",
			response: dto.AdSpaceResponse{Status: "BOOKED", AvailabilityStatus: "AVAILABLE"},
			want:     model.StatusBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.response.ToModel().Status)
		})
	}
}
