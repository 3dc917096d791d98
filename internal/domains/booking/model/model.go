package model

import (
	"time"

	adspaceModel "adbooking/internal/domains/adspace/model"
)

const EntityName = "booking request"

// Status is the lifecycle state of a booking request. A request is created in
// PENDING by the backend; APPROVED and REJECTED are terminal. The client never
// assigns a status itself, it only reflects what the server returned.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}

	return false
}

// Terminal reports whether the status admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// StatusFilter constrains a booking listing. FilterAll is the sentinel for an
// unconstrained listing and maps to no status parameter on the wire.
type StatusFilter string

const FilterAll StatusFilter = "ALL"

// Param returns the wire value for the filter, empty when unconstrained.
func (f StatusFilter) Param() string {
	if f == "" || f == FilterAll {
		return ""
	}

	return string(f)
}

// BookingRequest is the server-authoritative booking record. TotalCost is
// computed server-side at creation and treated as authoritative once returned.
// Dates are calendar-date strings in YYYY-MM-DD form, matching the wire.
type BookingRequest struct {
	UUID            string
	AdSpace         adspaceModel.AdSpace
	AdvertiserName  string
	AdvertiserEmail string
	StartDate       string
	EndDate         string
	Status          Status
	TotalCost       float64
	CreatedAt       time.Time
}

// Draft is the client-local, unsaved proposal to book a space. It exists only
// while the booking dialog is open and is discarded on close or on successful
// submission. AdSpace is nil until the user has selected a space.
type Draft struct {
	AdSpace         *adspaceModel.AdSpace
	AdvertiserName  string
	AdvertiserEmail string
	StartDate       string
	EndDate         string
}
