package model

const EntityName = "ad space"

// Type is the closed category enumeration for ad spaces.
type Type string

const (
	TypeBillboard   Type = "BILLBOARD"
	TypeBusStop     Type = "BUS_STOP"
	TypeMallDisplay Type = "MALL_DISPLAY"
	TypeTransitAd   Type = "TRANSIT_AD"
)

// Types lists every known ad-space category.
func Types() []Type {
	return []Type{TypeBillboard, TypeBusStop, TypeMallDisplay, TypeTransitAd}
}

func (t Type) Valid() bool {
	switch t {
	case TypeBillboard, TypeBusStop, TypeMallDisplay, TypeTransitAd:
		return true
	}

	return false
}

// AvailabilityStatus is the catalog-side availability of an ad space.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "AVAILABLE"
	StatusBooked      AvailabilityStatus = "BOOKED"
	StatusMaintenance AvailabilityStatus = "MAINTENANCE"
)

// AdSpace is a bookable physical advertising location. Records are immutable
// from the client's perspective and refreshed wholesale from the catalog.
// PricePerDay is never negative.
type AdSpace struct {
	UUID        string
	Name        string
	Type        Type
	City        string
	Address     string
	PricePerDay float64
	Status      AvailabilityStatus
}
