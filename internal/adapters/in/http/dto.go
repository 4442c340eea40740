package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is a geographic coordinate in JSON form.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressFields carries the postal fields of an address in JSON form.
type AddressFields struct {
	StreetName  string `json:"streetName"`
	HouseNumber string `json:"houseNumber"`
	ExtraInfo   string `json:"extraInfo,omitempty"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// OnboardCourierRequest registers a user as a courier.
type OnboardCourierRequest struct {
	UserID string `json:"userId"`
}

// SetRouteRequest replaces the courier's commute route.
type SetRouteRequest struct {
	Start       AddressFields `json:"start"`
	Destination AddressFields `json:"destination"`
}

// SetAvailabilityRequest toggles whether the courier accepts deliveries.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// UpdateLocationRequest reports the courier's live position.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreateParcelRequest registers a new parcel. Category and size may be
// omitted to accept the defaults.
type CreateParcelRequest struct {
	OwnerID     string        `json:"ownerId"`
	Pickup      AddressFields `json:"pickup"`
	Dropoff     AddressFields `json:"dropoff"`
	Description string        `json:"description"`
	ActionType  string        `json:"actionType"`
	Category    string        `json:"category,omitempty"`
	Size        string        `json:"size,omitempty"`
}

// SearchParcelsRequest looks for pending parcels along the courier's route.
// Start and destination override the stored route when both are present;
// zero radii keep the courier's stored radii.
type SearchParcelsRequest struct {
	UserID          string         `json:"userId"`
	Start           *AddressFields `json:"start,omitempty"`
	Destination     *AddressFields `json:"destination,omitempty"`
	PickupRadiusKm  float64        `json:"pickupRadiusKm,omitempty"`
	DropoffRadiusKm float64        `json:"dropoffRadiusKm,omitempty"`
}

// AssignDeliveryRequest assigns a pending parcel to the couriering user.
type AssignDeliveryRequest struct {
	ParcelID string `json:"parcelId"`
	UserID   string `json:"userId"`
}

// AdvanceDeliveryRequest moves a delivery to the next lifecycle status.
// At is optional; when omitted the transition is stamped with the current time.
type AdvanceDeliveryRequest struct {
	Status string     `json:"status"`
	At     *time.Time `json:"at,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ParcelResponse is a parcel as returned by the search endpoint.
type ParcelResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	ActionType  string    `json:"actionType"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrackParcelResponse is the current status and location of a parcel.
type TrackParcelResponse struct {
	ParcelID string   `json:"parcelId"`
	Status   string   `json:"status"`
	Location Location `json:"location"`
}

// DeliveryHistoryItem is one delivery in a courier's history.
type DeliveryHistoryItem struct {
	DeliveryID   string     `json:"deliveryId"`
	ParcelID     string     `json:"parcelId"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	PickupTime   *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime *time.Time `json:"deliveryTime,omitempty"`
}

// PendingParcelResponse is one parcel on the open parcel board. Location is
// absent while the pickup address is still waiting to be geocoded.
type PendingParcelResponse struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	PickupLocation *Location `json:"pickupLocation,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
