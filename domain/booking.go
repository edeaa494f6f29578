package domain

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// DateRange is a stay: checkOut must fall strictly after checkIn, so every
// stay spans at least one night.
type DateRange struct {
	CheckIn  time.Time `json:"checkInDate"`
	CheckOut time.Time `json:"checkOutDate"`
}

// Nights counts whole calendar days between check-in and check-out,
// comparing the dates in each value's own location.
func (r DateRange) Nights() int {
	in := time.Date(r.CheckIn.Year(), r.CheckIn.Month(), r.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(r.CheckOut.Year(), r.CheckOut.Month(), r.CheckOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

type GuestCount struct {
	Adults   int `json:"adultCount"`
	Children int `json:"childCount"`
}

func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

type Booking struct {
	ID               string        `json:"id"`
	ConfirmationCode string        `json:"bookingConfirmationCode"`
	RoomID           string        `json:"roomId"`
	UserID           string        `json:"userId"`
	CheckInDate      string        `json:"checkInDate"`
	CheckOutDate     string        `json:"checkOutDate"`
	Guests           GuestCount    `json:"guests"`
	TotalPrice       float64       `json:"totalPrice"`
	Status           BookingStatus `json:"status"`
}

// BookingQuote is a non-committing price computation shown to the guest
// before confirmation. The backend's booking record stays authoritative for
// what was actually charged.
type BookingQuote struct {
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"totalPrice"`
	TotalGuests int     `json:"totalGuests"`
}

// BookingRequest is the wire form of a confirm call; dates are already
// serialized as calendar days.
type BookingRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	AdultCount   int    `json:"adultCount"`
	ChildCount   int    `json:"childCount"`
	GuestTotal   int    `json:"guestTotal"`
}
