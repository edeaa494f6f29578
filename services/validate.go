package services

import (
	"booking-client/domain"
)

func validateStay(stay domain.DateRange) error {
	if stay.CheckIn.IsZero() {
		return domain.NewValidationError("checkInDate", "Please select check-in and check-out dates")
	}
	if stay.CheckOut.IsZero() {
		return domain.NewValidationError("checkOutDate", "Please select check-in and check-out dates")
	}
	if stay.Nights() < 1 {
		return domain.NewValidationError("checkOutDate", "Check-out date must be after check-in date")
	}
	return nil
}

func validateGuests(guests domain.GuestCount) error {
	if guests.Adults < 1 {
		return domain.NewValidationError("adultCount", "Please enter valid count for adults and children")
	}
	if guests.Children < 0 {
		return domain.NewValidationError("childCount", "Please enter valid count for adults and children")
	}
	return nil
}
