package domain

type Room struct {
	ID              string  `json:"id"`
	RoomType        string  `json:"roomType"`
	RoomPrice       float64 `json:"roomPrice"`
	RoomDescription string  `json:"roomDescription"`
}

// RoomInput is the admin create/update payload. Price and type invariants
// are checked before any request leaves the service.
type RoomInput struct {
	RoomType        string  `json:"roomType" validate:"required"`
	RoomPrice       float64 `json:"roomPrice" validate:"gte=0"`
	RoomDescription string  `json:"roomDescription"`
}
