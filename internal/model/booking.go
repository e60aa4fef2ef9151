package model

import "time"

// Booking statuses as stored. Only cancellation matters to the planner;
// everything else counts as an active stay.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents a guest reservation. CheckInDate < CheckOutDate always
// holds for stored rows; the seed loader rejects violations.
type Booking struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	RoomID       string    `gorm:"size:64;index;not null" json:"roomId"`
	HotelID      string    `gorm:"size:64;index;not null" json:"hotelId"`
	CheckInDate  time.Time `gorm:"not null" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"not null" json:"checkOutDate"`
	Status       string    `gorm:"size:32;not null" json:"status"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Cancelled reports whether the booking should be ignored by planning.
func (b Booking) Cancelled() bool {
	return b.Status == StatusCancelled
}
