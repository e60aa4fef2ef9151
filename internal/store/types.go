package store

// HotelFilter narrows ListHotels. Query matches name, city, or address
// case-insensitively as a substring; empty means all hotels.
type HotelFilter struct {
	Query   string
	OwnerID string
}

// RoomFilter narrows ListRooms.
type RoomFilter struct {
	HotelID       string
	RoomType      string
	OnlyAvailable bool
}

// BookingFilter narrows ListBookings.
type BookingFilter struct {
	HotelID string
}
