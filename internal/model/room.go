package model

import (
	"strings"
	"time"
)

// Room represents a bookable room type within a hotel.
type Room struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	HotelID       string    `gorm:"size:64;index;not null" json:"hotelId"`
	RoomType      string    `gorm:"size:128;not null" json:"roomType"`
	Amenities     string    `gorm:"size:1024" json:"-"` // comma-separated in the DB
	PricePerNight float64   `gorm:"not null" json:"pricePerNight"`
	IsAvailable   bool      `gorm:"not null;default:true" json:"isAvailable"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Associations
	Hotel Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// AmenityList splits the stored amenities into individual entries.
func (r Room) AmenityList() []string {
	if r.Amenities == "" {
		return nil
	}
	parts := strings.Split(r.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
