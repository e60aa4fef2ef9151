package model

import "time"

// Hotel represents a property listed by an owner.
type Hotel struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Address   string    `gorm:"size:512" json:"address"`
	City      string    `gorm:"size:128;index" json:"city"`
	Contact   string    `gorm:"size:128" json:"contact"`
	OwnerID   string    `gorm:"size:64;index" json:"ownerId"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Associations
	Rooms []Room `gorm:"foreignKey:HotelID" json:"-"`
}
