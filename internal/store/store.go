package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// Store defines the read interface the API layer depends on. The search and
// planning cores never touch it directly; they consume collections the
// handlers fetch through it.
type Store interface {
	ListHotels(ctx context.Context, f HotelFilter) ([]model.Hotel, error)
	ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error)
	ListBookings(ctx context.Context, f BookingFilter) ([]model.Booking, error)
	HotelByOwner(ctx context.Context, ownerID string) (*model.Hotel, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// ListHotels returns hotels matching the filter, in primary-key order so
// that repeated calls enumerate identically.
func (s *gormStore) ListHotels(ctx context.Context, f HotelFilter) ([]model.Hotel, error) {
	q := s.db.WithContext(ctx).Model(&model.Hotel{}).Order("id")
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	var hotels []model.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

// ListRooms returns rooms matching the filter, in primary-key order.
func (s *gormStore) ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error) {
	q := s.db.WithContext(ctx).Model(&model.Room{}).Order("id")
	if f.HotelID != "" {
		q = q.Where("hotel_id = ?", f.HotelID)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var rooms []model.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// ListBookings returns bookings matching the filter, including cancelled
// ones. The planner decides what to exclude.
func (s *gormStore) ListBookings(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	q := s.db.WithContext(ctx).Model(&model.Booking{}).Order("id")
	if f.HotelID != "" {
		q = q.Where("hotel_id = ?", f.HotelID)
	}

	var bookings []model.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// HotelByOwner returns the hotel registered to an owner, or nil when the
// owner has none. Owners hold at most one hotel.
func (s *gormStore) HotelByOwner(ctx context.Context, ownerID string) (*model.Hotel, error) {
	var hotel model.Hotel
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&hotel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("hotel by owner: %w", err)
	}
	return &hotel, nil
}
