package seed

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// File is the on-disk fixture format. Dates use YYYY-MM-DD.
type File struct {
	Hotels   []HotelFixture   `yaml:"hotels"`
	Rooms    []RoomFixture    `yaml:"rooms"`
	Bookings []BookingFixture `yaml:"bookings"`
}

type HotelFixture struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Contact string `yaml:"contact"`
	OwnerID string `yaml:"owner_id"`
}

type RoomFixture struct {
	ID            string   `yaml:"id"`
	HotelID       string   `yaml:"hotel_id"`
	RoomType      string   `yaml:"room_type"`
	Amenities     []string `yaml:"amenities"`
	PricePerNight float64  `yaml:"price_per_night"`
	IsAvailable   *bool    `yaml:"is_available"`
}

type BookingFixture struct {
	ID       string `yaml:"id"`
	RoomID   string `yaml:"room_id"`
	HotelID  string `yaml:"hotel_id"`
	CheckIn  string `yaml:"check_in"`
	CheckOut string `yaml:"check_out"`
	Status   string `yaml:"status"`
}

// Load reads a fixture file and upserts its contents. Records without an ID
// get a fresh UUID. Bookings whose dates are unparseable or inverted are
// skipped with a warning rather than failing the whole load.
func Load(ctx context.Context, db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	hotels, rooms, bookings := f.records()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(hotels) > 0 {
			log.Printf("Seeding %d hotels...", len(hotels))
			if err := upsert(tx, &hotels); err != nil {
				return fmt.Errorf("seed hotels: %w", err)
			}
		}
		if len(rooms) > 0 {
			log.Printf("Seeding %d rooms...", len(rooms))
			if err := upsert(tx, &rooms); err != nil {
				return fmt.Errorf("seed rooms: %w", err)
			}
		}
		if len(bookings) > 0 {
			log.Printf("Seeding %d bookings...", len(bookings))
			if err := upsert(tx, &bookings); err != nil {
				return fmt.Errorf("seed bookings: %w", err)
			}
		}
		return nil
	})
}

func upsert(tx *gorm.DB, records any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(records).Error
}

func (f File) records() ([]model.Hotel, []model.Room, []model.Booking) {
	hotels := make([]model.Hotel, 0, len(f.Hotels))
	for _, h := range f.Hotels {
		hotels = append(hotels, model.Hotel{
			ID:      orUUID(h.ID),
			Name:    h.Name,
			Address: h.Address,
			City:    h.City,
			Contact: h.Contact,
			OwnerID: h.OwnerID,
		})
	}

	rooms := make([]model.Room, 0, len(f.Rooms))
	for _, r := range f.Rooms {
		available := true
		if r.IsAvailable != nil {
			available = *r.IsAvailable
		}
		rooms = append(rooms, model.Room{
			ID:            orUUID(r.ID),
			HotelID:       r.HotelID,
			RoomType:      r.RoomType,
			Amenities:     joinAmenities(r.Amenities),
			PricePerNight: r.PricePerNight,
			IsAvailable:   available,
		})
	}

	bookings := make([]model.Booking, 0, len(f.Bookings))
	for _, b := range f.Bookings {
		checkIn, err := time.ParseInLocation("2006-01-02", b.CheckIn, time.Local)
		if err != nil {
			log.Printf("Warning: skipping booking %q: bad check_in %q", b.ID, b.CheckIn)
			continue
		}
		checkOut, err := time.ParseInLocation("2006-01-02", b.CheckOut, time.Local)
		if err != nil {
			log.Printf("Warning: skipping booking %q: bad check_out %q", b.ID, b.CheckOut)
			continue
		}
		if !checkIn.Before(checkOut) {
			log.Printf("Warning: skipping booking %q: check_in %s is not before check_out %s",
				b.ID, b.CheckIn, b.CheckOut)
			continue
		}

		status := b.Status
		if status == "" {
			status = model.StatusConfirmed
		}
		bookings = append(bookings, model.Booking{
			ID:           orUUID(b.ID),
			RoomID:       b.RoomID,
			HotelID:      b.HotelID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       status,
		})
	}

	return hotels, rooms, bookings
}

func orUUID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func joinAmenities(amenities []string) string {
	return strings.Join(amenities, ",")
}
