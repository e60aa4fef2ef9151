package search

import (
	"strconv"
	"strings"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// Kind tags a document with the record type it wraps.
type Kind string

const (
	KindHotel Kind = "hotel"
	KindRoom  Kind = "room"
)

// Document is the uniform searchable shape for one hotel or room record.
// Built fresh per search call and never persisted.
type Document struct {
	ID      string
	Kind    Kind
	Title   string
	Text    string
	Payload any
}

// roomPayload is the structured view of a room exposed in search results,
// with amenities split into a list.
type roomPayload struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotelId"`
	RoomType      string   `json:"roomType"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"pricePerNight"`
	IsAvailable   bool     `json:"isAvailable"`
}

// BuildCorpus converts hotel and room records into documents, hotels first,
// each in input order. Absent fields are dropped from the searchable text
// rather than reported as errors.
func BuildCorpus(hotels []model.Hotel, rooms []model.Room) []Document {
	docs := make([]Document, 0, len(hotels)+len(rooms))

	for _, h := range hotels {
		docs = append(docs, Document{
			ID:      h.ID,
			Kind:    KindHotel,
			Title:   h.Name,
			Text:    joinNonEmpty(h.Name, h.Address, h.City, h.Contact),
			Payload: h,
		})
	}

	for _, r := range rooms {
		amenities := r.AmenityList()
		docs = append(docs, Document{
			ID:    r.ID,
			Kind:  KindRoom,
			Title: r.RoomType,
			Text:  joinNonEmpty(r.RoomType, strings.Join(amenities, ","), FormatPrice(r.PricePerNight)),
			Payload: roomPayload{
				ID:            r.ID,
				HotelID:       r.HotelID,
				RoomType:      r.RoomType,
				Amenities:     amenities,
				PricePerNight: r.PricePerNight,
				IsAvailable:   r.IsAvailable,
			},
		})
	}

	return docs
}

// FormatPrice renders a nightly price without trailing zeros, so 100.0
// prints as "100".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
