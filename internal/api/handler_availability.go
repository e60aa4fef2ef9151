package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

// availabilityRoom is the room shape returned by the availability endpoint,
// with amenities split into a list.
type availabilityRoom struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotelId"`
	RoomType      string   `json:"roomType"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"pricePerNight"`
	IsAvailable   bool     `json:"isAvailable"`
}

type availabilityResult struct {
	Hotel *model.Hotel     `json:"hotel"`
	Room  availabilityRoom `json:"room"`
}

// GetAvailability handles GET /availability?hotelId=&roomType=. It returns
// available rooms matching the optional filters, each paired with its hotel
// record (null when the hotel row is missing).
func (h *Handler) GetAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	rooms, err := h.store.ListRooms(ctx, store.RoomFilter{
		HotelID:       c.Query("hotelId"),
		RoomType:      c.Query("roomType"),
		OnlyAvailable: true,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load rooms",
		})
		return
	}

	hotels, err := h.store.ListHotels(ctx, store.HotelFilter{})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load hotels",
		})
		return
	}
	hotelByID := make(map[string]model.Hotel, len(hotels))
	for _, hotel := range hotels {
		hotelByID[hotel.ID] = hotel
	}

	results := make([]availabilityResult, 0, len(rooms))
	for _, r := range rooms {
		var hotel *model.Hotel
		if found, ok := hotelByID[r.HotelID]; ok {
			hotel = &found
		}
		results = append(results, availabilityResult{
			Hotel: hotel,
			Room: availabilityRoom{
				ID:            r.ID,
				HotelID:       r.HotelID,
				RoomType:      r.RoomType,
				Amenities:     r.AmenityList(),
				PricePerNight: r.PricePerNight,
				IsAvailable:   r.IsAvailable,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}
