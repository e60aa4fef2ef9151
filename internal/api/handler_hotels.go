package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

// GetHotels handles GET /hotels?q=. The filter matches name, city, or
// address case-insensitively; without q every hotel is returned.
func (h *Handler) GetHotels(c *gin.Context) {
	hotels, err := h.store.ListHotels(c.Request.Context(), store.HotelFilter{
		Query: c.Query("q"),
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load hotels",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hotels": hotels})
}
