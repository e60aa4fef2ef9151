package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShreyasBadgujar/hotel-booking/internal/search"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

type searchRequest struct {
	Query string `json:"query"`
}

// searchSource is one ranked entry in the search response.
type searchSource struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Payload any     `json:"payload"`
}

type searchResponse struct {
	Success bool           `json:"success"`
	Context string         `json:"context"`
	Sources []searchSource `json:"sources"`
}

// PostSearch handles POST /search: builds a fresh corpus from the store and
// ranks it against the query. No matches is a successful empty response.
func (h *Handler) PostSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false, "message": "query is required and must be a string",
		})
		return
	}

	ctx := c.Request.Context()
	hotels, err := h.store.ListHotels(ctx, store.HotelFilter{})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load hotels",
		})
		return
	}
	rooms, err := h.store.ListRooms(ctx, store.RoomFilter{})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load rooms",
		})
		return
	}

	results, context, err := search.Search(req.Query, search.BuildCorpus(hotels, rooms))
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false, "message": "query is required and must be a string",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": err.Error(),
		})
		return
	}

	sources := make([]searchSource, 0, len(results))
	for _, r := range results {
		sources = append(sources, searchSource{
			ID:      r.Document.ID,
			Type:    string(r.Document.Kind),
			Title:   r.Document.Title,
			Score:   r.Score,
			Payload: r.Document.Payload,
		})
	}

	c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Context: context,
		Sources: sources,
	})
}
