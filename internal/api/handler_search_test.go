package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
	"github.com/ShreyasBadgujar/hotel-booking/internal/plan"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

// stubStore serves canned collections so handlers can be tested without a
// database.
type stubStore struct {
	hotels   []model.Hotel
	rooms    []model.Room
	bookings []model.Booking
	owner    *model.Hotel
	err      error
}

func (s *stubStore) ListHotels(context.Context, store.HotelFilter) ([]model.Hotel, error) {
	return s.hotels, s.err
}

func (s *stubStore) ListRooms(context.Context, store.RoomFilter) ([]model.Room, error) {
	return s.rooms, s.err
}

func (s *stubStore) ListBookings(context.Context, store.BookingFilter) ([]model.Booking, error) {
	return s.bookings, s.err
}

func (s *stubStore) HotelByOwner(context.Context, string) (*model.Hotel, error) {
	return s.owner, s.err
}

func (s *stubStore) DB() *gorm.DB { return nil }

func fixedClock() time.Time {
	return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
}

func setupSearchRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(s, plan.DefaultRates, fixedClock)
	r.POST("/search", handler.PostSearch)
	return r
}

func postSearch(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPostSearch_BadRequests(t *testing.T) {
	router := setupSearchRouter(&stubStore{})

	for name, body := range map[string]string{
		"no body":          "",
		"non-string query": `{"query": 42}`,
		"empty query":      `{"query": ""}`,
		"whitespace query": `{"query": "   "}`,
	} {
		w := postSearch(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), `"success":false`, name)
	}
}

func TestPostSearch_MissingQueryKeyIsEmptyQuery(t *testing.T) {
	w := postSearch(setupSearchRouter(&stubStore{}), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostSearch_RanksRoomAboveHotel(t *testing.T) {
	router := setupSearchRouter(&stubStore{
		hotels: []model.Hotel{{ID: "h1", Name: "Sea View", City: "Goa"}},
		rooms: []model.Room{{
			ID: "r1", HotelID: "h1", RoomType: "Suite",
			Amenities: "wifi", PricePerNight: 100, IsAvailable: true,
		}},
	})

	w := postSearch(router, `{"query": "suite goa"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Context string `json:"context"`
		Sources []struct {
			ID    string  `json:"id"`
			Type  string  `json:"type"`
			Title string  `json:"title"`
			Score float64 `json:"score"`
		} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Sources, 2)
	assert.Equal(t, "r1", resp.Sources[0].ID)
	assert.Equal(t, "room", resp.Sources[0].Type)
	assert.Equal(t, 2.5, resp.Sources[0].Score)
	assert.Equal(t, "h1", resp.Sources[1].ID)
	assert.Equal(t, "hotel", resp.Sources[1].Type)
	assert.Equal(t, 1.0, resp.Sources[1].Score)
	assert.Contains(t, resp.Context, "Room 1: Suite")
	assert.Contains(t, resp.Context, "Hotel 2: Sea View")
}

func TestPostSearch_NoMatchesIsSuccess(t *testing.T) {
	router := setupSearchRouter(&stubStore{
		hotels: []model.Hotel{{ID: "h1", Name: "Sea View", City: "Goa"}},
	})

	w := postSearch(router, `{"query": "zanzibar"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"context":"","sources":[]}`, w.Body.String())
}
