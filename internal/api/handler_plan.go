package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShreyasBadgujar/hotel-booking/internal/mw"
	"github.com/ShreyasBadgujar/hotel-booking/internal/plan"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

const defaultPlanDays = 7

type planHotel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// planParams echoes the estimator configuration so consumers can audit the
// workload math. Field names follow the original API contract.
type planParams struct {
	Days             int     `json:"days"`
	CheckoutCleanMin float64 `json:"CHECKOUT_CLEAN_MIN"`
	StayoverCleanMin float64 `json:"STAYOVER_CLEAN_MIN"`
	CheckinPrepMin   float64 `json:"CHECKIN_PREP_MIN"`
	StaffShiftMin    float64 `json:"STAFF_SHIFT_MIN"`
}

type planResponse struct {
	Success bool           `json:"success"`
	Hotel   planHotel      `json:"hotel"`
	Plan    []plan.DayPlan `json:"plan"`
	Params  planParams     `json:"params"`
}

// GetHousekeepingPlan handles GET /housekeeping-plan?days=N for the
// authenticated owner's hotel. An owner without a hotel gets a 200 with
// success=false: "no data" is deliberately distinct from "bad request".
func (h *Handler) GetHousekeepingPlan(c *gin.Context) {
	ownerID, ok := mw.OwnerID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "message": "owner identity required",
		})
		return
	}

	days := defaultPlanDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false, "message": "days must be an integer",
			})
			return
		}
		days = n
	}
	days = plan.ClampDays(days)

	ctx := c.Request.Context()
	hotel, err := h.store.HotelByOwner(ctx, ownerID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to resolve hotel",
		})
		return
	}
	if hotel == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false, "message": "No Hotel found for owner",
		})
		return
	}

	bookings, err := h.store.ListBookings(ctx, store.BookingFilter{HotelID: hotel.ID})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load bookings",
		})
		return
	}
	rooms, err := h.store.ListRooms(ctx, store.RoomFilter{HotelID: hotel.ID})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false, "message": "failed to load rooms",
		})
		return
	}

	c.JSON(http.StatusOK, planResponse{
		Success: true,
		Hotel:   planHotel{ID: hotel.ID, Name: hotel.Name},
		Plan:    plan.Assemble(h.now(), days, h.rates, bookings, rooms),
		Params: planParams{
			Days:             days,
			CheckoutCleanMin: h.rates.CheckoutCleanMin,
			StayoverCleanMin: h.rates.StayoverCleanMin,
			CheckinPrepMin:   h.rates.CheckinPrepMin,
			StaffShiftMin:    h.rates.StaffShiftMin,
		},
	})
}
