// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labassist/models"
	"labassist/services/booking"
	"labassist/utils"
)

// BookingHandler exposes the booking ledger directly, bypassing the oracle.
type BookingHandler struct {
	Booking booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// BookEquipment handles POST /equipment/book. A conflict is a normal
// {success:false} result, not an error status.
func (h *BookingHandler) BookEquipment(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	result, err := h.Booking.CheckAndBook(c.Request.Context(), input)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", vErr.Error())
			return
		}
		logger.Error("Booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// AvailableEquipment handles GET /equipment/available.
func (h *BookingHandler) AvailableEquipment(c *gin.Context) {
	logger := utils.GetLogger()

	equipment, err := h.Booking.AvailableEquipment(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list equipment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list equipment", err.Error())
		return
	}
	if equipment == nil {
		equipment = []models.Equipment{}
	}

	c.JSON(http.StatusOK, gin.H{"equipment": equipment})
}
