// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labassist/models"
	"labassist/services/booking"
	"labassist/services/dispatch"
	"labassist/utils"
)

// ChatHandler exposes the dispatch core over POST /chat.
type ChatHandler struct {
	Dispatch dispatch.DispatchService
}

func NewChatHandler(svc dispatch.DispatchService) *ChatHandler {
	return &ChatHandler{Dispatch: svc}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	result, err := h.Dispatch.HandleQuery(c.Request.Context(), req.Query, req.CustomerID, req.Context)
	if err != nil {
		status := statusForDispatchError(err)
		logger.Error("Dispatch failed",
			zap.String("customerID", req.CustomerID),
			zap.Int("status", status),
			zap.Error(err))
		utils.JSONError(c, status, "Bot processing error", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusForDispatchError maps the dispatch error taxonomy onto HTTP status
// codes: validation problems are the caller's fault, an oracle failure is an
// upstream failure, anything else is internal.
func statusForDispatchError(err error) int {
	var dispatchVErr *dispatch.ValidationError
	var bookingVErr *booking.ValidationError
	var oracleErr *dispatch.OracleError
	switch {
	case errors.As(err, &dispatchVErr), errors.As(err, &bookingVErr):
		return http.StatusBadRequest
	case errors.As(err, &oracleErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
