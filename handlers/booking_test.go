package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labassist/models"
	"labassist/services/booking"
)

type fakeBookingService struct {
	result    *models.BookingResult
	err       error
	equipment []models.Equipment
	listErr   error

	lastInput models.BookingInput
}

func (f *fakeBookingService) CheckAndBook(_ context.Context, in models.BookingInput) (*models.BookingResult, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeBookingService) AvailableEquipment(_ context.Context) ([]models.Equipment, error) {
	return f.equipment, f.listErr
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/equipment/book", h.BookEquipment)
	r.GET("/equipment/available", h.AvailableEquipment)
	return r
}

func TestBookEquipmentSuccess(t *testing.T) {
	fake := &fakeBookingService{
		result: &models.BookingResult{Success: true, BookingID: "bk-1", Message: "Equipment centrifuge-01 booked for 2 hours starting 2026-09-01T10:00:00Z"},
	}
	r := newBookingRouter(fake)

	body := `{"equipment_id":"centrifuge-01","customer_id":"cust-1","start_time":"2026-09-01T10:00:00Z","duration_hours":2,"purpose":"spin samples"}`
	req := httptest.NewRequest(http.MethodPost, "/equipment/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "centrifuge-01", fake.lastInput.EquipmentID)
	assert.Equal(t, 2, fake.lastInput.DurationHours)

	var got models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "bk-1", got.BookingID)
}

func TestBookEquipmentConflictIsNotAnErrorStatus(t *testing.T) {
	fake := &fakeBookingService{
		result: &models.BookingResult{Success: false, Message: "Equipment not available at requested time"},
	}
	r := newBookingRouter(fake)

	body := `{"equipment_id":"centrifuge-01","customer_id":"cust-1","start_time":"2026-09-01T10:00:00Z","duration_hours":2}`
	req := httptest.NewRequest(http.MethodPost, "/equipment/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Success)
}

func TestBookEquipmentValidation(t *testing.T) {
	t.Run("missing fields rejected at binding", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{})
		req := httptest.NewRequest(http.MethodPost, "/equipment/book", strings.NewReader(`{"equipment_id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		fake := &fakeBookingService{err: booking.NewValidationError("start_time", "invalid timestamp")}
		r := newBookingRouter(fake)
		body := `{"equipment_id":"centrifuge-01","customer_id":"cust-1","start_time":"not-a-time","duration_hours":2}`
		req := httptest.NewRequest(http.MethodPost, "/equipment/book", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAvailableEquipment(t *testing.T) {
	fake := &fakeBookingService{
		equipment: []models.Equipment{
			{ID: "centrifuge-01", Name: "Benchtop Centrifuge", Type: "centrifuge", Status: models.EquipmentStatusAvailable, Location: "Lab A"},
		},
	}
	r := newBookingRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/equipment/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Equipment []models.Equipment `json:"equipment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Equipment, 1)
	assert.Equal(t, "centrifuge-01", got.Equipment[0].ID)
}

func TestAvailableEquipmentEmptyListIsNotNull(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/equipment/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"equipment":[]`)
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthHandler()
	r.GET("/health", h.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got["status"])
	assert.NotEmpty(t, got["timestamp"])
}
