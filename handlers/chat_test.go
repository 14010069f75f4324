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
	"labassist/services/dispatch"
)

type fakeDispatchService struct {
	result *models.DispatchResult
	err    error

	lastQuery      string
	lastCustomerID string
}

func (f *fakeDispatchService) HandleQuery(_ context.Context, query, customerID string, _ map[string]any) (*models.DispatchResult, error) {
	f.lastQuery = query
	f.lastCustomerID = customerID
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newChatRouter(svc dispatch.DispatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc)
	r.POST("/chat", h.HandleChat)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatReturnsDispatchResult(t *testing.T) {
	fake := &fakeDispatchService{
		result: &models.DispatchResult{
			Response:            "The centrifuge is booked.",
			ActionsTaken:        []models.ActionRecord{{Action: "schedule_equipment", Result: map[string]any{"success": true}}},
			ConfidenceScore:     0.85,
			RequiresHumanReview: false,
		},
	}
	r := newChatRouter(fake)

	w := postJSON(r, "/chat", `{"query":"book the centrifuge","customer_id":"cust-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "book the centrifuge", fake.lastQuery)
	assert.Equal(t, "cust-1", fake.lastCustomerID)

	var got models.DispatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "The centrifuge is booked.", got.Response)
	assert.InDelta(t, 0.85, got.ConfidenceScore, 1e-9)
	assert.Len(t, got.ActionsTaken, 1)
	assert.False(t, got.RequiresHumanReview)
}

func TestHandleChatRejectsMissingFields(t *testing.T) {
	r := newChatRouter(&fakeDispatchService{})

	w := postJSON(r, "/chat", `{"query":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatMapsErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error", dispatch.NewValidationError("schedule_equipment", "missing equipment_id"), http.StatusBadRequest},
		{"oracle error", &dispatch.OracleError{Err: assert.AnError}, http.StatusBadGateway},
		{"unexpected error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newChatRouter(&fakeDispatchService{err: tc.err})
			w := postJSON(r, "/chat", `{"query":"q","customer_id":"c"}`)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
