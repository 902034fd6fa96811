package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(nil).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

// Every case here fails request parsing, so the handler never reaches the
// service layer.
func TestGetAvailableSlotsInputValidation(t *testing.T) {
	router := newTestRouter()
	businessID := uuid.New().String()

	tests := []struct {
		name     string
		url      string
		wantBody string
	}{
		{
			"missing date",
			"/api/v1/businesses/" + businessID + "/slots",
			"date is required",
		},
		{
			"missing duration and service_id",
			"/api/v1/businesses/" + businessID + "/slots?date=2026-01-05",
			"duration or service_id is required",
		},
		{
			"non-numeric duration",
			"/api/v1/businesses/" + businessID + "/slots?date=2026-01-05&duration=abc",
			"invalid duration",
		},
		{
			"bad business id",
			"/api/v1/businesses/not-a-uuid/slots?date=2026-01-05&duration=30",
			"invalid business ID",
		},
		{
			"bad service id",
			"/api/v1/businesses/" + businessID + "/slots?date=2026-01-05&service_id=nope",
			"invalid service ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
