package list_booked_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type fakeService struct {
	kind domain.ServiceKind
	date time.Time
}

func (f *fakeService) ListByDate(_ context.Context, kind domain.ServiceKind, date time.Time) ([]models.ReservationResponse, error) {
	f.kind, f.date = kind, date
	return []models.ReservationResponse{{ID: 1, Date: "2026-11-10", Hour: "8:00"}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/{service}/by-date", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lavages/by-date", strings.NewReader(payload)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"date":"2026-11-10"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.KindLavage, svc.kind)
	assert.Equal(t, time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), svc.date)
	assert.Contains(t, rec.Body.String(), `"hour":"8:00"`)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"date":"hier"}`).Code)
}
