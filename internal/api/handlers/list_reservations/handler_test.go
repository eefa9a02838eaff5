package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

type fakeService struct {
	got *models.ListReservationsRequest
	err error
}

func (f *fakeService) ListAll(_ context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	f.got = req
	return []models.ReservationResponse{}, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/{service}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_Filter(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/polissage?from=2026-11-01&to=2026-11-30&verified=false")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, domain.KindPolissage, svc.got.Kind)
	assert.Equal(t, "2026-11-01", svc.got.From.Format(domain.DateFormat))
	assert.Equal(t, "2026-11-30", svc.got.To.Format(domain.DateFormat))
	require.NotNil(t, svc.got.Verified)
	assert.False(t, *svc.got.Verified)
}

func TestHandle_BadFilter(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/polissage?from=demain").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/polissage?verified=peut-etre").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: reservations.ErrInvalidTimeRange}, "/polissage").Code)
}
