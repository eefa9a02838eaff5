package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-WashBooking/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	got *createReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	price := 15.0
	return &createReservation.Response{Reservation: &domain.Reservation{
		ID:          9,
		Kind:        req.Kind,
		Date:        req.Date,
		Hour:        req.Hour,
		SubOption:   req.SubOption,
		VehicleType: domain.VehicleCar,
		Vehicle:     req.Vehicle,
		Price:       &price,
		UserEmail:   req.UserEmail,
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"date":"2026-11-10","hour":"09:30","type":"voiture","lavageType":"rapide","price":1,
"user":{"email":"someone@example.com"},
"voiture":{"name":"Renault","model":"Clio","year":"2019","matricule":"AB-123-CD","taille":"berline"}}`

func serve(t *testing.T, uc *fakeUseCase, principal *middleware.Principal, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/{service}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *principal))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, &middleware.Principal{Email: "client@example.com", Role: domain.RoleUser}, "/lavages", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.KindLavage, uc.got.Kind)
	assert.Equal(t, "client@example.com", uc.got.UserEmail, "non-admin cannot book for someone else")
	assert.Equal(t, domain.WashRapide, uc.got.SubOption)
	assert.Equal(t, domain.VehicleCar, uc.got.VehicleType)
	assert.Equal(t, "9:30", uc.got.Hour.String())
	assert.Equal(t, 1.0, *uc.got.ClientPrice)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, 15.0, *resp.Price)
	assert.Equal(t, "AB-123-CD", resp.Voiture.Plate)
}

func TestHandle_AdminBooksForClient(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, &middleware.Principal{Email: "boss@example.com", Role: domain.RoleAdmin}, "/lavages", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "someone@example.com", uc.got.UserEmail)
}

func TestHandle_Errors(t *testing.T) {
	user := &middleware.Principal{Email: "client@example.com", Role: domain.RoleUser}

	tests := []struct {
		name      string
		principal *middleware.Principal
		path      string
		payload   string
		ucErr     error
		status    int
		message   string
	}{
		{name: "conflict", principal: user, path: "/lavages", payload: body, ucErr: createReservation.ErrSlotNotAvailable, status: http.StatusConflict, message: "Ce créneau est déjà réservé."},
		{name: "no token", path: "/lavages", payload: body, status: http.StatusUnauthorized},
		{name: "unknown service", principal: user, path: "/vidange", payload: body, status: http.StatusNotFound},
		{name: "bad hour", principal: user, path: "/lavages", payload: `{"date":"2026-11-10","hour":"25:00"}`, status: http.StatusBadRequest, message: msgInvalidHour},
		{name: "bad date", principal: user, path: "/lavages", payload: `{"date":"10/11/2026","hour":"9:00"}`, status: http.StatusBadRequest, message: handlers.MsgInvalidDate},
		{name: "color", principal: user, path: "/tolerie", payload: body, ucErr: createReservation.ErrColorRequired, status: http.StatusBadRequest, message: msgColorRequired},
		{name: "internal", principal: user, path: "/detailing", payload: body, ucErr: createReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.ucErr}, tt.principal, tt.path, tt.payload)
			assert.Equal(t, tt.status, rec.Code)

			if tt.message != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.message, resp.Message)
			}
		})
	}
}
