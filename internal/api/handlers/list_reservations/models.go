package list_reservations

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-WashBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос календаря из query параметров from, to, verified
func ToServiceRequest(kind domain.ServiceKind, query url.Values) (*models.ListReservationsRequest, error) {
	from, err := handlers.ParseOptionalDate(query.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := handlers.ParseOptionalDate(query.Get("to"))
	if err != nil {
		return nil, err
	}

	req := &models.ListReservationsRequest{
		Kind: kind,
		From: from,
		To:   to,
	}

	if raw := query.Get("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.Verified = &verified
	}

	return req, nil
}
