package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// Общие сообщения об ошибках параметров
const (
	MsgUnknownService  = "Service inconnu."
	MsgInvalidDate     = "Date invalide, format attendu AAAA-MM-JJ."
	MsgMissingDate     = "La date est obligatoire."
	MsgInvalidID       = "Identifiant de réservation invalide."
	MsgInvalidBody     = "Corps de requête invalide."
	MsgSignInRequired  = "Veuillez vous connecter."
	MsgAccessForbidden = "Accès refusé."
)

// ServiceKind извлекает вид услуги из переменной пути {service}
func ServiceKind(r *http.Request) (domain.ServiceKind, error) {
	return domain.ParseCollection(mux.Vars(r)["service"])
}

// ReservationID извлекает положительный {id} из пути
func ReservationID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC)
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, s, time.UTC)
}

// ParseOptionalDate разбирает необязательную дату query-параметра
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
