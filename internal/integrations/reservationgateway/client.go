package reservationgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// Client клиент REST API сервиса бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса бронирований
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// BookedHours возвращает часы забронированных слотов на дату
func (c *Client) BookedHours(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]string, error) {
	var reservations []reservationDTO
	body := byDateRequest{Date: date.Format(domain.DateFormat)}
	if err := c.do(ctx, http.MethodPost, "/"+kind.Collection()+"/by-date", body, &reservations); err != nil {
		return nil, err
	}

	hours := make([]string, 0, len(reservations))
	for _, r := range reservations {
		hours = append(hours, r.Hour)
	}

	c.log.Info("BookedHours: kind=%s, date=%s, booked=%d", kind, body.Date, len(hours))
	return hours, nil
}

// AvailableSlots возвращает сетку слотов, уже размеченную сервером
func (c *Client) AvailableSlots(ctx context.Context, kind domain.ServiceKind, date time.Time) (*domain.AvailabilityView, error) {
	query := url.Values{"date": {date.Format(domain.DateFormat)}}
	var dto availabilityDTO
	if err := c.do(ctx, http.MethodGet, "/"+kind.Collection()+"/available-slots?"+query.Encode(), nil, &dto); err != nil {
		return nil, err
	}

	view := &domain.AvailabilityView{
		Date:  date,
		Kind:  kind,
		Slots: make([]domain.Slot, 0, len(dto.Slots)),
	}
	for _, s := range dto.Slots {
		hour, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: slot time %q: %v", ErrInvalidResponse, s.Time, err)
		}
		view.Slots = append(view.Slots, domain.Slot{Time: hour, Booked: s.Booked})
	}
	return view, nil
}

// Create создаёт бронирование
func (c *Client) Create(ctx context.Context, kind domain.ServiceKind, draft *domain.Reservation) (*domain.Reservation, error) {
	var created reservationDTO
	if err := c.do(ctx, http.MethodPost, "/"+kind.Collection(), fromDomain(draft), &created); err != nil {
		return nil, err
	}

	reservation, err := created.toDomain(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Create: kind=%s, reservation id=%d created for %s", kind, reservation.ID, reservation.UserEmail)
	return reservation, nil
}

// ListByUser возвращает бронирования пользователя
func (c *Client) ListByUser(ctx context.Context, kind domain.ServiceKind, email string) ([]*domain.Reservation, error) {
	var list []reservationDTO
	if err := c.do(ctx, http.MethodGet, "/"+kind.Collection()+"/user/"+url.PathEscape(email), nil, &list); err != nil {
		return nil, err
	}

	result := make([]*domain.Reservation, 0, len(list))
	for _, dto := range list {
		r, err := dto.toDomain(kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		result = append(result, r)
	}
	return result, nil
}

// Delete удаляет бронирование
func (c *Client) Delete(ctx context.Context, kind domain.ServiceKind, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", kind.Collection(), id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if identity, ok := c.tokens.Current(); ok && identity.Token != "" {
			req.Header.Set("Authorization", "Bearer "+identity.Token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		c.log.Warn("%s %s - status=%d, request_id=%s, body=%s", method, path, resp.StatusCode, requestID, string(raw))
		return &APIError{Status: resp.StatusCode, Message: e.text()}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
