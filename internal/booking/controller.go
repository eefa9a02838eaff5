package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/session"
	"github.com/m04kA/SMC-WashBooking/internal/slots"
	"github.com/m04kA/SMC-WashBooking/pkg/ptr"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

const defaultTimeout = 10 * time.Second

// Option настраивает Controller
type Option func(*Controller)

// WithTimeout задаёт таймаут запросов к шлюзу
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Controller ведёт одну форму бронирования: выбор даты, загрузку занятых слотов,
// расчёт цены и отправку. Безопасен для конкурентного использования.
type Controller struct {
	cfg       ServiceConfig
	gateway   Gateway
	session   Session
	navigator Navigator
	logger    Logger
	timeout   time.Duration

	mu       sync.Mutex
	state    State
	date     time.Time
	hasDate  bool
	seq      uint64
	view     *domain.AvailabilityView
	form     Form
	price    *float64
	priceErr error
	message  string
}

// NewController создает новый контроллер формы бронирования
func NewController(cfg ServiceConfig, gateway Gateway, sess Session, navigator Navigator, logger Logger, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		gateway:   gateway,
		session:   sess,
		navigator: navigator,
		logger:    logger,
		timeout:   defaultTimeout,
		state:     StateIdle,
		form:      cfg.Defaults,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recomputePrice()
	return c
}

// Open вызывается при открытии формы. Администраторы перенаправляются в панель управления.
// Возвращает false, если форма не должна отображаться.
func (c *Controller) Open() bool {
	identity, ok := c.session.Current()
	if ok && identity.IsAdmin() {
		c.logger.Info("Open: kind=%s, admin %s redirected to dashboard", c.cfg.Kind, identity.Email)
		c.navigator.ToDashboard()
		return false
	}
	return true
}

// SelectDate выбирает дату и загружает занятые слоты. Блокирует до ответа шлюза.
// Если за время ожидания была выбрана другая дата, ответ отбрасывается с ErrSuperseded.
// После успешной отправки форма закрыта: новая бронь начинается с нового контроллера.
func (c *Controller) SelectDate(ctx context.Context, date time.Time) error {
	date = truncateDay(date)

	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return ErrSubmitInProgress
	case StateSubmitted:
		c.mu.Unlock()
		return ErrAlreadySubmitted
	}
	c.seq++
	requestSeq := c.seq
	c.date = date
	c.hasDate = true
	c.state = StateAwaitingSlotData
	c.view = nil
	c.message = ""
	// Слот с прошлой даты может быть занят на новой
	c.form.Hour = types.TimeString{}
	c.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.gateway.BookedHours(fetchCtx, c.cfg.Kind, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if requestSeq != c.seq || !c.date.Equal(date) {
		c.logger.Info("SelectDate: kind=%s, discarding stale response for %s", c.cfg.Kind, date.Format(domain.DateFormat))
		return ErrSuperseded
	}

	if err != nil {
		c.logger.Error("SelectDate: kind=%s, date=%s, failed to load booked hours: %v", c.cfg.Kind, date.Format(domain.DateFormat), err)
		c.state = StateFailed
		c.message = MsgLoadFailed
		return fmt.Errorf("%w: %v", ErrAvailabilityFailed, err)
	}

	hours, rejected := slots.ParseBookedHours(raw)
	if len(rejected) > 0 {
		c.logger.Warn("SelectDate: kind=%s, ignoring malformed hours %v", c.cfg.Kind, rejected)
	}

	annotated, err := slots.Annotate(c.cfg.Grid, hours)
	if err != nil {
		c.logger.Error("SelectDate: kind=%s, failed to build slot grid: %v", c.cfg.Kind, err)
		c.state = StateFailed
		c.message = MsgLoadFailed
		return fmt.Errorf("%w: %v", ErrAvailabilityFailed, err)
	}

	c.view = &domain.AvailabilityView{
		Date:  date,
		Kind:  c.cfg.Kind,
		Slots: annotated,
	}
	c.state = StateReady
	return nil
}

// UpdateForm заменяет поля формы и пересчитывает цену
func (c *Controller) UpdateForm(form Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	c.form = form
	c.recomputePrice()
	return nil
}

// Price возвращает текущую рассчитанную цену
func (c *Controller) Price() (*float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyPrice(c.price), c.priceErr
}

// Submit проверяет форму и отправляет ровно один запрос на создание бронирования.
// Без авторизации перенаправляет на вход и не обращается к шлюзу.
func (c *Controller) Submit(ctx context.Context) (*domain.Reservation, error) {
	identity, ok := c.session.Current()
	if !ok {
		c.logger.Info("Submit: kind=%s, no identity, redirecting to sign-in", c.cfg.Kind)
		c.navigator.ToSignIn()
		return nil, ErrSignInRequired
	}

	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	case StateSubmitted:
		c.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if err := c.validate(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	draft := c.buildDraft(identity)
	c.state = StateSubmitting
	c.message = ""
	c.mu.Unlock()

	submitCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	created, err := c.gateway.Create(submitCtx, c.cfg.Kind, draft)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.message = MsgSubmitFailed
		var sm serverMessage
		if errors.As(err, &sm) && sm.ServerMessage() != "" {
			c.message = sm.ServerMessage()
		}
		var ce conflictError
		if errors.As(err, &ce) && ce.IsConflict() {
			c.markBooked(draft)
		}
		c.mu.Unlock()
		c.logger.Error("Submit: kind=%s, user=%s, date=%s, hour=%s: %v",
			c.cfg.Kind, identity.Email, draft.Date.Format(domain.DateFormat), draft.Hour, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	c.state = StateSubmitted
	c.mu.Unlock()

	c.logger.Info("Submit: kind=%s, user=%s, reservation created for %s %s",
		c.cfg.Kind, identity.Email, draft.Date.Format(domain.DateFormat), draft.Hour)
	c.navigator.ToReservations()
	return created, nil
}

// Snapshot возвращает согласованную копию состояния формы
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Kind:      c.cfg.Kind,
		State:     c.state,
		Date:      c.date,
		HasDate:   c.hasDate,
		Form:      c.form,
		Price:     copyPrice(c.price),
		PriceErr:  c.priceErr,
		Message:   c.message,
		CanSubmit: c.state != StateSubmitting && c.state != StateSubmitted && c.validate() == nil,
	}
	if c.view != nil {
		snap.Slots = make([]domain.Slot, len(c.view.Slots))
		copy(snap.Slots, c.view.Slots)
	}
	return snap
}

// recomputePrice вызывается под мьютексом
func (c *Controller) recomputePrice() {
	if c.cfg.Price == nil {
		c.price, c.priceErr = nil, nil
		return
	}
	c.price, c.priceErr = c.cfg.Price(c.form)
}

// markBooked помечает слот занятым после ответа о конфликте, если вид ещё относится к той же дате
func (c *Controller) markBooked(draft *domain.Reservation) {
	if c.view == nil || !c.view.Date.Equal(draft.Date) {
		return
	}
	for i := range c.view.Slots {
		if c.view.Slots[i].Time.Equal(draft.Hour) {
			c.view.Slots[i].Booked = true
		}
	}
}

func (c *Controller) buildDraft(identity session.Identity) *domain.Reservation {
	f := c.form
	draft := &domain.Reservation{
		Kind:      c.cfg.Kind,
		Date:      c.date,
		Hour:      f.Hour,
		UserEmail: identity.Email,
		Price:     copyPrice(c.price),
	}

	switch c.cfg.Kind {
	case domain.KindLavage:
		draft.SubOption = f.SubOption
		draft.VehicleType = f.VehicleType
		if f.VehicleType == domain.VehicleMoto {
			draft.Moto = &domain.MotoProfile{Name: f.Moto.Name, SizeClass: f.Moto.SizeClass}
		} else {
			draft.VehicleType = domain.VehicleCar
			draft.Vehicle = ptr.Ptr(f.Vehicle)
		}
	case domain.KindPolissage:
		draft.SubOption = f.SubOption
		draft.Vehicle = ptr.Ptr(f.Vehicle)
		if f.SubOption == domain.PolishPerPieces {
			draft.PieceCount = ptr.Ptr(f.PieceCount)
		}
	case domain.KindTolerie:
		draft.Vehicle = ptr.Ptr(f.Vehicle)
		draft.Color = ptr.Ptr(f.Color)
	default:
		draft.Vehicle = ptr.Ptr(f.Vehicle)
	}

	return draft
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return ptr.Ptr(*p)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
