package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/session"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type bookedResponse struct {
	hours []string
	err   error
}

type fakeGateway struct {
	mu          sync.Mutex
	bookedCalls int
	createCalls int
	lastDraft   *domain.Reservation

	// если pending задан, BookedHours ждёт ответа из канала для даты
	pending map[string]chan bookedResponse
	started chan string

	hours     []string
	hoursErr  error
	createErr error
	block     chan struct{}
}

func (g *fakeGateway) BookedHours(ctx context.Context, _ domain.ServiceKind, date time.Time) ([]string, error) {
	key := date.Format(domain.DateFormat)

	g.mu.Lock()
	g.bookedCalls++
	ch := g.pending[key]
	g.mu.Unlock()

	if ch != nil {
		g.started <- key
		select {
		case resp := <-ch:
			return resp.hours, resp.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return g.hours, g.hoursErr
}

func (g *fakeGateway) Create(ctx context.Context, _ domain.ServiceKind, draft *domain.Reservation) (*domain.Reservation, error) {
	g.mu.Lock()
	g.createCalls++
	g.lastDraft = draft
	block := g.block
	g.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.createErr != nil {
		return nil, g.createErr
	}
	created := *draft
	created.ID = 42
	return &created, nil
}

func (g *fakeGateway) calls() (booked, create int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bookedCalls, g.createCalls
}

type fakeNavigator struct {
	mu           sync.Mutex
	signIn       int
	reservations int
	dashboard    int
}

func (n *fakeNavigator) ToSignIn()       { n.mu.Lock(); n.signIn++; n.mu.Unlock() }
func (n *fakeNavigator) ToReservations() { n.mu.Lock(); n.reservations++; n.mu.Unlock() }
func (n *fakeNavigator) ToDashboard()    { n.mu.Lock(); n.dashboard++; n.mu.Unlock() }

type fakeAPIError struct {
	message  string
	conflict bool
}

func (e *fakeAPIError) Error() string         { return "gateway: " + e.message }
func (e *fakeAPIError) ServerMessage() string { return e.message }
func (e *fakeAPIError) IsConflict() bool      { return e.conflict }

func signedIn(role domain.Role) *session.Store {
	store := session.NewStore()
	store.SignIn(session.Identity{Email: "client@example.com", Role: role, Token: "t"})
	return store
}

func newController(t *testing.T, kind domain.ServiceKind, gw *fakeGateway, sess Session, nav *fakeNavigator, opts ...Option) *Controller {
	t.Helper()
	cfg, err := ConfigFor(kind)
	require.NoError(t, err)
	return NewController(cfg, gw, sess, nav, nopLogger{}, opts...)
}

func date(day int) time.Time {
	return time.Date(2026, time.November, day, 0, 0, 0, 0, time.UTC)
}

func filledLavage(hour string) Form {
	return Form{
		Hour:        types.MustTimeString(hour),
		SubOption:   domain.WashRapide,
		VehicleType: domain.VehicleCar,
		Vehicle: domain.VehicleProfile{
			Name:      "Renault",
			Model:     "Clio",
			Year:      "2019",
			Plate:     "AB-123-CD",
			SizeClass: domain.SizeBerline,
		},
	}
}

func TestController_StaleResponseIsDiscarded(t *testing.T) {
	d1, d2 := date(10), date(11)
	gw := &fakeGateway{
		pending: map[string]chan bookedResponse{
			d1.Format(domain.DateFormat): make(chan bookedResponse),
			d2.Format(domain.DateFormat): make(chan bookedResponse),
		},
		started: make(chan string, 2),
	}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	d1Err := make(chan error, 1)
	go func() { d1Err <- c.SelectDate(context.Background(), d1) }()
	require.Equal(t, d1.Format(domain.DateFormat), <-gw.started)

	d2Err := make(chan error, 1)
	go func() { d2Err <- c.SelectDate(context.Background(), d2) }()
	require.Equal(t, d2.Format(domain.DateFormat), <-gw.started)

	gw.pending[d2.Format(domain.DateFormat)] <- bookedResponse{hours: []string{"9:00"}}
	require.NoError(t, <-d2Err)

	// D1 отвечает позже D2
	gw.pending[d1.Format(domain.DateFormat)] <- bookedResponse{hours: []string{"8:00"}}
	assert.ErrorIs(t, <-d1Err, ErrSuperseded)

	snap := c.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.True(t, snap.Date.Equal(d2))
	for _, s := range snap.Slots {
		switch s.Time.String() {
		case "9:00":
			assert.True(t, s.Booked)
		case "8:00":
			assert.False(t, s.Booked)
		}
	}
}

func TestController_SelectDateClearsPreviousView(t *testing.T) {
	d1, d2 := date(10), date(11)
	gw := &fakeGateway{
		pending: map[string]chan bookedResponse{d2.Format(domain.DateFormat): make(chan bookedResponse)},
		started: make(chan string, 1),
	}
	c := newController(t, domain.KindDetailing, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	require.NoError(t, c.SelectDate(context.Background(), d1))
	require.Len(t, c.Snapshot().Slots, 2)

	done := make(chan error, 1)
	go func() { done <- c.SelectDate(context.Background(), d2) }()
	<-gw.started

	snap := c.Snapshot()
	assert.Equal(t, StateAwaitingSlotData, snap.State)
	assert.Empty(t, snap.Slots)
	assert.False(t, snap.CanSubmit)

	gw.pending[d2.Format(domain.DateFormat)] <- bookedResponse{}
	require.NoError(t, <-done)
}

func TestController_FetchFailureShowsNoSlots(t *testing.T) {
	gw := &fakeGateway{hoursErr: errors.New("connection refused")}
	c := newController(t, domain.KindTolerie, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	err := c.SelectDate(context.Background(), date(10))
	require.ErrorIs(t, err, ErrAvailabilityFailed)

	snap := c.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Equal(t, MsgLoadFailed, snap.Message)
	assert.Empty(t, snap.Slots)
}

func TestController_FetchTimeout(t *testing.T) {
	d := date(10)
	gw := &fakeGateway{
		pending: map[string]chan bookedResponse{d.Format(domain.DateFormat): make(chan bookedResponse)},
		started: make(chan string, 1),
	}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{}, WithTimeout(20*time.Millisecond))

	err := c.SelectDate(context.Background(), d)
	require.ErrorIs(t, err, ErrAvailabilityFailed)
	assert.ErrorContains(t, err, context.DeadlineExceeded.Error())
	assert.Equal(t, StateFailed, c.Snapshot().State)
}

func TestController_MalformedHoursAreIgnored(t *testing.T) {
	gw := &fakeGateway{hours: []string{"08:00", "garbage", "25:00"}}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	require.NoError(t, c.SelectDate(context.Background(), date(10)))

	booked := 0
	for _, s := range c.Snapshot().Slots {
		if s.Booked {
			booked++
			assert.Equal(t, "8:00", s.Time.String())
		}
	}
	assert.Equal(t, 1, booked)
}

func TestController_SubmitWithoutIdentityRedirects(t *testing.T) {
	gw := &fakeGateway{}
	nav := &fakeNavigator{}
	c := newController(t, domain.KindLavage, gw, session.NewStore(), nav)
	require.NoError(t, c.UpdateForm(filledLavage("9:00")))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSignInRequired)

	booked, created := gw.calls()
	assert.Zero(t, booked)
	assert.Zero(t, created)
	assert.Equal(t, 1, nav.signIn)
}

func TestController_SubmitSuccess(t *testing.T) {
	gw := &fakeGateway{hours: []string{"8:00"}}
	nav := &fakeNavigator{}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), nav)

	require.NoError(t, c.SelectDate(context.Background(), date(10)))
	require.NoError(t, c.UpdateForm(filledLavage("9:30")))
	require.True(t, c.Snapshot().CanSubmit)

	created, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	_, createCalls := gw.calls()
	assert.Equal(t, 1, createCalls)
	assert.Equal(t, 1, nav.reservations)
	assert.Equal(t, StateSubmitted, c.Snapshot().State)

	draft := gw.lastDraft
	require.NotNil(t, draft.Price)
	assert.Equal(t, 15.0, *draft.Price)
	assert.Equal(t, "client@example.com", draft.UserEmail)
	assert.Equal(t, domain.VehicleCar, draft.VehicleType)
	assert.Nil(t, draft.Moto)
	assert.Equal(t, "9:30", draft.Hour.String())

	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	assert.ErrorIs(t, c.SelectDate(context.Background(), date(11)), ErrAlreadySubmitted)
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	bookedCalls, createCalls := gw.calls()
	assert.Equal(t, 1, bookedCalls)
	assert.Equal(t, 1, createCalls)
	snap := c.Snapshot()
	assert.Equal(t, StateSubmitted, snap.State)
	assert.Equal(t, date(10), snap.Date)
}

func TestController_SubmitGuards(t *testing.T) {
	gw := &fakeGateway{hours: []string{"8:00"}}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoDateSelected)

	require.NoError(t, c.SelectDate(context.Background(), date(10)))

	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm, "hour not chosen")

	require.NoError(t, c.UpdateForm(filledLavage("8:00")))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSlotUnavailable, "booked slot")

	require.NoError(t, c.UpdateForm(filledLavage("8:15")))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSlotUnavailable, "off-grid slot")

	form := filledLavage("9:00")
	form.Vehicle.Plate = " "
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm, "missing plate")

	form = filledLavage("9:00")
	form.SubOption = ""
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm, "price not resolved")

	form = filledLavage("9:00")
	form.Vehicle.Year = "2019-model-year"
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm, "year too long")

	form = filledLavage("9:00")
	form.Vehicle.Plate = strings.Repeat("A", domain.MaxPlateLength+1)
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm, "plate too long")

	_, createCalls := gw.calls()
	assert.Zero(t, createCalls)
}

func TestController_SubmitConflictSurfacesServerMessage(t *testing.T) {
	gw := &fakeGateway{createErr: &fakeAPIError{message: "Ce créneau est déjà réservé.", conflict: true}}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	require.NoError(t, c.SelectDate(context.Background(), date(10)))
	require.NoError(t, c.UpdateForm(filledLavage("10:00")))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmitFailed)

	snap := c.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Equal(t, "Ce créneau est déjà réservé.", snap.Message)
	assert.Equal(t, "10:00", snap.Form.Hour.String(), "form stays populated")
	assert.False(t, snap.CanSubmit, "slot is now marked booked")
}

func TestController_SubmitFailureFallbackMessage(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("connection reset")}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	require.NoError(t, c.SelectDate(context.Background(), date(10)))
	require.NoError(t, c.UpdateForm(filledLavage("10:00")))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmitFailed)
	assert.Equal(t, MsgSubmitFailed, c.Snapshot().Message)

	// после ошибки повторная отправка разрешена пользователем
	gw.createErr = nil
	_, err = c.Submit(context.Background())
	require.NoError(t, err)
}

func TestController_SubmitInProgress(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{})}
	c := newController(t, domain.KindLavage, gw, signedIn(domain.RoleUser), &fakeNavigator{})

	require.NoError(t, c.SelectDate(context.Background(), date(10)))
	require.NoError(t, c.UpdateForm(filledLavage("10:00")))

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateSubmitting
	}, time.Second, 5*time.Millisecond)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, c.UpdateForm(filledLavage("11:00")), ErrSubmitInProgress)
	assert.ErrorIs(t, c.SelectDate(context.Background(), date(11)), ErrSubmitInProgress)

	close(gw.block)
	require.NoError(t, <-done)

	_, createCalls := gw.calls()
	assert.Equal(t, 1, createCalls)
}

func TestController_PriceRecomputedOnEveryChange(t *testing.T) {
	c := newController(t, domain.KindLavage, &fakeGateway{}, signedIn(domain.RoleUser), &fakeNavigator{})

	price, err := c.Price()
	require.NoError(t, err)
	assert.Equal(t, 13.0, *price, "defaults: citadine rapide")

	form := filledLavage("9:00")
	form.VehicleType = domain.VehicleMoto
	form.Moto = domain.MotoProfile{Name: "Yamaha", SizeClass: domain.SizeMotoLarge}
	require.NoError(t, c.UpdateForm(form))
	price, err = c.Price()
	require.NoError(t, err)
	assert.Equal(t, 10.0, *price)

	form.SubOption = domain.WashExpress
	require.NoError(t, c.UpdateForm(form))
	price, _ = c.Price()
	assert.Equal(t, 5.0, *price)
}

func TestController_PolissagePerPiece(t *testing.T) {
	gw := &fakeGateway{}
	c := newController(t, domain.KindPolissage, gw, signedIn(domain.RoleUser), &fakeNavigator{})
	require.NoError(t, c.SelectDate(context.Background(), date(10)))

	form := filledLavage("14:00")
	form.VehicleType = ""
	form.SubOption = domain.PolishPerPieces
	form.PieceCount = 3
	require.NoError(t, c.UpdateForm(form))

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, gw.lastDraft.PieceCount)
	assert.Equal(t, 3, *gw.lastDraft.PieceCount)
	assert.Equal(t, 36.0, *gw.lastDraft.Price)
}

func TestController_TolerieIsUnpricedButNeedsColor(t *testing.T) {
	gw := &fakeGateway{}
	c := newController(t, domain.KindTolerie, gw, signedIn(domain.RoleUser), &fakeNavigator{})
	require.NoError(t, c.SelectDate(context.Background(), date(10)))

	form := filledLavage("15:00")
	form.SubOption = ""
	require.NoError(t, c.UpdateForm(form))
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm)

	form.Color = strings.Repeat("r", domain.MaxColorLength+1)
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm)

	form.Color = "rouge"
	require.NoError(t, c.UpdateForm(form))
	_, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, gw.lastDraft.Price)
	require.NotNil(t, gw.lastDraft.Color)
	assert.Equal(t, "rouge", *gw.lastDraft.Color)
}

func TestController_OpenRedirectsAdmin(t *testing.T) {
	nav := &fakeNavigator{}
	c := newController(t, domain.KindDetailing, &fakeGateway{}, signedIn(domain.RoleAdmin), nav)
	assert.False(t, c.Open())
	assert.Equal(t, 1, nav.dashboard)

	nav = &fakeNavigator{}
	c = newController(t, domain.KindDetailing, &fakeGateway{}, signedIn(domain.RoleUser), nav)
	assert.True(t, c.Open())
	assert.Zero(t, nav.dashboard)
}
