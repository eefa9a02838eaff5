package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/integrations/reservationgateway"
	"github.com/m04kA/SMC-WashBooking/internal/session"
	"github.com/m04kA/SMC-WashBooking/pkg/logger"
)

const usage = "usage: booker [slots|book|list|cancel] [flags]"

// options общие флаги всех команд
type options struct {
	gateway  string
	token    string
	email    string
	role     string
	service  string
	date     string
	timeout  time.Duration
	logLevel string
}

func registerCommon(fs *flag.FlagSet) *options {
	opts := &options{}
	fs.StringVar(&opts.gateway, "gateway", "http://localhost:8080/api/v1", "reservation gateway base URL")
	fs.StringVar(&opts.token, "token", os.Getenv("BOOKER_TOKEN"), "bearer token (default $BOOKER_TOKEN)")
	fs.StringVar(&opts.email, "email", "", "signed-in user email")
	fs.StringVar(&opts.role, "role", string(domain.RoleUser), "signed-in user role (user|admin)")
	fs.StringVar(&opts.service, "service", string(domain.KindLavage), "service kind (lavage|tolerie|polissage|detailing)")
	fs.StringVar(&opts.date, "date", "", "date (YYYY-MM-DD)")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "gateway request timeout")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	return opts
}

// env собранные зависимости команды
type env struct {
	kind   domain.ServiceKind
	date   time.Time
	store  *session.Store
	client *reservationgateway.Client
	log    *logger.Logger
}

func (o *options) build(needDate bool) (*env, error) {
	kind, err := domain.ParseServiceKind(o.service)
	if err != nil {
		return nil, fmt.Errorf("service %q: %w", o.service, err)
	}

	var date time.Time
	if needDate {
		if o.date == "" {
			return nil, fmt.Errorf("date is required")
		}
		date, err = time.ParseInLocation(domain.DateFormat, o.date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("date %q: %w", o.date, err)
		}
	}

	log, err := logger.New("", o.logLevel)
	if err != nil {
		return nil, err
	}

	// Пустой email означает, что пользователь не вошёл
	store := session.NewStore()
	store.SignIn(session.Identity{
		Email: o.email,
		Role:  domain.Role(o.role),
		Token: o.token,
	})

	return &env{
		kind:   kind,
		date:   date,
		store:  store,
		client: reservationgateway.NewClient(o.gateway, o.timeout, store, log),
		log:    log,
	}, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "slots":
		err = slotsCmd(os.Args[2:])
	case "book":
		err = bookCmd(os.Args[2:])
	case "list":
		err = listCmd(os.Args[2:])
	case "cancel":
		err = cancelCmd(os.Args[2:])
	default:
		fmt.Println("unknown command:", cmd)
		fmt.Println(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
