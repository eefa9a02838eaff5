package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WashBooking/internal/booking"
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// printNavigator печатает переходы вместо смены экрана
type printNavigator struct{}

func (printNavigator) ToSignIn()       { fmt.Println("-> /signin") }
func (printNavigator) ToReservations() { fmt.Println("-> /reservations") }
func (printNavigator) ToDashboard()    { fmt.Println("-> /dashboard") }

func newController(e *env) (*booking.Controller, error) {
	cfg, err := booking.ConfigFor(e.kind)
	if err != nil {
		return nil, err
	}
	return booking.NewController(cfg, e.client, e.store, printNavigator{}, e.log), nil
}

func slotsCmd(args []string) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	opts := registerCommon(fs)
	remote := fs.Bool("remote", false, "print the grid computed by the gateway instead of the local one")
	_ = fs.Parse(args)

	e, err := opts.build(true)
	if err != nil {
		return err
	}
	defer e.log.Close()

	ctx := context.Background()

	if *remote {
		view, err := e.client.AvailableSlots(ctx, e.kind, e.date)
		if err != nil {
			return err
		}
		printSlots(view.Slots)
		fmt.Printf("%d free\n", view.FreeCount())
		return nil
	}

	ctrl, err := newController(e)
	if err != nil {
		return err
	}
	if err := ctrl.SelectDate(ctx, e.date); err != nil {
		printSnapshot(ctrl.Snapshot())
		return err
	}
	printSnapshot(ctrl.Snapshot())
	return nil
}

func bookCmd(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	opts := registerCommon(fs)
	hour := fs.String("hour", "", "slot time (H:MM)")
	option := fs.String("option", "", "lavage: rapide|express, polissage: complete|nb_pieces")
	vehicleType := fs.String("vehicle-type", "", "lavage: voiture|moto")
	name := fs.String("name", "", "vehicle brand")
	model := fs.String("model", "", "car model")
	year := fs.String("year", "", "car year")
	plate := fs.String("plate", "", "car plate")
	size := fs.String("size", "", "size class (citadine|berline|commercial|pickup, moto: petit|grande)")
	color := fs.String("color", "", "tolerie: paint color")
	pieces := fs.Int("pieces", 0, "polissage nb_pieces: piece count")
	_ = fs.Parse(args)

	if *hour == "" {
		return fmt.Errorf("hour is required")
	}
	slot, err := types.NewTimeStringFromString(*hour)
	if err != nil {
		return fmt.Errorf("hour %q: %w", *hour, err)
	}

	e, err := opts.build(true)
	if err != nil {
		return err
	}
	defer e.log.Close()

	ctrl, err := newController(e)
	if err != nil {
		return err
	}
	if !ctrl.Open() {
		return nil
	}

	ctx := context.Background()
	if err := ctrl.SelectDate(ctx, e.date); err != nil {
		printSnapshot(ctrl.Snapshot())
		return err
	}

	form := ctrl.Snapshot().Form
	form.Hour = slot
	if *option != "" {
		form.SubOption = domain.SubOption(*option)
	}
	if *vehicleType != "" {
		form.VehicleType = domain.VehicleType(*vehicleType)
	}
	form.Vehicle.Name = *name
	form.Vehicle.Model = *model
	form.Vehicle.Year = *year
	form.Vehicle.Plate = *plate
	form.Moto.Name = *name
	if *size != "" {
		if form.VehicleType == domain.VehicleMoto {
			form.Moto.SizeClass = domain.SizeClass(*size)
		} else {
			form.Vehicle.SizeClass = domain.SizeClass(*size)
		}
	}
	form.Color = *color
	form.PieceCount = *pieces

	if err := ctrl.UpdateForm(form); err != nil {
		return err
	}

	created, err := ctrl.Submit(ctx)
	printSnapshot(ctrl.Snapshot())
	if err != nil {
		return err
	}
	fmt.Printf("Réservation #%d: %s %s %s\n", created.ID, e.kind, created.Date.Format(domain.DateFormat), created.Hour)
	return nil
}

func listCmd(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	opts := registerCommon(fs)
	_ = fs.Parse(args)

	e, err := opts.build(false)
	if err != nil {
		return err
	}
	defer e.log.Close()

	if opts.email == "" {
		return fmt.Errorf("email is required")
	}

	list, err := e.client.ListByUser(context.Background(), e.kind, opts.email)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("(aucune réservation)")
		return nil
	}
	for _, r := range list {
		fmt.Printf("#%d  %s %-5s  %s  %s\n", r.ID, r.Date.Format(domain.DateFormat), r.Hour, formatPrice(r.Price), verifiedLabel(r.Verified))
	}
	return nil
}

func cancelCmd(args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	opts := registerCommon(fs)
	id := fs.Int64("id", 0, "reservation id")
	_ = fs.Parse(args)

	if *id <= 0 {
		return fmt.Errorf("id is required")
	}

	e, err := opts.build(false)
	if err != nil {
		return err
	}
	defer e.log.Close()

	if err := e.client.Delete(context.Background(), e.kind, *id); err != nil {
		return err
	}
	fmt.Printf("Réservation #%d supprimée\n", *id)
	return nil
}

func printSnapshot(s booking.Snapshot) {
	fmt.Printf("%s  %s  state=%s\n", s.Kind, s.Date.Format(domain.DateFormat), s.State)
	printSlots(s.Slots)
	if s.Price != nil {
		fmt.Printf("prix: %s\n", formatPrice(s.Price))
	} else if s.PriceErr != nil {
		fmt.Printf("prix: indisponible (%v)\n", s.PriceErr)
	}
	if s.Message != "" {
		fmt.Println(s.Message)
	}
}

func printSlots(list []domain.Slot) {
	var b strings.Builder
	for i, slot := range list {
		mark := " "
		if slot.Booked {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %-5s", mark, slot.Time)
		if (i+1)%6 == 0 || i == len(list)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	fmt.Print(b.String())
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f TND", *p)
}

func verifiedLabel(v bool) string {
	if v {
		return "vérifiée"
	}
	return "en attente"
}
