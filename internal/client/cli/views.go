package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/skywhysales/skyclient/internal/client/router"
)

// Open navigates to path. The guard decides first; a denied navigation
// lands on the home view instead.
func (a *App) Open(ctx context.Context, path string) error {
	decision, route, params := a.guard.Authorize(ctx, path)
	if !decision.Allowed {
		fmt.Fprintf(a.out, "-> %s\n", decision.RedirectTo)
		a.path = decision.RedirectTo
		a.renderHome()
		return nil
	}

	a.path = path
	a.render(ctx, route, params)
	return nil
}

func (a *App) render(ctx context.Context, route *router.Route, params router.Params) {
	switch route.Name {
	case "Home":
		a.renderHome()
	case "SignUp":
		fmt.Fprintln(a.out, "Use the 'register' command to create an account.")
	case "Flights":
		a.renderFlights(ctx)
	case "Flight":
		a.renderFlight(ctx, params)
	case "Profile":
		a.renderProfile(ctx, params)
	case "Tickets":
		a.renderTickets(ctx, params)
	case "Admin":
		fmt.Fprintln(a.out, "Админ-панель: /admin/users, /admin/<kind>/<id|new>")
	case "AdminUsers":
		a.renderUsers(ctx)
	case "AdminEdit":
		a.renderAdminEdit(ctx, params)
	}
}

func (a *App) renderHome() {
	fmt.Fprintln(a.out, "SkyWhySales - поиск и покупка авиабилетов")
	fmt.Fprintln(a.out, "Routes: /flights, /signup, /profile/<id>, /tickets/<id>, /admin")
}

func (a *App) renderFlights(ctx context.Context) {
	a.flights.Load(ctx)
	if msg := a.flights.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	for _, f := range a.flights.List() {
		fmt.Fprintf(a.out, "#%d %s %s -> %s %s (%d ₽)\n",
			f.ID, f.Airline, f.DepartureAirport, f.ArrivalAirport, f.DepartureTime, f.Price)
	}
}

func (a *App) renderFlight(ctx context.Context, params router.Params) {
	id, _ := strconv.Atoi(params["id"])
	a.flights.Get(ctx, id)
	if msg := a.flights.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	f := a.flights.Current()
	fmt.Fprintf(a.out, "#%d %s %s %s -> %s %s, мест: %d, цена: %d ₽\n",
		f.ID, f.Airline, f.DepartureAirport, f.DepartureTime,
		f.ArrivalAirport, f.ArrivalTime, f.SeatsCount, f.Price)
}

func (a *App) renderProfile(ctx context.Context, params router.Params) {
	id, _ := strconv.Atoi(params["id"])
	u := a.session.FetchUser(ctx, id)
	if u == nil {
		fmt.Fprintln(a.out, a.session.Err())
		return
	}
	fmt.Fprintf(a.out, "%s <%s> %s\n", u.FullName(), u.Email, u.Phone)
}

func (a *App) renderTickets(ctx context.Context, params router.Params) {
	id, _ := strconv.Atoi(params["id"])
	a.tickets.LoadForUser(ctx, id)
	if msg := a.tickets.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	for _, t := range a.tickets.List() {
		fmt.Fprintf(a.out, "#%d рейс %d, %s, %s, %d ₽ [%s]\n",
			t.ID, t.Flight, t.Class, t.BoughtDate, t.TotalPrice, t.Status)
	}
}

func (a *App) renderUsers(ctx context.Context) {
	a.session.ListUsers(ctx)
	if msg := a.session.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}
	for _, u := range a.session.Users() {
		fmt.Fprintf(a.out, "#%d %s <%s> %s\n", u.ID, u.FullName(), u.Email, u.Role)
	}
}

// renderAdminEdit shows the record a manager is about to edit, or an empty
// form marker for "new".
func (a *App) renderAdminEdit(ctx context.Context, params router.Params) {
	kind, target := params["kind"], params["target"]
	if target == "new" {
		fmt.Fprintf(a.out, "Новая запись: %s\n", kind)
		return
	}
	id, _ := strconv.Atoi(target)

	var msg string
	switch kind {
	case "airline":
		a.airlines.Get(ctx, id)
		if msg = a.airlines.Err(); msg == "" {
			al := a.airlines.Current()
			fmt.Fprintf(a.out, "#%d %s <%s>\n", al.ID, al.Name, al.Email)
		}
	case "airport":
		a.airports.Get(ctx, id)
		if msg = a.airports.Err(); msg == "" {
			ap := a.airports.Current()
			fmt.Fprintf(a.out, "#%d %s (%s)\n", ap.ID, ap.Name, ap.City)
		}
	case "flight":
		a.flights.Get(ctx, id)
		if msg = a.flights.Err(); msg == "" {
			f := a.flights.Current()
			fmt.Fprintf(a.out, "#%d %s %s -> %s\n", f.ID, f.Airline, f.DepartureAirport, f.ArrivalAirport)
		}
	case "ticket":
		a.tickets.Get(ctx, id)
		if msg = a.tickets.Err(); msg == "" {
			tk := a.tickets.Current()
			fmt.Fprintf(a.out, "#%d рейс %d [%s]\n", tk.ID, tk.Flight, tk.Status)
		}
	}
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
}
