// Package cli is the interactive front end: a small REPL that navigates
// the route table through the guard and renders views from the stores.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/config"
	"github.com/skywhysales/skyclient/internal/client/credstore"
	"github.com/skywhysales/skyclient/internal/client/router"
	"github.com/skywhysales/skyclient/internal/client/session"
	"github.com/skywhysales/skyclient/internal/client/stores"
	"github.com/skywhysales/skyclient/internal/logging"
)

// App wires the session, guard and entity stores together for one
// interactive run.
type App struct {
	config  *config.Config
	log     logging.Logger
	creds   *credstore.SQLiteStore
	session *session.Session
	guard   *router.Guard

	airlines *stores.AirlineStore
	airports *stores.AirportStore
	flights  *stores.FlightStore
	tickets  *stores.TicketStore

	reader *bufio.Reader
	out    io.Writer
	path   string
}

// NewApp opens the credential database and builds the full client stack.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	creds, err := credstore.Open(ctx, cfg.CredentialsDSN)
	if err != nil {
		return nil, err
	}

	backend := api.New(cfg.BaseURL, cfg.RequestTimeout)
	sess := session.New(backend, creds, log)

	return &App{
		config:   cfg,
		log:      log,
		creds:    creds,
		session:  sess,
		guard:    router.NewGuard(router.DefaultTable(), sess, log),
		airlines: stores.NewAirlineStore(backend),
		airports: stores.NewAirportStore(backend),
		flights:  stores.NewFlightStore(backend),
		tickets:  stores.NewTicketStore(backend),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		path:     router.HomePath,
	}, nil
}

// Run drives the REPL until EOF or an exit command, then releases the
// credential database.
func (a *App) Run(ctx context.Context) {
	defer a.creds.Close()
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// status is what the prompt shows: current location plus who is logged in.
func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return a.path + " (" + u.Email + ")"
	}
	return a.path
}
