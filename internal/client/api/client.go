package api

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/models"
)

// UserAPI covers the account endpoints used by the session store.
//
// Contract:
//   - Authenticate: form-encoded login/password, returns the account record
//     with the password echoed back.
//   - Register: creates an account, returns the created record.
//   - ListUsers / GetUser / EditUser / DeleteUser: account administration.
//
// All methods honor context cancellation and return either a *Error (the
// backend rejected the request) or a wrapped transport error.
type UserAPI interface {
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
	Register(ctx context.Context, user models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	EditUser(ctx context.Context, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// AirlineAPI covers the carrier endpoints.
type AirlineAPI interface {
	ListAirlines(ctx context.Context) ([]models.Airline, error)
	GetAirline(ctx context.Context, id int) (*models.Airline, error)
	AddAirline(ctx context.Context, airline models.Airline) (*models.Airline, error)
	EditAirline(ctx context.Context, airline models.Airline) (*models.Airline, error)
	DeleteAirline(ctx context.Context, id int) error
}

// AirportAPI covers the airport endpoints.
type AirportAPI interface {
	ListAirports(ctx context.Context) ([]models.Airport, error)
	GetAirport(ctx context.Context, id int) (*models.Airport, error)
	AddAirport(ctx context.Context, airport models.Airport) (*models.Airport, error)
	EditAirport(ctx context.Context, airport models.Airport) (*models.Airport, error)
	DeleteAirport(ctx context.Context, id int) error
}

// FlightAPI covers the flight endpoints.
type FlightAPI interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id int) (*models.Flight, error)
	AddFlight(ctx context.Context, flight models.Flight) (*models.Flight, error)
	EditFlight(ctx context.Context, flight models.Flight) (*models.Flight, error)
	DeleteFlight(ctx context.Context, id int) error
}

// TicketAPI covers the ticket endpoints.
type TicketAPI interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	ListUserTickets(ctx context.Context, userID int) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id int) (*models.Ticket, error)
	AddTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
	ChangeTicketStatus(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
}

// Client is the full backend surface.
type Client interface {
	UserAPI
	AirlineAPI
	AirportAPI
	FlightAPI
	TicketAPI
}
