package stores

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// FlightStore caches the flight collection.
type FlightStore struct {
	api api.FlightAPI

	current *models.Flight
	list    []models.Flight
	lastErr string
}

func NewFlightStore(a api.FlightAPI) *FlightStore {
	return &FlightStore{api: a}
}

func (s *FlightStore) Current() *models.Flight { return s.current }
func (s *FlightStore) List() []models.Flight   { return s.list }
func (s *FlightStore) Err() string             { return s.lastErr }

func (s *FlightStore) Load(ctx context.Context) {
	list, err := s.api.ListFlights(ctx)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = list
	s.lastErr = ""
}

func (s *FlightStore) Get(ctx context.Context, id int) {
	f, err := s.api.GetFlight(ctx, id)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.current = f
	s.lastErr = ""
}

func (s *FlightStore) Add(ctx context.Context, flight models.Flight) {
	created, err := s.api.AddFlight(ctx, flight)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	if len(s.list) > 0 {
		s.list = append(s.list, *created)
		s.lastErr = ""
		return
	}
	s.Load(ctx)
}

func (s *FlightStore) Edit(ctx context.Context, flight models.Flight) {
	updated, err := s.api.EditFlight(ctx, flight)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	replaceByID(s.list, updated.ID, *updated,
		func(f models.Flight) int { return f.ID },
		func(dst *models.Flight, old models.Flight) { dst.Key = old.Key })
	s.lastErr = ""
}

func (s *FlightStore) Delete(ctx context.Context, id int) {
	if err := s.api.DeleteFlight(ctx, id); err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = removeByID(s.list, id, func(f models.Flight) int { return f.ID })
	s.lastErr = ""
}
