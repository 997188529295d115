package stores

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// AirportStore caches the airport collection.
type AirportStore struct {
	api api.AirportAPI

	current *models.Airport
	list    []models.Airport
	lastErr string
}

func NewAirportStore(a api.AirportAPI) *AirportStore {
	return &AirportStore{api: a}
}

func (s *AirportStore) Current() *models.Airport { return s.current }
func (s *AirportStore) List() []models.Airport   { return s.list }
func (s *AirportStore) Err() string              { return s.lastErr }

func (s *AirportStore) Load(ctx context.Context) {
	list, err := s.api.ListAirports(ctx)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = list
	s.lastErr = ""
}

func (s *AirportStore) Get(ctx context.Context, id int) {
	a, err := s.api.GetAirport(ctx, id)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.current = a
	s.lastErr = ""
}

func (s *AirportStore) Add(ctx context.Context, airport models.Airport) {
	created, err := s.api.AddAirport(ctx, airport)
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

func (s *AirportStore) Edit(ctx context.Context, airport models.Airport) {
	updated, err := s.api.EditAirport(ctx, airport)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	replaceByID(s.list, updated.ID, *updated,
		func(a models.Airport) int { return a.ID },
		func(dst *models.Airport, old models.Airport) { dst.Key = old.Key })
	s.lastErr = ""
}

func (s *AirportStore) Delete(ctx context.Context, id int) {
	if err := s.api.DeleteAirport(ctx, id); err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = removeByID(s.list, id, func(a models.Airport) int { return a.ID })
	s.lastErr = ""
}
