package stores

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// AirlineStore caches the carrier collection.
//
// Operations never re-raise failures: the error field is the sole
// observable outcome of a failed call, cleared again by the next success.
type AirlineStore struct {
	api api.AirlineAPI

	current *models.Airline
	list    []models.Airline
	lastErr string
}

func NewAirlineStore(a api.AirlineAPI) *AirlineStore {
	return &AirlineStore{api: a}
}

func (s *AirlineStore) Current() *models.Airline { return s.current }
func (s *AirlineStore) List() []models.Airline   { return s.list }
func (s *AirlineStore) Err() string              { return s.lastErr }

// Load fetches all carriers and replaces the local collection.
func (s *AirlineStore) Load(ctx context.Context) {
	list, err := s.api.ListAirlines(ctx)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = list
	s.lastErr = ""
}

// Get fetches one carrier and sets it as current.
func (s *AirlineStore) Get(ctx context.Context, id int) {
	a, err := s.api.GetAirline(ctx, id)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.current = a
	s.lastErr = ""
}

// Add creates a carrier. When the collection is already populated the
// created record is appended; otherwise the whole collection is re-listed
// so the new record appears with its storage key.
func (s *AirlineStore) Add(ctx context.Context, airline models.Airline) {
	created, err := s.api.AddAirline(ctx, airline)
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

// Edit updates a carrier and replaces the matching collection entry.
func (s *AirlineStore) Edit(ctx context.Context, airline models.Airline) {
	updated, err := s.api.EditAirline(ctx, airline)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	replaceByID(s.list, updated.ID, *updated,
		func(a models.Airline) int { return a.ID },
		func(dst *models.Airline, old models.Airline) { dst.Key = old.Key })
	s.lastErr = ""
}

// Delete removes a carrier and commits the removal to the collection.
func (s *AirlineStore) Delete(ctx context.Context, id int) {
	if err := s.api.DeleteAirline(ctx, id); err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = removeByID(s.list, id, func(a models.Airline) int { return a.ID })
	s.lastErr = ""
}
