package stores

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// TicketStore caches tickets: either the whole collection or one user's.
type TicketStore struct {
	api api.TicketAPI

	current *models.Ticket
	list    []models.Ticket
	lastErr string
}

func NewTicketStore(a api.TicketAPI) *TicketStore {
	return &TicketStore{api: a}
}

func (s *TicketStore) Current() *models.Ticket { return s.current }
func (s *TicketStore) List() []models.Ticket   { return s.list }
func (s *TicketStore) Err() string             { return s.lastErr }

func (s *TicketStore) Load(ctx context.Context) {
	list, err := s.api.ListTickets(ctx)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = list
	s.lastErr = ""
}

// LoadForUser replaces the collection with one user's tickets.
func (s *TicketStore) LoadForUser(ctx context.Context, userID int) {
	list, err := s.api.ListUserTickets(ctx, userID)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.list = list
	s.lastErr = ""
}

func (s *TicketStore) Get(ctx context.Context, id int) {
	t, err := s.api.GetTicket(ctx, id)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.current = t
	s.lastErr = ""
}

// Add purchases a ticket. When the collection is already populated the
// created record is appended; otherwise the whole collection is re-listed
// so the new record appears with its storage key.
func (s *TicketStore) Add(ctx context.Context, ticket models.Ticket) {
	created, err := s.api.AddTicket(ctx, ticket)
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

// ChangeStatus updates a ticket's status. The operation is manager-only and
// is denied locally, without a request, for anyone else.
func (s *TicketStore) ChangeStatus(ctx context.Context, ticket models.Ticket, actor *models.User) {
	if actor == nil || !actor.Role.Privileged() {
		s.lastErr = api.MsgInsufficientPrivilege
		return
	}

	updated, err := s.api.ChangeTicketStatus(ctx, ticket)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	replaceByID(s.list, updated.ID, *updated,
		func(t models.Ticket) int { return t.ID },
		func(dst *models.Ticket, old models.Ticket) { dst.Key = old.Key })
	s.lastErr = ""
}
