package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/models"
)

// ---- fakes ----

type fakeAirlineAPI struct {
	ListRet   []models.Airline
	ListErr   error
	ListCalls int

	GetRet *models.Airline
	GetErr error

	AddRet *models.Airline
	AddErr error

	EditRet *models.Airline
	EditErr error

	DeleteErr   error
	DeleteCalls int
}

func (f *fakeAirlineAPI) ListAirlines(context.Context) ([]models.Airline, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeAirlineAPI) GetAirline(context.Context, int) (*models.Airline, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeAirlineAPI) AddAirline(context.Context, models.Airline) (*models.Airline, error) {
	return f.AddRet, f.AddErr
}

func (f *fakeAirlineAPI) EditAirline(context.Context, models.Airline) (*models.Airline, error) {
	return f.EditRet, f.EditErr
}

func (f *fakeAirlineAPI) DeleteAirline(context.Context, int) error {
	f.DeleteCalls++
	return f.DeleteErr
}

type fakeTicketAPI struct {
	ListRet   []models.Ticket
	ListErr   error
	ListCalls int

	ListUserRet    []models.Ticket
	ListUserErr    error
	LastListUserID int

	GetRet *models.Ticket
	GetErr error

	AddRet *models.Ticket
	AddErr error

	ChangeRet   *models.Ticket
	ChangeErr   error
	ChangeCalls int
}

func (f *fakeTicketAPI) ListTickets(context.Context) ([]models.Ticket, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeTicketAPI) ListUserTickets(_ context.Context, userID int) ([]models.Ticket, error) {
	f.LastListUserID = userID
	return f.ListUserRet, f.ListUserErr
}

func (f *fakeTicketAPI) GetTicket(context.Context, int) (*models.Ticket, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeTicketAPI) AddTicket(context.Context, models.Ticket) (*models.Ticket, error) {
	return f.AddRet, f.AddErr
}

func (f *fakeTicketAPI) ChangeTicketStatus(_ context.Context, t models.Ticket) (*models.Ticket, error) {
	f.ChangeCalls++
	return f.ChangeRet, f.ChangeErr
}

// ---- airline store (the shared pattern) ----

func TestAirlineLoad_ReplacesCollection(t *testing.T) {
	backend := &fakeAirlineAPI{ListRet: []models.Airline{{ID: 1}, {ID: 2}}}
	s := NewAirlineStore(backend)

	s.Load(context.Background())

	assert.Len(t, s.List(), 2)
	assert.Empty(t, s.Err())
}

func TestAirlineLoad_FailureClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", errors.New("refused"), api.MsgServiceUnavailable},
		{"bad gateway", &api.Error{Status: 502}, api.MsgServiceUnavailable},
		{"rejection", &api.Error{Status: 404, Payload: "Нет данных"}, "Нет данных"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAirlineStore(&fakeAirlineAPI{ListErr: tt.err})
			s.Load(context.Background())
			assert.Equal(t, tt.want, s.Err())
			assert.Empty(t, s.List())
		})
	}
}

func TestAirlineAdd_AppendsWhenPopulated(t *testing.T) {
	backend := &fakeAirlineAPI{AddRet: &models.Airline{ID: 3, Name: "Charter"}}
	s := NewAirlineStore(backend)
	s.list = []models.Airline{{ID: 1}, {ID: 2}}

	s.Add(context.Background(), models.Airline{Name: "Charter"})

	require.Len(t, s.List(), 3)
	assert.Equal(t, "Charter", s.List()[2].Name)
	assert.Zero(t, backend.ListCalls, "no re-list when the collection is populated")
}

func TestAirlineAdd_RelistsWhenEmpty(t *testing.T) {
	backend := &fakeAirlineAPI{
		AddRet:  &models.Airline{ID: 1},
		ListRet: []models.Airline{{Key: "0", ID: 1}},
	}
	s := NewAirlineStore(backend)

	s.Add(context.Background(), models.Airline{})

	assert.Equal(t, 1, backend.ListCalls)
	require.Len(t, s.List(), 1)
	assert.Equal(t, "0", s.List()[0].Key)
}

func TestAirlineEdit_ReplacesEntryKeepingKey(t *testing.T) {
	backend := &fakeAirlineAPI{EditRet: &models.Airline{ID: 2, Name: "S7 Airlines"}}
	s := NewAirlineStore(backend)
	s.list = []models.Airline{{Key: "0", ID: 1}, {Key: "1", ID: 2, Name: "S7"}}

	s.Edit(context.Background(), models.Airline{ID: 2, Name: "S7 Airlines"})

	assert.Equal(t, "S7 Airlines", s.List()[1].Name)
	assert.Equal(t, "1", s.List()[1].Key)
}

func TestAirlineDelete_CommitsRemoval(t *testing.T) {
	backend := &fakeAirlineAPI{}
	s := NewAirlineStore(backend)
	s.list = []models.Airline{{ID: 1}, {ID: 2}, {ID: 3}}

	s.Delete(context.Background(), 2)

	assert.Equal(t, 1, backend.DeleteCalls)
	require.Len(t, s.List(), 2)
	assert.Equal(t, 1, s.List()[0].ID)
	assert.Equal(t, 3, s.List()[1].ID)
}

// ---- ticket store specifics ----

func TestTicketLoadForUser(t *testing.T) {
	backend := &fakeTicketAPI{ListUserRet: []models.Ticket{{ID: 1, Flight: 5}}}
	s := NewTicketStore(backend)

	s.LoadForUser(context.Background(), 42)

	assert.Equal(t, 42, backend.LastListUserID)
	require.Len(t, s.List(), 1)
	assert.Equal(t, 5, s.List()[0].Flight)
}

func TestTicketAdd_AppendsWhenPopulated(t *testing.T) {
	backend := &fakeTicketAPI{AddRet: &models.Ticket{ID: 3, Flight: 9}}
	s := NewTicketStore(backend)
	s.list = []models.Ticket{{ID: 1}, {ID: 2}}

	s.Add(context.Background(), models.Ticket{Flight: 9})

	require.Len(t, s.List(), 3)
	assert.Equal(t, 9, s.List()[2].Flight)
	assert.Zero(t, backend.ListCalls, "no re-list when the collection is populated")
}

func TestTicketAdd_RelistsWhenEmpty(t *testing.T) {
	backend := &fakeTicketAPI{
		AddRet:  &models.Ticket{ID: 1},
		ListRet: []models.Ticket{{Key: "0", ID: 1}},
	}
	s := NewTicketStore(backend)

	s.Add(context.Background(), models.Ticket{})

	assert.Equal(t, 1, backend.ListCalls)
	require.Len(t, s.List(), 1)
	assert.Equal(t, "0", s.List()[0].Key)
	assert.Empty(t, s.Err())
}

func TestTicketChangeStatus_DeniedWithoutManagerRole(t *testing.T) {
	backend := &fakeTicketAPI{}
	s := NewTicketStore(backend)

	s.ChangeStatus(context.Background(), models.Ticket{ID: 1},
		&models.User{Role: models.RoleCustomer})

	assert.Zero(t, backend.ChangeCalls, "no request may be issued")
	assert.Equal(t, api.MsgInsufficientPrivilege, s.Err())

	s.ChangeStatus(context.Background(), models.Ticket{ID: 1}, nil)
	assert.Zero(t, backend.ChangeCalls)
}

func TestTicketChangeStatus_ManagerUpdatesEntry(t *testing.T) {
	backend := &fakeTicketAPI{
		ChangeRet: &models.Ticket{ID: 1, Status: "Подтверждён"},
	}
	s := NewTicketStore(backend)
	s.list = []models.Ticket{{Key: "0", ID: 1, Status: ""}}

	s.ChangeStatus(context.Background(), models.Ticket{ID: 1},
		&models.User{Role: models.RoleManager})

	assert.Equal(t, 1, backend.ChangeCalls)
	assert.Equal(t, "Подтверждён", s.List()[0].Status)
	assert.Equal(t, "0", s.List()[0].Key)
	assert.Empty(t, s.Err())
}
