package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/credstore"
	"github.com/skywhysales/skyclient/internal/client/models"
	"github.com/skywhysales/skyclient/internal/logging"
)

// ---- fake backend ----

// fakeUserAPI implements api.UserAPI and records the last call arguments.
type fakeUserAPI struct {
	AuthenticateRet   *models.User
	AuthenticateErr   error
	AuthenticateCalls int
	LastLogin         string
	LastPassword      string

	RegisterRet *models.User
	RegisterErr error

	ListUsersRet []models.User
	ListUsersErr error

	GetUserRet *models.User
	GetUserErr error

	EditUserRet *models.User
	EditUserErr error

	DeleteUserErr   error
	DeleteUserCalls int
	LastDeletedID   int
}

func (f *fakeUserAPI) Authenticate(_ context.Context, login, password string) (*models.User, error) {
	f.AuthenticateCalls++
	f.LastLogin = login
	f.LastPassword = password
	return f.AuthenticateRet, f.AuthenticateErr
}

func (f *fakeUserAPI) Register(_ context.Context, _ models.User) (*models.User, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeUserAPI) ListUsers(_ context.Context) ([]models.User, error) {
	return f.ListUsersRet, f.ListUsersErr
}

func (f *fakeUserAPI) GetUser(_ context.Context, _ int) (*models.User, error) {
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeUserAPI) EditUser(_ context.Context, _ models.User) (*models.User, error) {
	return f.EditUserRet, f.EditUserErr
}

func (f *fakeUserAPI) DeleteUser(_ context.Context, id int) error {
	f.DeleteUserCalls++
	f.LastDeletedID = id
	return f.DeleteUserErr
}

// ---- helpers ----

func newSession(t *testing.T, backend *fakeUserAPI) (*Session, credstore.Store) {
	t.Helper()
	creds, err := credstore.Open(context.Background(), filepath.Join(t.TempDir(), "cred.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = creds.Close() })
	return New(backend, creds, logging.NopLogger{}), creds
}

func storedCredential(t *testing.T, creds credstore.Store) *models.Credential {
	t.Helper()
	cred, err := creds.Load(context.Background())
	require.NoError(t, err)
	return cred
}

// ---- TESTS ----

func TestLogin_SuccessSetsIdentityAndRemembersEchoedPassword(t *testing.T) {
	backend := &fakeUserAPI{
		AuthenticateRet: &models.User{ID: 42, Email: "ivanov@mail.ru", Password: "echoed"},
	}
	s, creds := newSession(t, backend)

	s.Login(context.Background(), "ivanov@mail.ru", "typed")

	require.NotNil(t, s.Current())
	assert.Equal(t, 42, s.Current().ID)
	assert.Empty(t, s.Err())

	cred := storedCredential(t, creds)
	require.NotNil(t, cred)
	assert.Equal(t, "ivanov@mail.ru", cred.Login)
	assert.Equal(t, "echoed", cred.Password)
}

func TestLogin_SecondLoginDoesNotOverwriteCredential(t *testing.T) {
	backend := &fakeUserAPI{
		AuthenticateRet: &models.User{ID: 1, Password: "p1"},
	}
	s, creds := newSession(t, backend)

	s.Login(context.Background(), "first@mail.ru", "p1")
	backend.AuthenticateRet = &models.User{ID: 2, Password: "p2"}
	s.Login(context.Background(), "second@mail.ru", "p2")

	cred := storedCredential(t, creds)
	require.NotNil(t, cred)
	assert.Equal(t, "first@mail.ru", cred.Login)
}

func TestLogin_FailureClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMsg      string
		wantCredGone bool
	}{
		{
			name:         "no response keeps credential",
			err:          errors.New("dial tcp: connection refused"),
			wantMsg:      api.MsgServiceUnavailable,
			wantCredGone: false,
		},
		{
			name:         "502 is an outage but still invalidates",
			err:          &api.Error{Status: 502, Payload: "Bad Gateway"},
			wantMsg:      api.MsgServiceUnavailable,
			wantCredGone: true,
		},
		{
			name:         "rejection surfaces payload and invalidates",
			err:          &api.Error{Status: 401, Payload: "Неверный логин или пароль"},
			wantMsg:      "Неверный логин или пароль",
			wantCredGone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeUserAPI{AuthenticateErr: tt.err}
			s, creds := newSession(t, backend)
			require.NoError(t, creds.Save(context.Background(),
				models.Credential{Login: "a", Password: "b"}))

			s.Login(context.Background(), "a", "b")

			assert.Nil(t, s.Current())
			assert.Equal(t, tt.wantMsg, s.Err())
			if tt.wantCredGone {
				assert.Nil(t, storedCredential(t, creds))
			} else {
				assert.NotNil(t, storedCredential(t, creds))
			}
		})
	}
}

func TestSilentReauthenticate_NoCredentialIsANoop(t *testing.T) {
	backend := &fakeUserAPI{}
	s, _ := newSession(t, backend)

	s.SilentReauthenticate(context.Background())

	assert.Zero(t, backend.AuthenticateCalls)
	assert.Nil(t, s.Current())
}

func TestSilentReauthenticate_ReplaysStoredCredential(t *testing.T) {
	backend := &fakeUserAPI{
		AuthenticateRet: &models.User{ID: 7, Password: "remembered"},
	}
	s, creds := newSession(t, backend)
	require.NoError(t, creds.Save(context.Background(),
		models.Credential{Login: "stored@mail.ru", Password: "remembered"}))

	s.SilentReauthenticate(context.Background())

	assert.Equal(t, 1, backend.AuthenticateCalls)
	assert.Equal(t, "stored@mail.ru", backend.LastLogin)
	assert.Equal(t, "remembered", backend.LastPassword)
	require.NotNil(t, s.Current())
	assert.Equal(t, 7, s.Current().ID)
}

func TestRegister_SuccessSignsInAndRemembersCredential(t *testing.T) {
	backend := &fakeUserAPI{
		RegisterRet: &models.User{ID: 9, Email: "new@mail.ru", Password: "echoed"},
	}
	s, creds := newSession(t, backend)

	s.Register(context.Background(), models.User{Email: "new@mail.ru", Password: "typed"})

	require.NotNil(t, s.Current())
	assert.Equal(t, 9, s.Current().ID)
	assert.Empty(t, s.Err())

	cred := storedCredential(t, creds)
	require.NotNil(t, cred)
	assert.Equal(t, "new@mail.ru", cred.Login)
	assert.Equal(t, "echoed", cred.Password)
}

func TestRegister_FailureSetsError(t *testing.T) {
	backend := &fakeUserAPI{
		RegisterErr: &api.Error{Status: 400, Payload: "Почта уже занята"},
	}
	s, _ := newSession(t, backend)

	s.Register(context.Background(), models.User{Email: "dup@mail.ru"})

	assert.Nil(t, s.Current())
	assert.Equal(t, "Почта уже занята", s.Err())
}

func TestListUsers_ReplacesListAndClearsError(t *testing.T) {
	backend := &fakeUserAPI{
		ListUsersRet: []models.User{{ID: 1}, {ID: 2}},
	}
	s, _ := newSession(t, backend)
	s.lastErr = "stale"

	s.ListUsers(context.Background())

	assert.Len(t, s.Users(), 2)
	assert.Empty(t, s.Err())
}

func TestFetchUser_DoesNotTouchIdentityOrList(t *testing.T) {
	backend := &fakeUserAPI{GetUserRet: &models.User{ID: 5}}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 1}
	s.users = []models.User{{ID: 2}}

	got := s.FetchUser(context.Background(), 5)

	require.NotNil(t, got)
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, 1, s.Current().ID)
	assert.Len(t, s.Users(), 1)
}

func TestEditUser_OwnAccountReplacesIdentity(t *testing.T) {
	backend := &fakeUserAPI{EditUserRet: &models.User{ID: 1, Name: "Пётр"}}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 1, Name: "Петр"}

	s.EditUser(context.Background(), models.User{ID: 1, Name: "Пётр"})

	assert.Equal(t, "Пётр", s.Current().Name)
	assert.Empty(t, s.Err())
}

func TestEditUser_OtherAccountOnlyUpdatesList(t *testing.T) {
	backend := &fakeUserAPI{EditUserRet: &models.User{ID: 2, Name: "Анна"}}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 1, Name: "Менеджер", Role: models.RoleManager}
	s.users = []models.User{{Key: "0", ID: 1}, {Key: "1", ID: 2, Name: "Аня"}}

	s.EditUser(context.Background(), models.User{ID: 2, Name: "Анна"})

	assert.Equal(t, 1, s.Current().ID)
	assert.Equal(t, "Менеджер", s.Current().Name)
	assert.Equal(t, "Анна", s.users[1].Name)
	assert.Equal(t, "1", s.users[1].Key)
}

func TestDeleteUser_DeniedLocallyWithoutRequest(t *testing.T) {
	backend := &fakeUserAPI{}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 1, Role: models.RoleCustomer}

	s.DeleteUser(context.Background(), 2)

	assert.Zero(t, backend.DeleteUserCalls)
	assert.Equal(t, api.MsgInsufficientPrivilege, s.Err())
}

func TestDeleteUser_ManagerRemovesListEntry(t *testing.T) {
	backend := &fakeUserAPI{}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 1, Role: models.RoleManager}
	s.users = []models.User{{ID: 1}, {ID: 2}, {ID: 3}}

	s.DeleteUser(context.Background(), 2)

	assert.Equal(t, 1, backend.DeleteUserCalls)
	assert.Equal(t, 2, backend.LastDeletedID)
	require.Len(t, s.Users(), 2)
	assert.Equal(t, 1, s.Users()[0].ID)
	assert.Equal(t, 3, s.Users()[1].ID)
	assert.NotNil(t, s.Current())
}

func TestDeleteUser_SelfDeleteEndsSession(t *testing.T) {
	backend := &fakeUserAPI{}
	s, _ := newSession(t, backend)
	s.current = &models.User{ID: 4, Role: models.RoleCustomer}

	s.DeleteUser(context.Background(), 4)

	assert.Equal(t, 1, backend.DeleteUserCalls)
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Err())
}

func TestLogout_ClearsIdentityAndCredentialWithoutNetwork(t *testing.T) {
	backend := &fakeUserAPI{}
	s, creds := newSession(t, backend)
	s.current = &models.User{ID: 1}
	require.NoError(t, creds.Save(context.Background(),
		models.Credential{Login: "a", Password: "b"}))

	s.Logout(context.Background())

	assert.Nil(t, s.Current())
	assert.Nil(t, storedCredential(t, creds))
	assert.Zero(t, backend.AuthenticateCalls)
	assert.Zero(t, backend.DeleteUserCalls)
}
