package cli

import (
	"context"
	"fmt"

	"github.com/skywhysales/skyclient/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. The outcome is
// read from the session: its error field is the sole signal of failure.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.session.Login(ctx, login, password)

	if msg := a.session.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", a.session.Current().Email)
	return nil
}

// Register prompts for the account profile and creates it. A successful
// registration signs the new user in.
func (a *App) Register(ctx context.Context) error {
	var profile models.User
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter surname", &profile.Surname},
		{"Enter name", &profile.Name},
		{"Enter patronymic", &profile.Patronymic},
		{"Enter email", &profile.Email},
		{"Enter phone", &profile.Phone},
		{"Enter birthdate (YYYY-MM-DD)", &profile.Birthdate},
		{"Enter passport serial", &profile.PassportSerial},
		{"Enter passport number", &profile.PassportNumber},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	profile.Password = password

	a.session.Register(ctx, profile)

	if msg := a.session.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return nil
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Current().Name)
	return nil
}

// Logout ends the session and forgets the remembered credential.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.path = "/"
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "#%d %s <%s> %s\n", u.ID, u.FullName(), u.Email, u.Role)
	return nil
}
