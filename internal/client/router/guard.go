package router

import (
	"context"
	"strconv"

	"github.com/skywhysales/skyclient/internal/client/session"
	"github.com/skywhysales/skyclient/internal/logging"
)

// HomePath is where denied navigations are redirected.
const HomePath = "/"

// Decision is the outcome of one guard evaluation.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirectHome() Decision {
	return Decision{RedirectTo: HomePath}
}

// Guard authorizes navigations against the route table and the session.
// It runs exactly once per attempted navigation, before the target view is
// rendered.
type Guard struct {
	table   *Table
	session *session.Session
	log     logging.Logger
}

func NewGuard(table *Table, sess *session.Session, log logging.Logger) *Guard {
	return &Guard{table: table, session: sess, log: log}
}

// Authorize evaluates the target path. The gates run in a fixed order:
// session restore first, then login, role and self-scope checks, each of
// which independently redirects home on failure. The restore must complete
// before anything reads the identity, otherwise a reload of a remembered
// session would be denied on the stale in-memory absence.
func (g *Guard) Authorize(ctx context.Context, path string) (Decision, *Route, Params) {
	route, params, ok := g.table.Match(path)
	if !ok {
		g.log.Warn(ctx, "no route for path", "path", path)
		return redirectHome(), nil, nil
	}

	if !g.session.Authenticated() {
		g.session.SilentReauthenticate(ctx)
	}
	identity := g.session.Current()

	if route.Login && identity == nil {
		g.log.Info(ctx, "login required", "route", route.Name)
		return redirectHome(), nil, nil
	}

	if route.Manager && (identity == nil || !identity.Role.Privileged()) {
		g.log.Info(ctx, "manager role required", "route", route.Name)
		return redirectHome(), nil, nil
	}

	if route.SelfScoped {
		id, err := strconv.Atoi(params["id"])
		if err != nil || identity == nil || identity.ID != id {
			g.log.Info(ctx, "self-scoped route denied", "route", route.Name, "id", params["id"])
			return redirectHome(), nil, nil
		}
	}

	return allow(), route, params
}
