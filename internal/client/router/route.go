// Package router holds the static route table and the pre-navigation guard
// that decides whether a route transition proceeds, is redirected, or is
// blocked.
package router

import (
	"strings"
)

// Requirement is the per-route access metadata, attached at registration
// time and never mutated afterwards.
type Requirement struct {
	// Login requires an authenticated identity.
	Login bool
	// Manager requires the identity to hold the manager role.
	Manager bool
	// SelfScoped restricts the route's "id" parameter to the identity's
	// own id.
	SelfScoped bool
}

// Route is one path pattern plus its access requirement.
//
// Pattern segments are either literals or parameters:
//
//	:id     - a decimal integer
//	:kind   - one of the entity kinds (airline|airport|flight|ticket)
//	:target - "new" or a decimal integer (admin edit flows)
type Route struct {
	Name    string
	Pattern string
	Requirement
}

// Params are the values captured for a pattern's parameter segments.
type Params map[string]string

var entityKinds = map[string]struct{}{
	"airline": {},
	"airport": {},
	"flight":  {},
	"ticket":  {},
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Table is an ordered route set; the first matching route wins.
type Table struct {
	routes []Route
}

func NewTable(routes []Route) *Table {
	return &Table{routes: routes}
}

// DefaultTable is the application's route set.
func DefaultTable() *Table {
	return NewTable([]Route{
		{Name: "Home", Pattern: "/"},
		{Name: "SignUp", Pattern: "/signup"},
		{Name: "Flights", Pattern: "/flights"},
		{Name: "Flight", Pattern: "/flights/:id"},
		{Name: "Profile", Pattern: "/profile/:id", Requirement: Requirement{Login: true, SelfScoped: true}},
		{Name: "Tickets", Pattern: "/tickets/:id", Requirement: Requirement{Login: true, SelfScoped: true}},
		{Name: "Admin", Pattern: "/admin", Requirement: Requirement{Login: true, Manager: true}},
		{Name: "AdminUsers", Pattern: "/admin/users", Requirement: Requirement{Login: true, Manager: true}},
		{Name: "AdminEdit", Pattern: "/admin/:kind/:target", Requirement: Requirement{Login: true, Manager: true}},
	})
}

// Match resolves a concrete path against the table. A trailing slash is
// ignored. Returns the route, its captured parameters and whether anything
// matched.
func (t *Table) Match(path string) (*Route, Params, bool) {
	segs := splitPath(path)

	for i := range t.routes {
		route := &t.routes[i]
		params, ok := matchPattern(splitPath(route.Pattern), segs)
		if ok {
			return route, params, true
		}
	}
	return nil, nil, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchPattern(pattern, segs []string) (Params, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}

	params := Params{}
	for i, p := range pattern {
		if !strings.HasPrefix(p, ":") {
			if p != segs[i] {
				return nil, false
			}
			continue
		}

		name := strings.TrimPrefix(p, ":")
		seg := segs[i]
		switch name {
		case "id":
			if !isDecimal(seg) {
				return nil, false
			}
		case "kind":
			if _, ok := entityKinds[seg]; !ok {
				return nil, false
			}
		case "target":
			if seg != "new" && !isDecimal(seg) {
				return nil, false
			}
		default:
			if seg == "" {
				return nil, false
			}
		}
		params[name] = seg
	}
	return params, true
}
