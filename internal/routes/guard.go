// Package routes declares the view routes and the guard predicate that
// decides, before every navigation, whether the target view is allowed
// for the current session state.
package routes

// Route declares a navigable view and its access requirement. A route
// never requires both auth and guest.
type Route struct {
	Name          string
	RequiresAuth  bool
	RequiresGuest bool
}

// The application's route table.
var (
	Login     = Route{Name: "login", RequiresGuest: true}
	Register  = Route{Name: "register", RequiresGuest: true}
	Prospects = Route{Name: "prospects", RequiresAuth: true}
	Detail    = Route{Name: "prospect-detail", RequiresAuth: true}
	Pending   = Route{Name: "pending", RequiresAuth: true}
	Settings  = Route{Name: "settings", RequiresAuth: true}
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	// Allow lets the navigation proceed unchanged.
	Allow Decision = iota
	// RedirectLogin sends an anonymous user to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated user away from guest-only views.
	RedirectHome
)

// Resolve evaluates the guard. It is a pure predicate: no side effects
// beyond the returned decision.
func Resolve(route Route, authenticated bool) Decision {
	if route.RequiresAuth && !authenticated {
		return RedirectLogin
	}
	if route.RequiresGuest && authenticated {
		return RedirectHome
	}
	return Allow
}
