package routing

import (
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// Route is an enumerated page of the portal.
type Route string

const (
	RouteHome        Route = "home"
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteVerifyEmail Route = "verify-email"
	RouteProfile     Route = "profile"
	RouteMyRequests  Route = "my-requests"
	RouteEmployees   Route = "employees"
	RouteDepartments Route = "departments"
	RouteAccounts    Route = "accounts"
)

// AccessDeniedMessage is shown when a non-admin hits an admin-only page.
const AccessDeniedMessage = "Access denied. Admin only."

// protectedRoutes require an active session.
var protectedRoutes = map[Route]bool{
	RouteProfile:     true,
	RouteMyRequests:  true,
	RouteEmployees:   true,
	RouteAccounts:    true,
	RouteDepartments: true,
}

// adminRoutes additionally require the Admin role.
var adminRoutes = map[Route]bool{
	RouteEmployees:   true,
	RouteAccounts:    true,
	RouteDepartments: true,
}

// Decision is the outcome of resolving a navigation. When Redirected is set,
// Page is where the client should navigate instead; Notice, when non-empty,
// explains the denial.
type Decision struct {
	Page       Route
	Redirected bool
	Notice     string
}

// Parse maps a navigation token to a Route. An empty or unknown token falls
// back to the home page; unknown tokens are never protected, so resolving the
// fallback directly is equivalent to resolving the raw token.
func Parse(token string) Route {
	switch r := Route(token); r {
	case RouteLogin, RouteRegister, RouteVerifyEmail,
		RouteProfile, RouteMyRequests,
		RouteEmployees, RouteDepartments, RouteAccounts,
		RouteHome:
		return r
	default:
		return RouteHome
	}
}

// Resolve decides what a navigation to route should do for the given session
// (nil when unauthenticated). It is a pure function over its inputs:
//  1. protected route without a session redirects to login;
//  2. admin-only route without the Admin role redirects to profile with a
//     denial notice;
//  3. otherwise the requested page is shown.
func Resolve(route Route, session *domain.Account) Decision {
	if protectedRoutes[route] && session == nil {
		return Decision{Page: RouteLogin, Redirected: true}
	}
	if adminRoutes[route] && (session == nil || session.Role != domain.RoleAdmin) {
		return Decision{Page: RouteProfile, Redirected: true, Notice: AccessDeniedMessage}
	}
	return Decision{Page: route}
}
