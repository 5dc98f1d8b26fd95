package web

import "net/http"

// Route names used for reversing URLs
const (
	RouteHome  = "home"
	RouteTodos = "todos"
)

// DefaultRoutes is the application's route table, in match order
func DefaultRoutes(h *Handlers) []Route {
	return []Route{
		{Pattern: "home/", Name: RouteHome, Handler: http.HandlerFunc(h.Home)},
		{Pattern: "todos/", Name: RouteTodos, Handler: http.HandlerFunc(h.Todos)},
	}
}
