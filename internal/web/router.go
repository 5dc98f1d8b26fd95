// Package web serves to-do items over HTTP through an ordered route table
package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// Routing errors
var (
	ErrEmptyPattern     = errors.New("route pattern cannot be empty")
	ErrLeadingSlash     = errors.New("route pattern must not start with '/'")
	ErrPatternVariable  = errors.New("route pattern must be literal")
	ErrEmptyName        = errors.New("route name cannot be empty")
	ErrNilHandler       = errors.New("route handler cannot be nil")
	ErrDuplicatePattern = errors.New("duplicate route pattern")
	ErrDuplicateName    = errors.New("duplicate route name")
	ErrUnknownRoute     = errors.New("no route with that name")
)

// Route binds a path pattern to a named handler. Patterns are matched exactly
// against the request path without its leading slash, e.g. "todos/".
type Route struct {
	Pattern string
	Name    string
	Handler http.Handler
}

// Router dispatches requests to the first route whose pattern matches. Routes
// are registered in table order on a mux.Router, which also handles reversal.
type Router struct {
	routes []Route
	byName map[string]int
	mux    *mux.Router
}

// NewRouter validates the table. Patterns and names must be unique so every
// route stays reachable and reversible.
func NewRouter(routes ...Route) (*Router, error) {
	r := &Router{
		routes: make([]Route, 0, len(routes)),
		byName: make(map[string]int, len(routes)),
		mux:    mux.NewRouter(),
	}

	patterns := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		switch {
		case route.Pattern == "":
			return nil, ErrEmptyPattern
		case strings.HasPrefix(route.Pattern, "/"):
			return nil, fmt.Errorf("%w: %q", ErrLeadingSlash, route.Pattern)
		case strings.ContainsAny(route.Pattern, "{}"):
			return nil, fmt.Errorf("%w: %q", ErrPatternVariable, route.Pattern)
		case route.Name == "":
			return nil, fmt.Errorf("%w: pattern %q", ErrEmptyName, route.Pattern)
		case route.Handler == nil:
			return nil, fmt.Errorf("%w: %q", ErrNilHandler, route.Name)
		}

		if _, ok := patterns[route.Pattern]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePattern, route.Pattern)
		}
		if _, ok := r.byName[route.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, route.Name)
		}

		patterns[route.Pattern] = struct{}{}
		r.byName[route.Name] = len(r.routes)
		r.routes = append(r.routes, route)
		r.mux.Handle("/"+route.Pattern, namedRoute(route)).Name(route.Name)
	}
	r.mux.NotFoundHandler = http.HandlerFunc(r.notFound)

	return r, nil
}

// namedRoute records the route name for the logging middleware
func namedRoute(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		setRouteName(req.Context(), route.Name)
		route.Handler.ServeHTTP(w, req)
	})
}

// Routes returns a copy of the table in match order
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Resolve finds the first route matching path
func (r *Router) Resolve(path string) (Route, bool) {
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: "/" + strings.TrimPrefix(path, "/")},
		Header: make(http.Header),
	}

	var match mux.RouteMatch
	if !r.mux.Match(req, &match) || match.MatchErr != nil || match.Route == nil {
		return Route{}, false
	}
	i, ok := r.byName[match.Route.GetName()]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Reverse returns the absolute URL path for a named route
func (r *Router) Reverse(name string) (string, error) {
	route := r.mux.Get(name)
	if route == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	u, err := route.URL()
	if err != nil {
		return "", fmt.Errorf("reverse %q: %w", name, err)
	}
	return u.Path, nil
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// notFound redirects a path that only lacks its trailing slash to the
// slash-terminated route, keeping the query string. Anything else is a 404.
func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	if !strings.HasSuffix(req.URL.Path, "/") {
		if route, ok := r.Resolve(req.URL.Path + "/"); ok {
			setRouteName(req.Context(), route.Name)
			target := *req.URL
			target.Path = "/" + strings.TrimPrefix(req.URL.Path, "/") + "/"
			target.RawPath = ""
			status := http.StatusMovedPermanently
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, req, target.RequestURI(), status)
			return
		}
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("no route matches %q", req.URL.Path))
}
