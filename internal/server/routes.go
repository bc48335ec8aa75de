package server

import (
	"net/http"
	"strings"
)

// Route describes one registered route.
type Route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`

	handler http.HandlerFunc
}

// Pattern returns the ServeMux pattern for the route. Paths ending in "/"
// match exactly rather than as a subtree.
func (r Route) Pattern() string {
	path := r.Path
	if strings.HasSuffix(path, "/") {
		path += "{$}"
	}
	return r.Method + " " + path
}

// Routes returns the server's route table.
func Routes() []Route {
	return []Route{
		{
			Method:      http.MethodGet,
			Path:        "/",
			Description: "Static JSON greeting",
			handler:     GreetingHandler,
		},
	}
}

// Handler returns a mux with every route registered. Unmatched paths and
// methods get the mux defaults (404 and 405).
func Handler() http.Handler {
	mux := http.NewServeMux()
	for _, r := range Routes() {
		mux.HandleFunc(r.Pattern(), r.handler)
	}
	return mux
}
