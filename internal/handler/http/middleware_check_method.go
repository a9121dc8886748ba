package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant to be installed as the router's MethodNotAllowed
// handler. Instead of chi's default 405 it answers 404 for methods that are
// not registered on the matched route, so an unsupported method cannot be
// used to probe which paths exist. Requests whose method IS registered are
// handed back to the router's normal pipeline.
//
// The route lookup compares registered patterns against the raw request
// path; parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
