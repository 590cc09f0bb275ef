// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a registered route but whose method is not
// handled there gets 404 Not Found instead of chi's default 405, so the
// existence of the route is not revealed. If the method is registered after
// all, the request goes back through the router.
//
// Only exact pattern matches against [http.Request.URL.Path] are considered.
// Routes mounted under a sub-router are found through their sub-routes.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers, ok := findRouteHandlers(router.Routes(), "", r.URL.Path)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, ok = handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func findRouteHandlers(routes []chi.Route, prefix, path string) (map[string]http.Handler, bool) {
	for _, route := range routes {
		pattern := prefix + route.Pattern
		if route.SubRoutes != nil {
			sub := prefix + trimWildcard(route.Pattern)
			if handlers, ok := findRouteHandlers(route.SubRoutes.Routes(), sub, path); ok {
				return handlers, true
			}
			continue
		}
		if pattern == path {
			return route.Handlers, true
		}
	}
	return nil, false
}

func trimWildcard(pattern string) string {
	if n := len(pattern); n >= 2 && pattern[n-2:] == "/*" {
		return pattern[:n-2]
	}
	return pattern
}
