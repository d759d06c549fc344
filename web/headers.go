package web

import (
	"net/http"
)

// noCacheHeaders keep browsers from caching pages during development.
var noCacheHeaders = map[string]string{
	"Cache-Control": "no-cache, no-store, must-revalidate",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// NoCacheHandler returns an http.Handler that disables caching of the response.
func NoCacheHandler(h http.Handler) http.Handler {
	return HeaderHandler(h, noCacheHeaders)
}
