package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the public routes. checkLimit guards POST /check.
func NewRouter(h *Handler, checkLimit mux.MiddlewareFunc, mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw...)

	r.HandleFunc("/", h.Form).Methods("GET")
	r.HandleFunc("/key-rate", h.KeyRate).Methods("GET")
	r.Handle("/check", checkLimit(http.HandlerFunc(h.Check))).Methods("POST")

	return r
}
