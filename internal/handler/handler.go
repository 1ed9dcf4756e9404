package handler

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/Dan9191/loan-check/internal/models"
	"github.com/Dan9191/loan-check/internal/service"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 64 << 10

//go:embed static/form.html
var formPage []byte

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Form serves the application form
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(formPage); err != nil {
		h.log.WithError(err).Debug("Failed to write form page")
	}
}

// Check evaluates a credit application. Rejections are 200 responses with
// ok=false; malformed applications are 400.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req models.ApplicationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decision, err := h.svc.CheckApplication(r.Context(), req)
	if errors.Is(err, models.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.log.WithError(err).Error("Failed to check application")
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, decision)
}

// KeyRate returns the reference Central Bank key rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	kr, err := h.svc.KeyRate(r.Context())
	if err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "key rate unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, kr)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Debug("Failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
