// Package server is the demo sign-up API: the server side of the wire
// contract the gateway client speaks. It reuses the shared validators so it
// rejects exactly what the client-side form would.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enroll/internal/server/metrics"
	"enroll/internal/signup"
	"enroll/pkg/email"
	"enroll/pkg/platform/httputil"
)

// Handler wires the sign-up endpoint to the registry and token issuer.
type Handler struct {
	registry *Registry
	issuer   *Issuer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewHandler constructs the sign-up handler. metrics may be nil when the
// caller does not record them.
func NewHandler(registry *Registry, issuer *Issuer, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		issuer:   issuer,
		logger:   logger,
		metrics:  m,
	}
}

// Register mounts the sign-up endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.HandleSignUp)
}

// HandleSignUp handles POST /signup requests.
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	form := signup.NewEmailForm(req.Name, req.Email)
	if req.PhoneNumber != "" {
		form = signup.NewPhoneForm(req.Name, req.PhoneNumber)
	}

	payload, ok := form.Value()
	if !ok {
		h.reject()
		httputil.WriteJSON(w, http.StatusUnprocessableEntity,
			NewValidationEnvelope("sign-up rejected", form.Errors()))
		return
	}

	if err := h.registry.Register(payload.Identity); err != nil {
		h.reject()
		field := payload.Identity.Kind().Field()
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, ErrorEnvelope{
			Message: "identity already registered",
			Errors: []FieldDescriptor{
				{Field: field.String(), Errors: []string{"already taken"}},
			},
		})
		return
	}

	token, err := h.issuer.Issue()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "token issuance failed", "error", err)
		httputil.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	display := payload.Name
	if payload.Identity.Kind() == signup.KindEmail {
		display = email.DisplayName(payload.Identity.Value())
	}
	h.logger.InfoContext(r.Context(), "identity registered",
		"identity_kind", string(payload.Identity.Kind()),
		"display_name", display,
	)

	if h.metrics != nil {
		h.metrics.IncrementRegistrations()
	}
	httputil.WriteJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

func (h *Handler) reject() {
	if h.metrics != nil {
		h.metrics.IncrementRejections()
	}
}
