package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hostconnect/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// Health reports process liveness.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}
