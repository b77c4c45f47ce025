package entities

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/documenta/docuflow/pkg/handlers"
	"github.com/documenta/docuflow/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for business entity operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a business entity handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "entities"),
	}
}

// Routes returns the business entity endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/entities",
		Description: "Business entity registry",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// CompanyRoutes returns the entity routes nested under the company prefix.
func (h *Handler) CompanyRoutes() routes.Group {
	return routes.Group{
		Prefix: "/companies",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/entities", Handler: h.ListByCompany},
		},
	}
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	entity, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entity)
}

func (h *Handler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	list, err := h.sys.ListByCompany(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	entity, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, entity)
}
