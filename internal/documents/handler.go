package documents

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/documenta/docuflow/pkg/handlers"
	"github.com/documenta/docuflow/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for document operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a document handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "documents"),
	}
}

// Routes returns the document endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Description: "Document lifecycle and validation",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{id}/download", Handler: h.Download},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

// decisionRequest is the request body for approve and reject calls.
type decisionRequest struct {
	ApproverID string `json:"approver_user_id"`
	Reason     string `json:"reason"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, docs)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	url, err := h.sys.Download(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"download_url": url})
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeDecision(w, r)
	if !ok {
		return
	}

	outcome, err := h.sys.Approve(r.Context(), id, req.ApproverID, req.Reason)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, outcome)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decodeDecision(w, r)
	if !ok {
		return
	}

	outcome, err := h.sys.Reject(r.Context(), id, req.ApproverID, req.Reason)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, outcome)
}

func (h *Handler) decodeDecision(w http.ResponseWriter, r *http.Request) (uuid.UUID, decisionRequest, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, decisionRequest{}, false
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, decisionRequest{}, false
	}

	if req.ApproverID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrApproverRequired)
		return uuid.Nil, decisionRequest{}, false
	}
	return id, req, true
}
