package handlers

import (
	"net/http"

	"huntboard/internal/adapters/http/dto"
	"huntboard/internal/domain/board"
	"huntboard/internal/ports"
)

// ColumnHandler handles HTTP requests for the board view and column CRUD.
type ColumnHandler struct {
	service ports.BoardService
}

// NewColumnHandler creates a new ColumnHandler with the given service port.
func NewColumnHandler(service ports.BoardService) *ColumnHandler {
	return &ColumnHandler{service: service}
}

// GetBoard handles GET /api/v1/board.
func (h *ColumnHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	columns, err := h.service.GetBoard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(columns))
}

// ListColumns handles GET /api/v1/columns.
func (h *ColumnHandler) ListColumns(w http.ResponseWriter, r *http.Request) {
	columns, err := h.service.ListColumns(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToColumnListResponse(columns))
}

// CreateColumn handles POST /api/v1/columns.
func (h *ColumnHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateColumn(r.Context(), &board.Column{Name: req.Name})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToColumnResponse(created))
}

// RenameColumn handles PATCH /api/v1/columns/{id}.
func (h *ColumnHandler) RenameColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RenameColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	renamed, err := h.service.RenameColumn(r.Context(), id, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToColumnResponse(renamed))
}

// DeleteColumn handles DELETE /api/v1/columns/{id}.
func (h *ColumnHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteColumn(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
