package handlers

import (
	"net/http"

	"huntboard/internal/adapters/http/dto"
	"huntboard/internal/ports"
)

// CardHandler handles HTTP requests for card CRUD and card moves.
type CardHandler struct {
	service ports.BoardService
}

// NewCardHandler creates a new CardHandler with the given service port.
func NewCardHandler(service ports.BoardService) *CardHandler {
	return &CardHandler{service: service}
}

// ListCards handles GET /api/v1/columns/{id}/cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	columnID, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	cards, err := h.service.ListCards(r.Context(), columnID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCardListResponse(cards))
}

// CreateCard handles POST /api/v1/columns/{id}/cards.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	columnID, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateCard(r.Context(), columnID, mapCreateCardRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCardResponse(created))
}

// GetCard handles GET /api/v1/cards/{id}.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	card, err := h.service.GetCard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCardResponse(card))
}

// UpdateCard handles PATCH /api/v1/cards/{id}. The request carries only the
// fields to change; they are overlaid on the current card so the domain
// entity is validated as a whole.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.service.GetCard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.service.UpdateCard(r.Context(), id, applyUpdateCardRequest(current, &req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCardResponse(updated))
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteCard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveCard handles POST /api/v1/cards/{id}/move. A successful move returns
// 204: the client already rendered the optimistic result, so there is no
// body to return.
func (h *CardHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.MoveCard(r.Context(), mapMoveCardRequest(id, &req)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
