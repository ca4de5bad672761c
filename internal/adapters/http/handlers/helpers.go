// Package handlers contains the inbound HTTP handlers: board reads, column
// and card CRUD, card moves, and health probes. Handlers decode and validate
// request DTOs, delegate to the application service through its port, and
// translate results back to JSON responses.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"huntboard/internal/adapters/http/dto"
	"huntboard/internal/domain"
	"huntboard/internal/domain/board"
)

// pathID extracts a non-empty string path parameter from the chi URL params.
func pathID(r *http.Request, param string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	if raw == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: domain.MsgRequired},
		}
	}
	return raw, nil
}

// mapCreateCardRequest converts a CreateCardRequest DTO to a domain Card.
func mapCreateCardRequest(req *dto.CreateCardRequest) *board.Card {
	return &board.Card{
		Company:    req.Company,
		Role:       req.Role,
		Notes:      req.Notes,
		PostingURL: req.PostingURL,
	}
}

// applyUpdateCardRequest overlays the non-nil fields of an UpdateCardRequest
// onto the current card state, yielding the full post-update entity.
func applyUpdateCardRequest(current *board.Card, req *dto.UpdateCardRequest) *board.Card {
	updated := *current
	if req.Company != nil {
		updated.Company = *req.Company
	}
	if req.Role != nil {
		updated.Role = *req.Role
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.PostingURL != nil {
		updated.PostingURL = *req.PostingURL
	}
	return &updated
}

// mapMoveCardRequest converts a MoveCardRequest DTO plus the card path
// parameter into a domain MoveIntent.
func mapMoveCardRequest(cardID string, req *dto.MoveCardRequest) board.MoveIntent {
	return board.MoveIntent{
		CardID:       cardID,
		SourceColumn: req.SourceColumnID,
		DestColumn:   req.DestinationColumnID,
		DestIndex:    req.DestinationIndex,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
