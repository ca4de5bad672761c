package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"huntboard/internal/adapters/http/dto"
	"huntboard/internal/adapters/http/handlers"
	"huntboard/internal/domain"
	"huntboard/internal/domain/board"
)

// --- ListCards ---

func TestListCards_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, listCardsFn: func(_ context.Context, columnID string) ([]board.Card, error) {
		if columnID != "col-a" {
			t.Errorf("ListCards(%q), want \"col-a\"", columnID)
		}
		return []board.Card{validCard()}, nil
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns/col-a/cards", nil)
	req = withChiParams(req, map[string]string{"id": "col-a"})
	h.ListCards(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CardListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListCards_ColumnNotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, listCardsFn: func(context.Context, string) ([]board.Card, error) {
		return nil, domain.ErrNotFound
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/columns/missing/cards", nil)
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.ListCards(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- CreateCard ---

func TestCreateCard_Success(t *testing.T) {
	t.Parallel()

	created := validCard()
	svc := &fakeBoardService{t: t, createCardFn: func(_ context.Context, columnID string, card *board.Card) (*board.Card, error) {
		if columnID != "col-a" {
			t.Errorf("columnID = %q, want \"col-a\"", columnID)
		}
		if card.Company != "Acme" {
			t.Errorf("Company = %q, want \"Acme\"", card.Company)
		}
		return &created, nil
	}}
	h := handlers.NewCardHandler(svc)

	body := jsonBody(t, dto.CreateCardRequest{Company: "Acme", Role: "Backend Engineer"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/columns/col-a/cards", body)
	req = withChiParams(req, map[string]string{"id": "col-a"})
	h.CreateCard(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.CardResponse](t, rec)
	if resp.Order != 100 {
		t.Errorf("Order = %d, want 100", resp.Order)
	}
}

func TestCreateCard_MissingFields(t *testing.T) {
	t.Parallel()

	h := handlers.NewCardHandler(&fakeBoardService{t: t})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/columns/col-a/cards",
		jsonBody(t, dto.CreateCardRequest{Company: "Acme"}))
	req = withChiParams(req, map[string]string{"id": "col-a"})
	h.CreateCard(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetCard ---

func TestGetCard_Success(t *testing.T) {
	t.Parallel()

	card := validCard()
	svc := &fakeBoardService{t: t, getCardFn: func(_ context.Context, id string) (*board.Card, error) {
		if id != "crd-1" {
			t.Errorf("GetCard(%q), want \"crd-1\"", id)
		}
		return &card, nil
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/crd-1", nil)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.GetCard(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetCard_NotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, getCardFn: func(context.Context, string) (*board.Card, error) {
		return nil, fmt.Errorf("card missing: %w", domain.ErrNotFound)
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/missing", nil)
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.GetCard(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateCard ---

func TestUpdateCard_Success(t *testing.T) {
	t.Parallel()

	current := validCard()
	notes := "phone screen scheduled"
	svc := &fakeBoardService{
		t: t,
		getCardFn: func(context.Context, string) (*board.Card, error) {
			return &current, nil
		},
		updateCardFn: func(_ context.Context, id string, card *board.Card) (*board.Card, error) {
			if card.Notes != notes {
				t.Errorf("Notes = %q, want %q", card.Notes, notes)
			}
			if card.Company != current.Company {
				t.Errorf("Company = %q, want unchanged %q", card.Company, current.Company)
			}
			updated := *card
			updated.ID = id
			return &updated, nil
		},
	}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cards/crd-1",
		jsonBody(t, dto.UpdateCardRequest{Notes: &notes}))
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.UpdateCard(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CardResponse](t, rec)
	if resp.Notes != notes {
		t.Errorf("Notes = %q, want %q", resp.Notes, notes)
	}
}

func TestUpdateCard_NotFound(t *testing.T) {
	t.Parallel()

	notes := "x"
	svc := &fakeBoardService{t: t, getCardFn: func(context.Context, string) (*board.Card, error) {
		return nil, domain.ErrNotFound
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cards/missing",
		jsonBody(t, dto.UpdateCardRequest{Notes: &notes}))
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.UpdateCard(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteCard ---

func TestDeleteCard_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, deleteCardFn: func(_ context.Context, id string) error {
		if id != "crd-1" {
			t.Errorf("DeleteCard(%q), want \"crd-1\"", id)
		}
		return nil
	}}
	h := handlers.NewCardHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cards/crd-1", nil)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.DeleteCard(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- MoveCard ---

func TestMoveCard_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, moveCardFn: func(_ context.Context, intent board.MoveIntent) error {
		want := board.MoveIntent{CardID: "crd-1", SourceColumn: "col-a", DestColumn: "col-b", DestIndex: 2}
		if intent != want {
			t.Errorf("intent = %+v, want %+v", intent, want)
		}
		return nil
	}}
	h := handlers.NewCardHandler(svc)

	body := jsonBody(t, dto.MoveCardRequest{
		SourceColumnID:      "col-a",
		DestinationColumnID: "col-b",
		DestinationIndex:    2,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/crd-1/move", body)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.MoveCard(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestMoveCard_MissingSource(t *testing.T) {
	t.Parallel()

	h := handlers.NewCardHandler(&fakeBoardService{t: t})

	body := jsonBody(t, dto.MoveCardRequest{DestinationColumnID: "col-b"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/crd-1/move", body)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.MoveCard(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestMoveCard_InvalidMoveConflict(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, moveCardFn: func(context.Context, board.MoveIntent) error {
		return fmt.Errorf("card crd-1 not in column col-a: %w", domain.ErrInvalidMove)
	}}
	h := handlers.NewCardHandler(svc)

	body := jsonBody(t, dto.MoveCardRequest{
		SourceColumnID:      "col-a",
		DestinationColumnID: "col-b",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/crd-1/move", body)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.MoveCard(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestMoveCard_DestinationNotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, moveCardFn: func(context.Context, board.MoveIntent) error {
		return fmt.Errorf("verifying destination column: %w", domain.ErrNotFound)
	}}
	h := handlers.NewCardHandler(svc)

	body := jsonBody(t, dto.MoveCardRequest{
		SourceColumnID:      "col-a",
		DestinationColumnID: "missing",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/crd-1/move", body)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.MoveCard(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestMoveCard_StorageUnavailable(t *testing.T) {
	t.Parallel()

	svc := &fakeBoardService{t: t, moveCardFn: func(context.Context, board.MoveIntent) error {
		return fmt.Errorf("storage circuit open: %w", domain.ErrUnavailable)
	}}
	h := handlers.NewCardHandler(svc)

	body := jsonBody(t, dto.MoveCardRequest{
		SourceColumnID:      "col-a",
		DestinationColumnID: "col-b",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards/crd-1/move", body)
	req = withChiParams(req, map[string]string{"id": "crd-1"})
	h.MoveCard(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
