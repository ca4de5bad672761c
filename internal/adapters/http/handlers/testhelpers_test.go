package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"huntboard/internal/domain/board"
	"huntboard/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// fakeBoardService implements ports.BoardService with per-method function
// fields. Unset methods fail the test if called.
type fakeBoardService struct {
	t *testing.T

	getBoardFn     func(ctx context.Context) ([]board.Column, error)
	listColumnsFn  func(ctx context.Context) ([]board.Column, error)
	createColumnFn func(ctx context.Context, col *board.Column) (*board.Column, error)
	renameColumnFn func(ctx context.Context, id, name string) (*board.Column, error)
	deleteColumnFn func(ctx context.Context, id string) error
	listCardsFn    func(ctx context.Context, columnID string) ([]board.Card, error)
	createCardFn   func(ctx context.Context, columnID string, card *board.Card) (*board.Card, error)
	getCardFn      func(ctx context.Context, id string) (*board.Card, error)
	updateCardFn   func(ctx context.Context, id string, card *board.Card) (*board.Card, error)
	deleteCardFn   func(ctx context.Context, id string) error
	moveCardFn     func(ctx context.Context, intent board.MoveIntent) error
}

var _ ports.BoardService = (*fakeBoardService)(nil)

func (f *fakeBoardService) GetBoard(ctx context.Context) ([]board.Column, error) {
	if f.getBoardFn == nil {
		f.t.Fatal("unexpected call to GetBoard")
	}
	return f.getBoardFn(ctx)
}

func (f *fakeBoardService) ListColumns(ctx context.Context) ([]board.Column, error) {
	if f.listColumnsFn == nil {
		f.t.Fatal("unexpected call to ListColumns")
	}
	return f.listColumnsFn(ctx)
}

func (f *fakeBoardService) CreateColumn(ctx context.Context, col *board.Column) (*board.Column, error) {
	if f.createColumnFn == nil {
		f.t.Fatal("unexpected call to CreateColumn")
	}
	return f.createColumnFn(ctx, col)
}

func (f *fakeBoardService) RenameColumn(ctx context.Context, id, name string) (*board.Column, error) {
	if f.renameColumnFn == nil {
		f.t.Fatal("unexpected call to RenameColumn")
	}
	return f.renameColumnFn(ctx, id, name)
}

func (f *fakeBoardService) DeleteColumn(ctx context.Context, id string) error {
	if f.deleteColumnFn == nil {
		f.t.Fatal("unexpected call to DeleteColumn")
	}
	return f.deleteColumnFn(ctx, id)
}

func (f *fakeBoardService) ListCards(ctx context.Context, columnID string) ([]board.Card, error) {
	if f.listCardsFn == nil {
		f.t.Fatal("unexpected call to ListCards")
	}
	return f.listCardsFn(ctx, columnID)
}

func (f *fakeBoardService) CreateCard(ctx context.Context, columnID string, card *board.Card) (*board.Card, error) {
	if f.createCardFn == nil {
		f.t.Fatal("unexpected call to CreateCard")
	}
	return f.createCardFn(ctx, columnID, card)
}

func (f *fakeBoardService) GetCard(ctx context.Context, id string) (*board.Card, error) {
	if f.getCardFn == nil {
		f.t.Fatal("unexpected call to GetCard")
	}
	return f.getCardFn(ctx, id)
}

func (f *fakeBoardService) UpdateCard(ctx context.Context, id string, card *board.Card) (*board.Card, error) {
	if f.updateCardFn == nil {
		f.t.Fatal("unexpected call to UpdateCard")
	}
	return f.updateCardFn(ctx, id, card)
}

func (f *fakeBoardService) DeleteCard(ctx context.Context, id string) error {
	if f.deleteCardFn == nil {
		f.t.Fatal("unexpected call to DeleteCard")
	}
	return f.deleteCardFn(ctx, id)
}

func (f *fakeBoardService) MoveCard(ctx context.Context, intent board.MoveIntent) error {
	if f.moveCardFn == nil {
		f.t.Fatal("unexpected call to MoveCard")
	}
	return f.moveCardFn(ctx, intent)
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validColumn() board.Column {
	return board.Column{
		ID:        "col-a",
		Name:      "Applied",
		Position:  100,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validCard() board.Card {
	return board.Card{
		ID:        "crd-1",
		ColumnID:  "col-a",
		Company:   "Acme",
		Role:      "Backend Engineer",
		Order:     100,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
