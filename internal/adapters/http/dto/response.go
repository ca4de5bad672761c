// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"huntboard/internal/domain/board"
)

// ColumnResponse represents a single column in HTTP responses.
type ColumnResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Position  int            `json:"position"`
	Cards     []CardResponse `json:"cards,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// BoardResponse represents the full board: every column with its cards in
// display order.
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// ColumnListResponse represents a list of columns without cards.
type ColumnListResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// ToColumnResponse converts a domain Column entity to an HTTP response DTO.
// Cards are included only if the column has them populated.
func ToColumnResponse(c *board.Column) ColumnResponse {
	resp := ColumnResponse{
		ID:        c.ID,
		Name:      c.Name,
		Position:  c.Position,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}

	if len(c.Cards) > 0 {
		resp.Cards = make([]CardResponse, len(c.Cards))
		for i := range c.Cards {
			resp.Cards[i] = ToCardResponse(&c.Cards[i])
		}
	}

	return resp
}

// ToBoardResponse converts a slice of card-populated columns to the full
// board response DTO.
func ToBoardResponse(columns []board.Column) BoardResponse {
	items := make([]ColumnResponse, len(columns))
	for i := range columns {
		items[i] = ToColumnResponse(&columns[i])
	}
	return BoardResponse{
		Columns: items,
		Count:   len(items),
	}
}

// ToColumnListResponse converts a slice of domain Column entities to an
// HTTP list response DTO.
func ToColumnListResponse(columns []board.Column) ColumnListResponse {
	items := make([]ColumnResponse, len(columns))
	for i := range columns {
		items[i] = ToColumnResponse(&columns[i])
	}
	return ColumnListResponse{
		Columns: items,
		Count:   len(items),
	}
}

// CardResponse represents a single card in HTTP responses.
type CardResponse struct {
	ID         string `json:"id"`
	ColumnID   string `json:"column_id"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	Notes      string `json:"notes,omitempty"`
	PostingURL string `json:"posting_url,omitempty"`
	Order      int    `json:"order"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// CardListResponse represents a column's cards in display order.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
	Count int            `json:"count"`
}

// ToCardResponse converts a domain Card entity to an HTTP response DTO.
func ToCardResponse(c *board.Card) CardResponse {
	return CardResponse{
		ID:         c.ID,
		ColumnID:   c.ColumnID,
		Company:    c.Company,
		Role:       c.Role,
		Notes:      c.Notes,
		PostingURL: c.PostingURL,
		Order:      c.Order,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCardListResponse converts a slice of domain Card entities to an HTTP
// list response DTO.
func ToCardListResponse(cards []board.Card) CardListResponse {
	items := make([]CardResponse, len(cards))
	for i := range cards {
		items[i] = ToCardResponse(&cards[i])
	}
	return CardListResponse{
		Cards: items,
		Count: len(items),
	}
}
