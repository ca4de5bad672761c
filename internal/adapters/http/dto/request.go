package dto

import (
	"strings"

	"huntboard/internal/domain"
)

// CreateColumnRequest represents the JSON body for creating a new column.
type CreateColumnRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateColumnRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RenameColumnRequest represents the JSON body for renaming a column.
type RenameColumnRequest struct {
	Name string `json:"name"`
}

// Validate checks that the new name is non-empty.
// Returns a *domain.ValidationError if any checks fail.
func (r *RenameColumnRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateCardRequest represents the JSON body for creating a new card.
type CreateCardRequest struct {
	Company    string `json:"company"`
	Role       string `json:"role"`
	Notes      string `json:"notes,omitempty"`
	PostingURL string `json:"posting_url,omitempty"`
}

// Validate checks that required fields are present. Content rules (note
// length, URL shape) are enforced by the domain entity's own Validate.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateCardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Company) == "" {
		fields["company"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Role) == "" {
		fields["role"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateCardRequest represents the JSON body for updating a card's metadata.
// All fields are optional; nil means "do not change this field". Column
// membership and order are never updatable here; moves go through
// MoveCardRequest.
type UpdateCardRequest struct {
	Company    *string `json:"company,omitempty"`
	Role       *string `json:"role,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	PostingURL *string `json:"posting_url,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateCardRequest) Validate() error {
	fields := make(map[string]string)

	if r.Company != nil && strings.TrimSpace(*r.Company) == "" {
		fields["company"] = domain.MsgMustNotEmpty
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		fields["role"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveCardRequest represents the JSON body for relocating a card, mirroring a
// drag-end event from the board UI.
type MoveCardRequest struct {
	SourceColumnID      string `json:"source_column_id"`
	DestinationColumnID string `json:"destination_column_id"`
	DestinationIndex    int    `json:"destination_index"`
}

// Validate checks that required fields are present and the index is
// non-negative. Returns a *domain.ValidationError if any checks fail.
func (r *MoveCardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.SourceColumnID) == "" {
		fields["source_column_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.DestinationColumnID) == "" {
		fields["destination_column_id"] = domain.MsgRequired
	}
	if r.DestinationIndex < 0 {
		fields["destination_index"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
