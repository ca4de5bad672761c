package board

import (
	"strings"

	"huntboard/internal/domain"
)

// MoveIntent describes a requested card relocation as reported by a drag-end
// event: which card moves, the column it is claimed to leave, the column it
// enters, and the 0-based index it should occupy in the destination column's
// post-move sequence.
//
// Intents are ephemeral and never persisted. They are parsed and validated at
// the transport boundary so that malformed payloads are rejected before they
// reach the ordering engine.
type MoveIntent struct {
	CardID       string
	SourceColumn string
	DestColumn   string
	DestIndex    int
}

// Validate checks structural rules for the intent. Returns a
// *domain.ValidationError (wrapping domain.ErrValidation) with per-field
// details, or nil if all rules pass.
func (m *MoveIntent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.CardID) == "" {
		fields["card_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.SourceColumn) == "" {
		fields["source_column_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.DestColumn) == "" {
		fields["destination_column_id"] = domain.MsgRequired
	}
	if m.DestIndex < 0 {
		fields["destination_index"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
