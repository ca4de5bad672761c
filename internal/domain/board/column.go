package board

import (
	"strings"
	"time"

	"huntboard/internal/domain"
)

// maxColumnNameLen keeps column headers displayable.
const maxColumnNameLen = 80

// Column represents an ordered container of cards (a Kanban lane such as
// "Applied" or "Interviewing"). Position orders columns on the board itself
// and uses the same gap allocation scheme as card orders.
//
// Cards is a projection rebuilt by sorting the column's cards by their Order
// values; it is never the authoritative membership list and is nil unless
// explicitly populated.
type Column struct {
	ID        string
	Name      string
	Position  int
	Cards     []Card
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Column entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (c *Column) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(c.Name)
	if name == "" {
		fields["name"] = domain.MsgRequired
	}
	if len(name) > maxColumnNameLen {
		fields["name"] = "must be at most 80 characters"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
